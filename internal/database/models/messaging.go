package models

import (
	"time"

	"github.com/google/uuid"
)

// ConversationLink ties an external conversation to a CRM contact and, optionally, a deal
type ConversationLink struct {
	BaseModel
	OrganizationID         uuid.UUID           `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_conversation_links_external,priority:1"`
	Channel                ConversationChannel `json:"channel" gorm:"type:varchar(20);not null;uniqueIndex:idx_conversation_links_external,priority:2"`
	ExternalConversationID string              `json:"external_conversation_id" gorm:"size:255;not null;uniqueIndex:idx_conversation_links_external,priority:3"`
	ContactID              uuid.UUID           `json:"contact_id" gorm:"type:uuid;not null;index"`
	DealID                 *uuid.UUID          `json:"deal_id,omitempty" gorm:"type:uuid;index"`
	InboxID                string              `json:"inbox_id,omitempty" gorm:"size:100"`
	LastMessageAt          *time.Time          `json:"last_message_at,omitempty"`
}

// TableName returns the table name for ConversationLink
func (ConversationLink) TableName() string {
	return "messaging_conversation_links"
}

// LabelMapping maps a Chatwoot conversation label to a pipeline stage
type LabelMapping struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_label_mappings_org_label,priority:1"`
	ChatwootLabel  string    `json:"chatwoot_label" gorm:"size:100;not null;uniqueIndex:idx_label_mappings_org_label,priority:2"`
	StageID        uuid.UUID `json:"stage_id" gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for LabelMapping
func (LabelMapping) TableName() string {
	return "label_mappings"
}

// WhatsAppSession is a WPPConnect session owned by an organization
type WhatsAppSession struct {
	TenantModel
	SessionName   string `json:"session_name" gorm:"uniqueIndex;not null;size:100"`
	Token         string `json:"-" gorm:"size:500"`
	Status        string `json:"status" gorm:"size:50;not null;default:'CLOSED'"`
	QRCode        string `json:"qr_code,omitempty" gorm:"type:text"`
	Phone         string `json:"phone" gorm:"size:20"`
	WebhookSecret string `json:"-" gorm:"size:100;not null"`
}

// TableName returns the table name for WhatsAppSession
func (WhatsAppSession) TableName() string {
	return "whatsapp_sessions"
}

// WhatsAppMessage is a stored inbound or outbound WhatsApp message
type WhatsAppMessage struct {
	BaseModel
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index"`
	SessionID      uuid.UUID        `json:"session_id" gorm:"type:uuid;not null;uniqueIndex:idx_whatsapp_messages_session_external,priority:1"`
	ContactID      uuid.UUID        `json:"contact_id" gorm:"type:uuid;not null;index"`
	ExternalID     string           `json:"external_id" gorm:"size:255;not null;uniqueIndex:idx_whatsapp_messages_session_external,priority:2"`
	Direction      MessageDirection `json:"direction" gorm:"type:varchar(10);not null"`
	Body           string           `json:"body" gorm:"type:text"`
	MediaType      string           `json:"media_type,omitempty" gorm:"size:50"`
	SentAt         time.Time        `json:"sent_at"`
}

// TableName returns the table name for WhatsAppMessage
func (WhatsAppMessage) TableName() string {
	return "whatsapp_messages"
}
