package models

// Role is the profile role inside an organization
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleSeller  Role = "seller"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSeller:
		return true
	}
	return false
}

// DealStatus is the lifecycle state of a deal
type DealStatus string

const (
	DealStatusOpen DealStatus = "open"
	DealStatusWon  DealStatus = "won"
	DealStatusLost DealStatus = "lost"
)

// IsValid checks if the DealStatus is valid
func (s DealStatus) IsValid() bool {
	switch s {
	case DealStatusOpen, DealStatusWon, DealStatusLost:
		return true
	}
	return false
}

// IsClosed reports whether the status ends the deal
func (s DealStatus) IsClosed() bool {
	return s == DealStatusWon || s == DealStatusLost
}

// DocumentStatus tracks AI training document ingestion
type DocumentStatus string

const (
	DocumentStatusUploaded   DocumentStatus = "uploaded"
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusReady      DocumentStatus = "ready"
	DocumentStatusFailed     DocumentStatus = "failed"
)

// IsValid checks if the DocumentStatus is valid
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusUploaded, DocumentStatusProcessing, DocumentStatusReady, DocumentStatusFailed:
		return true
	}
	return false
}

// MessageDirection of a stored WhatsApp message
type MessageDirection string

const (
	MessageDirectionInbound  MessageDirection = "inbound"
	MessageDirectionOutbound MessageDirection = "outbound"
)

// ConversationChannel identifies where an external conversation lives
type ConversationChannel string

const (
	ConversationChannelChatwoot  ConversationChannel = "chatwoot"
	ConversationChannelWhatsApp  ConversationChannel = "whatsapp"
	ConversationChannelInstagram ConversationChannel = "instagram"
)
