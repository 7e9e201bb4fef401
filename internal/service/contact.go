package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crm-backend/internal/database"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/messaging"
	"crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactService handles business logic for contacts and their identity keys
type ContactService struct {
	contacts   repository.ContactRepositoryInterface
	identities repository.ContactIdentityRepositoryInterface
	companies  repository.CompanyRepositoryInterface
	orgs       repository.OrganizationRepositoryInterface
	resolver   IdentityResolver
	validator  *validator.Validate
}

// NewContactService creates a new contact service
func NewContactService(
	contacts repository.ContactRepositoryInterface,
	identities repository.ContactIdentityRepositoryInterface,
	companies repository.CompanyRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	resolver IdentityResolver,
	validator *validator.Validate,
) *ContactService {
	return &ContactService{
		contacts:   contacts,
		identities: identities,
		companies:  companies,
		orgs:       orgs,
		resolver:   resolver,
		validator:  validator,
	}
}

// CreateContactRequest represents the request to create a contact
type CreateContactRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=255" example:"Maria Silva"`
	Phone     string     `json:"phone,omitempty" validate:"max=30" example:"(11) 99999-8888"`
	Email     string     `json:"email,omitempty" validate:"omitempty,email,max=255" example:"maria@example.com"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	AvatarURL string     `json:"avatar_url,omitempty" validate:"omitempty,url,max=500"`
	Source    string     `json:"source,omitempty" validate:"max=30"`
	Notes     string     `json:"notes,omitempty"`
}

// UpdateContactRequest represents the request to update a contact
type UpdateContactRequest struct {
	Name      *string    `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Phone     *string    `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email     *string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	AvatarURL *string    `json:"avatar_url,omitempty" validate:"omitempty,max=500"`
	Notes     *string    `json:"notes,omitempty"`
}

// AddIdentityRequest attaches an explicit identity key such as "instagram:1784..." to a contact
type AddIdentityRequest struct {
	Key string `json:"key" validate:"required,max=255" example:"whatsapp:+5511999998888"`
}

// MergeContactsRequest folds drop_id into keep_id
type MergeContactsRequest struct {
	KeepID uuid.UUID `json:"keep_id" validate:"required"`
	DropID uuid.UUID `json:"drop_id" validate:"required"`
}

// ResolveContactRequest finds or creates a contact from whatever identifiers a caller knows
type ResolveContactRequest struct {
	Name       string `json:"name,omitempty" validate:"max=255"`
	Phone      string `json:"phone,omitempty" validate:"max=30"`
	Email      string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Channel    string `json:"channel,omitempty" validate:"omitempty,oneof=whatsapp instagram phone email chatwoot"`
	ExternalID string `json:"external_id,omitempty" validate:"max=255"`
}

// ContactResponse represents a contact
type ContactResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	Source    string     `json:"source,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// ContactListResponse represents a paginated list of contacts
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// IdentityResponse represents an identity key of a contact
type IdentityResponse struct {
	ID          uuid.UUID `json:"id"`
	ContactID   uuid.UUID `json:"contact_id"`
	Channel     string    `json:"channel"`
	IdentityKey string    `json:"identity_key"`
	LastSeenAt  *string   `json:"last_seen_at,omitempty"`
	CreatedAt   string    `json:"created_at"`
}

// ResolveContactResponse reports how a contact was resolved
type ResolveContactResponse struct {
	Contact   ContactResponse `json:"contact"`
	Created   bool            `json:"created"`
	MatchedBy string          `json:"matched_by"`
}

// Create creates a contact. Phone and e-mail are canonicalized and registered as identity keys
// so messages arriving later on any channel resolve to this contact.
func (s *ContactService) Create(ctx context.Context, orgID uuid.UUID, req *CreateContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.checkCompany(orgID, req.CompanyID); err != nil {
		return nil, err
	}

	phone, email, keys, err := s.canonicalContactKeys(orgID, req.Phone, req.Email)
	if err != nil {
		return nil, err
	}

	contact := &models.Contact{
		Name:      strings.TrimSpace(req.Name),
		Phone:     phone,
		Email:     email,
		CompanyID: req.CompanyID,
		AvatarURL: req.AvatarURL,
		Source:    req.Source,
		Notes:     req.Notes,
	}
	contact.OrganizationID = orgID
	if contact.Source == "" {
		contact.Source = "manual"
	}

	identities := make([]models.ContactIdentity, 0, len(keys))
	for _, k := range keys {
		identities = append(identities, models.ContactIdentity{
			OrganizationID: orgID,
			Channel:        string(k.Channel),
			IdentityKey:    k.String(),
		})
	}

	if err := s.contacts.CreateWithIdentities(contact, identities); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.ErrIdentityExists
		}
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return toContactResponse(contact), nil
}

// GetByID retrieves a contact
func (s *ContactService) GetByID(orgID, id uuid.UUID) (*ContactResponse, error) {
	contact, err := s.getContact(orgID, id)
	if err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Search searches contacts by name, e-mail or phone
func (s *ContactService) Search(orgID uuid.UUID, query string, page, pageSize int) (*ContactListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	contacts, total, err := s.contacts.Search(orgID, strings.TrimSpace(query), pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}

	responses := make([]ContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = *toContactResponse(&contacts[i])
	}
	return &ContactListResponse{
		Contacts: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a contact. A changed phone or e-mail is linked as an additional identity key;
// the update is rejected when that key already belongs to another contact.
func (s *ContactService) Update(ctx context.Context, orgID, id uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact, err := s.getContact(orgID, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCompany(orgID, req.CompanyID); err != nil {
		return nil, err
	}

	var rawPhone, rawEmail string
	if req.Phone != nil {
		rawPhone = *req.Phone
	}
	if req.Email != nil {
		rawEmail = *req.Email
	}
	phone, email, keys, err := s.canonicalContactKeys(orgID, rawPhone, rawEmail)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		if _, err := s.resolver.Link(ctx, orgID, contact.ID, k.String()); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		contact.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		contact.Phone = phone
	}
	if req.Email != nil {
		contact.Email = email
	}
	if req.CompanyID != nil {
		contact.CompanyID = nilIfZero(*req.CompanyID)
	}
	if req.AvatarURL != nil {
		contact.AvatarURL = *req.AvatarURL
	}
	if req.Notes != nil {
		contact.Notes = *req.Notes
	}

	if err := s.contacts.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return toContactResponse(contact), nil
}

// Delete deletes a contact and its identity keys
func (s *ContactService) Delete(orgID, id uuid.UUID) error {
	if err := s.contacts.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactNotFound
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// ListIdentities lists the identity keys of a contact
func (s *ContactService) ListIdentities(orgID, contactID uuid.UUID) ([]IdentityResponse, error) {
	if _, err := s.getContact(orgID, contactID); err != nil {
		return nil, err
	}
	identities, err := s.identities.ListByContact(orgID, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}
	responses := make([]IdentityResponse, len(identities))
	for i := range identities {
		responses[i] = *toIdentityResponse(&identities[i])
	}
	return responses, nil
}

// AddIdentity links an explicit identity key to a contact
func (s *ContactService) AddIdentity(ctx context.Context, orgID, contactID uuid.UUID, req *AddIdentityRequest) (*IdentityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	identity, err := s.resolver.Link(ctx, orgID, contactID, req.Key)
	if err != nil {
		return nil, err
	}
	return toIdentityResponse(identity), nil
}

// RemoveIdentity unlinks an identity key from a contact
func (s *ContactService) RemoveIdentity(orgID, contactID, identityID uuid.UUID) error {
	identities, err := s.identities.ListByContact(orgID, contactID)
	if err != nil {
		return fmt.Errorf("failed to list identities: %w", err)
	}
	for _, identity := range identities {
		if identity.ID != identityID {
			continue
		}
		if err := s.identities.Delete(orgID, identityID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrIdentityNotFound
			}
			return fmt.Errorf("failed to delete identity: %w", err)
		}
		return nil
	}
	return apperrors.ErrIdentityNotFound
}

// Merge folds one contact into another
func (s *ContactService) Merge(ctx context.Context, orgID uuid.UUID, req *MergeContactsRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	contact, err := s.resolver.Merge(ctx, orgID, req.KeepID, req.DropID)
	if err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Resolve finds or creates the contact behind the given identifiers
func (s *ContactService) Resolve(ctx context.Context, orgID uuid.UUID, req *ResolveContactRequest) (*ResolveContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	in := messaging.IdentityInput{
		Channel:        messaging.Channel(req.Channel),
		ExternalID:     strings.TrimSpace(req.ExternalID),
		Phone:          req.Phone,
		Email:          req.Email,
		Name:           strings.TrimSpace(req.Name),
		DefaultCountry: s.defaultCountry(orgID),
	}
	if in.Channel == "" {
		in.Channel = messaging.ChannelPhone
		if in.Phone == "" && in.Email != "" {
			in.Channel = messaging.ChannelEmail
		}
	}
	if in.ExternalID != "" && req.Channel == "" {
		return nil, apperrors.NewValidationError("channel", "is required with external_id")
	}

	res, err := s.resolver.Resolve(ctx, orgID, in)
	if err != nil {
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, identityError("identity", err)
	}
	return &ResolveContactResponse{
		Contact:   *toContactResponse(res.Contact),
		Created:   res.Created,
		MatchedBy: string(res.MatchedBy),
	}, nil
}

// canonicalContactKeys normalizes a phone and an e-mail and returns their identity keys
func (s *ContactService) canonicalContactKeys(orgID uuid.UUID, rawPhone, rawEmail string) (string, string, []messaging.IdentityKey, error) {
	var phone, email string
	var keys []messaging.IdentityKey

	if strings.TrimSpace(rawPhone) != "" {
		key, err := messaging.PhoneKey(rawPhone, s.defaultCountry(orgID))
		if err != nil {
			return "", "", nil, identityError("phone", err)
		}
		phone = key.Value
		keys = append(keys, key)
	}
	if strings.TrimSpace(rawEmail) != "" {
		key, err := messaging.EmailKey(rawEmail)
		if err != nil {
			return "", "", nil, identityError("email", err)
		}
		email = key.Value
		keys = append(keys, key)
	}
	return phone, email, keys, nil
}

func (s *ContactService) defaultCountry(orgID uuid.UUID) string {
	org, err := s.orgs.GetByID(orgID)
	if err != nil || org.Settings.DefaultCountryCode == "" {
		return messaging.DefaultCountryCode
	}
	return org.Settings.DefaultCountryCode
}

func (s *ContactService) checkCompany(orgID uuid.UUID, companyID *uuid.UUID) error {
	if companyID == nil || *companyID == uuid.Nil {
		return nil
	}
	if _, err := s.companies.GetByID(orgID, *companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to get company: %w", err)
	}
	return nil
}

func (s *ContactService) getContact(orgID, id uuid.UUID) (*models.Contact, error) {
	contact, err := s.contacts.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

func toContactResponse(c *models.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CompanyID: c.CompanyID,
		AvatarURL: c.AvatarURL,
		Source:    c.Source,
		Notes:     c.Notes,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func toIdentityResponse(i *models.ContactIdentity) *IdentityResponse {
	return &IdentityResponse{
		ID:          i.ID,
		ContactID:   i.ContactID,
		Channel:     i.Channel,
		IdentityKey: i.IdentityKey,
		LastSeenAt:  formatTimePtr(i.LastSeenAt),
		CreatedAt:   formatTime(i.CreatedAt),
	}
}
