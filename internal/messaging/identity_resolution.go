package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crm-backend/internal/database"
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchKind tells how a sender was matched to an existing contact
type MatchKind string

const (
	MatchedByIdentity MatchKind = "identity"
	MatchedByPhone    MatchKind = "phone"
	MatchedByEmail    MatchKind = "email"
	MatchedByNone     MatchKind = "none"
)

// Resolution is the outcome of resolving a sender to a contact
type Resolution struct {
	Contact   *models.Contact
	Created   bool
	MatchedBy MatchKind
	Keys      []IdentityKey
}

// Resolver maps channel identities to CRM contacts, creating contacts on first contact
type Resolver struct {
	contacts   repository.ContactRepositoryInterface
	identities repository.ContactIdentityRepositoryInterface
	now        func() time.Time
}

// NewResolver creates a new identity resolver
func NewResolver(contacts repository.ContactRepositoryInterface, identities repository.ContactIdentityRepositoryInterface) *Resolver {
	return &Resolver{
		contacts:   contacts,
		identities: identities,
		now:        time.Now,
	}
}

// Resolve finds or creates the contact behind a sender. Concurrent resolutions of the same
// sender converge on one contact through the unique (organization_id, identity_key) index.
func (r *Resolver) Resolve(ctx context.Context, orgID uuid.UUID, in IdentityInput) (*Resolution, error) {
	lookup, persist, err := candidateKeys(in)
	if err != nil {
		return nil, err
	}
	if len(lookup) == 0 {
		return nil, apperrors.ErrNoIdentity
	}
	log := logger.ForOrganization(ctx, orgID)

	phone, email := primaryPhone(persist), primaryEmail(persist)

	res, err := r.matchIdentity(ctx, orgID, lookup, persist, phone, email, in.AvatarURL)
	if err != nil || res != nil {
		return res, err
	}

	if phone != "" {
		contact, err := r.contacts.FindByPhones(orgID, PhoneVariants(phone))
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up contact by phone: %w", err)
		}
		if contact != nil {
			r.attach(ctx, orgID, contact.ID, persist, nil)
			r.fill(ctx, contact, phone, email, in.AvatarURL)
			return &Resolution{Contact: contact, MatchedBy: MatchedByPhone, Keys: persist}, nil
		}
	}

	if email != "" {
		contact, err := r.contacts.FindByEmail(orgID, email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up contact by email: %w", err)
		}
		if contact != nil {
			r.attach(ctx, orgID, contact.ID, persist, nil)
			r.fill(ctx, contact, phone, email, in.AvatarURL)
			return &Resolution{Contact: contact, MatchedBy: MatchedByEmail, Keys: persist}, nil
		}
	}

	contact := &models.Contact{
		Name:      displayName(in, phone, email),
		Phone:     phone,
		Email:     email,
		AvatarURL: in.AvatarURL,
		Source:    string(in.Channel),
	}
	contact.OrganizationID = orgID

	now := r.now()
	identities := make([]models.ContactIdentity, 0, len(persist))
	for _, k := range persist {
		identities = append(identities, models.ContactIdentity{
			OrganizationID: orgID,
			Channel:        string(k.Channel),
			IdentityKey:    k.String(),
			LastSeenAt:     &now,
		})
	}

	err = r.contacts.CreateWithIdentities(contact, identities)
	if err == nil {
		log.WithField("contact_id", contact.ID).Infof("Created contact from %s identity", in.Channel)
		return &Resolution{Contact: contact, Created: true, MatchedBy: MatchedByNone, Keys: persist}, nil
	}
	if !database.IsUniqueViolation(err) {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	// Another delivery created the contact between our lookup and insert.
	log.Debug("Identity insert raced, re-reading winner")
	res, err = r.matchIdentity(ctx, orgID, lookup, persist, phone, email, in.AvatarURL)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("failed to create contact: %w", apperrors.ErrIdentityExists)
	}
	return res, nil
}

func (r *Resolver) matchIdentity(ctx context.Context, orgID uuid.UUID, lookup, persist []IdentityKey, phone, email, avatar string) (*Resolution, error) {
	found, err := r.identities.FindByKeys(orgID, keyStrings(lookup))
	if err != nil {
		return nil, fmt.Errorf("failed to look up identities: %w", err)
	}
	if len(found) == 0 {
		return nil, nil
	}

	winner := pickIdentity(found, lookup)
	contact, err := r.contacts.GetByID(orgID, winner.ContactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	if err := r.identities.Touch(winner.ID, r.now()); err != nil {
		logger.WithContext(ctx).Warnf("Failed to touch identity %s: %v", winner.ID, err)
	}
	r.attach(ctx, orgID, contact.ID, persist, found)
	r.fill(ctx, contact, phone, email, avatar)

	return &Resolution{Contact: contact, MatchedBy: MatchedByIdentity, Keys: persist}, nil
}

// pickIdentity prefers the identity matching the earliest candidate key, so the channel key
// wins over phone or e-mail matches that may point at a different contact.
func pickIdentity(found []models.ContactIdentity, lookup []IdentityKey) models.ContactIdentity {
	byKey := make(map[string]models.ContactIdentity, len(found))
	for _, id := range found {
		byKey[id.IdentityKey] = id
	}
	for _, k := range lookup {
		if id, ok := byKey[k.String()]; ok {
			return id
		}
	}
	return found[0]
}

// attach stores the keys the contact does not have yet. Keys owned by another contact are
// left alone; merging contacts is an explicit admin action.
func (r *Resolver) attach(ctx context.Context, orgID, contactID uuid.UUID, keys []IdentityKey, existing []models.ContactIdentity) {
	known := make(map[string]bool, len(existing))
	for _, id := range existing {
		known[id.IdentityKey] = true
	}
	now := r.now()
	for _, k := range keys {
		if known[k.String()] {
			continue
		}
		identity := &models.ContactIdentity{
			OrganizationID: orgID,
			ContactID:      contactID,
			Channel:        string(k.Channel),
			IdentityKey:    k.String(),
			LastSeenAt:     &now,
		}
		if err := r.identities.Create(identity); err != nil {
			if database.IsUniqueViolation(err) {
				continue
			}
			logger.WithContext(ctx).Warnf("Failed to attach identity %s to contact %s: %v", k, contactID, err)
		}
	}
}

// fill completes empty contact fields from what the channel told us
func (r *Resolver) fill(ctx context.Context, contact *models.Contact, phone, email, avatar string) {
	if !complete(contact, phone, email, avatar) {
		return
	}
	if err := r.contacts.Update(contact); err != nil {
		logger.WithContext(ctx).Warnf("Failed to enrich contact %s: %v", contact.ID, err)
	}
}

func complete(contact *models.Contact, phone, email, avatar string) bool {
	changed := false
	if contact.Phone == "" && phone != "" {
		contact.Phone = phone
		changed = true
	}
	if contact.Email == "" && email != "" {
		contact.Email = email
		changed = true
	}
	if contact.AvatarURL == "" && avatar != "" {
		contact.AvatarURL = avatar
		changed = true
	}
	return changed
}

// Link attaches an explicit identity key to a contact
func (r *Resolver) Link(ctx context.Context, orgID, contactID uuid.UUID, key string) (*models.ContactIdentity, error) {
	canonical, err := Canonicalize(key)
	if err != nil {
		return nil, apperrors.NewValidationError("identity_key", err.Error())
	}
	if _, err := r.contacts.GetByID(orgID, contactID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	parsed, _ := ParseKey(canonical)
	now := r.now()
	identity := &models.ContactIdentity{
		OrganizationID: orgID,
		ContactID:      contactID,
		Channel:        string(parsed.Channel),
		IdentityKey:    canonical,
		LastSeenAt:     &now,
	}
	err = r.identities.Create(identity)
	if err == nil {
		return identity, nil
	}
	if !database.IsUniqueViolation(err) {
		return nil, fmt.Errorf("failed to link identity: %w", err)
	}

	existing, err := r.identities.FindByKeys(orgID, []string{canonical})
	if err != nil {
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}
	if len(existing) > 0 && existing[0].ContactID == contactID {
		return &existing[0], nil
	}
	return nil, apperrors.ErrIdentityExists
}

// Merge folds dropID into keepID: identities, conversations, deals and messages move over and
// the dropped contact is deleted. Empty fields of the kept contact are filled from the dropped one.
func (r *Resolver) Merge(ctx context.Context, orgID, keepID, dropID uuid.UUID) (*models.Contact, error) {
	if keepID == dropID {
		return nil, apperrors.ErrMergeSameContact
	}
	keep, err := r.contacts.GetByID(orgID, keepID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	drop, err := r.contacts.GetByID(orgID, dropID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	if err := r.contacts.Merge(orgID, keepID, dropID); err != nil {
		return nil, fmt.Errorf("failed to merge contacts: %w", err)
	}

	if keep.CompanyID == nil && drop.CompanyID != nil {
		keep.CompanyID = drop.CompanyID
	}
	if keep.Notes == "" {
		keep.Notes = drop.Notes
	}
	complete(keep, drop.Phone, drop.Email, drop.AvatarURL)
	if err := r.contacts.Update(keep); err != nil {
		return nil, fmt.Errorf("failed to update merged contact: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization_id": orgID,
		"kept":            keepID,
		"dropped":         dropID,
	}).Info("Merged contacts")
	return keep, nil
}

func keyStrings(keys []IdentityKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}

func primaryPhone(keys []IdentityKey) string {
	for _, k := range keys {
		if k.IsPhoneBacked() {
			return k.Value
		}
	}
	return ""
}

func primaryEmail(keys []IdentityKey) string {
	for _, k := range keys {
		if k.Channel == ChannelEmail {
			return k.Value
		}
	}
	return ""
}

func displayName(in IdentityInput, phone, email string) string {
	if name := strings.TrimSpace(in.Name); name != "" {
		return name
	}
	if phone != "" {
		return phone
	}
	if email != "" {
		local, _, _ := strings.Cut(email, "@")
		return local
	}
	channel := string(in.Channel)
	if channel == "" {
		return "Contact"
	}
	return strings.ToUpper(channel[:1]) + channel[1:] + " contact"
}
