package service

import (
	"context"
	"fmt"

	"crm-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultPublicLimit = 50
	maxPublicLimit     = 100
)

// PublicAPIService serves the API-key authenticated public API
type PublicAPIService struct {
	contacts repository.ContactRepositoryInterface
	deals    repository.DealRepositoryInterface
	resolver ContactServiceInterface
}

// NewPublicAPIService creates a new public API service
func NewPublicAPIService(contacts repository.ContactRepositoryInterface, deals repository.DealRepositoryInterface, resolver ContactServiceInterface) *PublicAPIService {
	return &PublicAPIService{
		contacts: contacts,
		deals:    deals,
		resolver: resolver,
	}
}

// CursorPage is a keyset page of the public API
type CursorPage[T any] struct {
	Data       []T    `json:"data"`
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// normalizeLimit clamps a public page size to 1..100 with a default of 50
func normalizeLimit(limit int) int {
	if limit < 1 {
		return defaultPublicLimit
	}
	if limit > maxPublicLimit {
		return maxPublicLimit
	}
	return limit
}

// ListContacts returns a page of contacts, newest first
func (s *PublicAPIService) ListContacts(orgID uuid.UUID, cursor string, limit int) (*CursorPage[ContactResponse], error) {
	after, err := repository.DecodeCursor(cursor)
	if err != nil {
		return nil, err
	}
	limit = normalizeLimit(limit)

	contacts, err := s.contacts.ListAfter(orgID, after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	page := &CursorPage[ContactResponse]{Data: []ContactResponse{}}
	if len(contacts) > limit {
		contacts = contacts[:limit]
		page.HasMore = true
	}
	for i := range contacts {
		page.Data = append(page.Data, *toContactResponse(&contacts[i]))
	}
	if page.HasMore {
		last := contacts[len(contacts)-1]
		page.NextCursor = repository.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}.Encode()
	}
	return page, nil
}

// ListDeals returns a page of deals, newest first
func (s *PublicAPIService) ListDeals(orgID uuid.UUID, cursor string, limit int) (*CursorPage[DealResponse], error) {
	after, err := repository.DecodeCursor(cursor)
	if err != nil {
		return nil, err
	}
	limit = normalizeLimit(limit)

	deals, err := s.deals.ListAfter(orgID, after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}

	page := &CursorPage[DealResponse]{Data: []DealResponse{}}
	if len(deals) > limit {
		deals = deals[:limit]
		page.HasMore = true
	}
	for i := range deals {
		page.Data = append(page.Data, *toDealResponse(&deals[i]))
	}
	if page.HasMore {
		last := deals[len(deals)-1]
		page.NextCursor = repository.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}.Encode()
	}
	return page, nil
}

// CreateContact finds or creates a contact from the identifiers a caller supplies. Repeating a
// call with the same phone or e-mail returns the same contact.
func (s *PublicAPIService) CreateContact(ctx context.Context, orgID uuid.UUID, req *ResolveContactRequest) (*ResolveContactResponse, error) {
	return s.resolver.Resolve(ctx, orgID, req)
}
