package service

import (
	"errors"
	"fmt"
	"time"

	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/messaging"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timeLayout)
	return &s
}

// identityError turns key parsing failures into validation errors so handlers answer 400
func identityError(field string, err error) error {
	switch {
	case errors.Is(err, messaging.ErrInvalidPhone),
		errors.Is(err, messaging.ErrInvalidEmail),
		errors.Is(err, messaging.ErrInvalidKey),
		errors.Is(err, messaging.ErrUnknownChannel),
		errors.Is(err, messaging.ErrNotAContact):
		return apperrors.NewValidationError(field, err.Error())
	}
	return fmt.Errorf("failed to resolve identity: %w", err)
}
