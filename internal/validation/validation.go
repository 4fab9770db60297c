package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hmorita/Trade-Journal-Backend/internal/apperrors"
)

// ValidateDatabaseID checks that a Notion database ID is a valid UUID.
// Notion renders database IDs without dashes in page URLs, so the 32-hex
// form is accepted alongside the canonical dashed form.
func ValidateDatabaseID(id string) error {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidDatabaseID, id)
	}
	return nil
}

// Error aggregates per-field validation failures for request payloads.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
