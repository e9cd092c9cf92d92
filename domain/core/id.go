package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// DateKey is an ISO calendar day (YYYY-MM-DD). Lexical ordering of DateKeys
// equals chronological ordering, which the aggregator and merger rely on.
type DateKey string

var dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDateKey validates a string into a DateKey
func ParseDateKey(s string) (DateKey, error) {
	s = strings.TrimSpace(s)
	if !dateKeyPattern.MatchString(s) {
		return "", fmt.Errorf("invalid date key %q: expected YYYY-MM-DD", s)
	}
	return DateKey(s), nil
}

// String returns the string representation
func (d DateKey) String() string {
	return string(d)
}

// Before returns true if d sorts before u (lexical == chronological for ISO days)
func (d DateKey) Before(u DateKey) bool {
	return string(d) < string(u)
}
