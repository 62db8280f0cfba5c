package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewOrderNumber returns a short unique order reference like
// ORD-9F3A21C4.
func NewOrderNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("ORD-%s", id[:8])
}
