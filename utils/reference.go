package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateReference builds a short unique reference like "TXN-9f3a2b1c" for
// records saved without one.
func GenerateReference(prefix string) string {
	p := strings.ToUpper(strings.TrimSpace(prefix))
	if p == "" {
		p = "REF"
	}
	return p + "-" + uuid.NewString()[:8]
}
