package slug

import (
	"strings"

	"github.com/google/uuid"
)

// Generate construye un slug URL-safe a partir del nombre de la empresa.
// Se añade un sufijo aleatorio corto para garantizar unicidad sin segunda consulta.
func Generate(seed string) string {
	base := strings.ToLower(strings.TrimSpace(seed))
	base = strings.ReplaceAll(base, " ", "-")
	base = strings.ReplaceAll(base, "_", "-")
	base = sanitize(base)
	if base == "" {
		base = "company"
	}
	return base + "-" + uuid.NewString()[:8]
}

// sanitize elimina todo lo que no sea [a-z0-9-] y colapsa guiones repetidos.
func sanitize(s string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == '-':
			if !lastDash && b.Len() > 0 {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
