package build

import "strings"

// DeriveIdentifier converts a display name into a canonical identifier:
// lowercase, every maximal run of characters outside [a-z0-9] collapsed to a
// single underscore, leading and trailing underscores trimmed. A name with
// no alphanumeric characters derives to the empty string; callers treat
// that as a configuration error upstream.
func DeriveIdentifier(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lower))
	pending := false
	for _, r := range lower {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte('_')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}

// Identifier returns the explicit identifier when present, otherwise the
// identifier derived from the display name.
func Identifier(name, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return DeriveIdentifier(name)
}
