package attr

import "strings"

// Pluralize applies naive English pluralization, enough to map an attribute
// name to its conventional enum name (status -> statuses, role -> roles,
// category -> categories). It is not a general inflector.
func Pluralize(name string) string {
	if name == "" {
		return name
	}

	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, "y") && !hasVowelBeforeY(lower):
		return name[:len(name)-1] + "ies"
	case strings.HasSuffix(lower, "s"),
		strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "ch"),
		strings.HasSuffix(lower, "sh"):
		return name + "es"
	default:
		return name + "s"
	}
}

func hasVowelBeforeY(lower string) bool {
	if len(lower) < 2 {
		return false
	}
	return strings.ContainsRune("aeiou", rune(lower[len(lower)-2]))
}
