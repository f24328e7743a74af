package core

import "strings"

// CleanString trims surrounding whitespace from s; pass lower=true to also
// fold it to lower case (used for categorical query params).
func CleanString(s string, lower ...bool) string {
	cleaned := strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		cleaned = strings.ToLower(cleaned)
	}
	return cleaned
}
