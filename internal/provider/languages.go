package provider

import (
	"strings"

	"golang.org/x/text/language"
)

// resolveLanguages returns the requested languages in order, without duplicates,
// followed by original when it was not requested. The input slice is not modified.
func resolveLanguages(requested []string, original string) []string {
	resolved := make([]string, 0, len(requested)+1)
	for _, lng := range requested {
		if lng == "" || containsLanguage(resolved, lng) {
			continue
		}
		resolved = append(resolved, lng)
	}
	if original != "" && !containsLanguage(resolved, original) {
		resolved = append(resolved, original)
	}
	return resolved
}

func containsLanguage(languages []string, lng string) bool {
	for _, candidate := range languages {
		if sameLanguage(candidate, lng) {
			return true
		}
	}
	return false
}

// sameLanguage compares two codes as BCP 47 tags so "en_US" and "en-us" match.
// Codes that do not parse are compared case-insensitively.
func sameLanguage(a, b string) bool {
	if strings.EqualFold(a, b) {
		return true
	}
	tagA, errA := language.Parse(a)
	tagB, errB := language.Parse(b)
	return errA == nil && errB == nil && tagA == tagB
}
