package utils

import "unicode/utf8"

// Preview shortens s to at most n runes for log lines.
func Preview(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}

// MaskAPIKey hides all but the edges of a credential.
func MaskAPIKey(apiKey string) string {
	if apiKey == "" {
		return "(unset)"
	}
	if len(apiKey) <= 8 {
		return "***"
	}
	return apiKey[:4] + "***" + apiKey[len(apiKey)-4:]
}
