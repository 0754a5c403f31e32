// Package urlutil маскирует URL и токены перед логированием.
package urlutil

import (
	"net/url"
	"strings"
)

// MaskURL оставляет только scheme и host.
//
//	"https://push.example:9091/metrics/job/travis" → "https://push.example:9091/***"
func MaskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "***invalid-url***"
	}
	return u.Scheme + "://" + u.Host + "/***"
}

// MaskToken оставляет первые 4 символа токена.
// Короткие токены маскируются полностью.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + strings.Repeat("*", 4)
}
