package domain

import (
	"maps"
	"slices"
	"strings"
)

// Session is the authenticated request context replayed against the portal:
// the resolved cookie set plus the fixed header set an in-browser AJAX call
// would carry. Built once at startup and read-only afterwards.
type Session struct {
	BaseURL string
	Cookies map[string]string
	Headers map[string]string
}

// NewSession copies cookies into an immutable session for baseURL. The header
// set mirrors what the portal's own frontend sends with XHR requests; the
// Referer is pinned to the base URL because the endpoints reject bare
// cross-origin requests, and is omitted when no base URL is configured.
func NewSession(baseURL string, cookies map[string]string) Session {
	headers := map[string]string{
		"Accept":           "application/json, text/javascript, */*; q=0.01",
		"Accept-Language":  "en,en-US;q=0.9",
		"Cache-Control":    "no-cache",
		"DNT":              "1",
		"Pragma":           "no-cache",
		"Priority":         "u=1, i",
		"User-Agent":       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36",
		"X-Requested-With": "XMLHttpRequest",
	}
	if baseURL != "" {
		headers["Referer"] = baseURL
	}

	return Session{
		BaseURL: baseURL,
		Cookies: maps.Clone(cookies),
		Headers: headers,
	}
}

// SortedCookieNames returns the cookie names in lexical order, so requests
// and diagnostics are deterministic regardless of map iteration.
func (s Session) SortedCookieNames() []string {
	names := slices.Collect(maps.Keys(s.Cookies))
	slices.Sort(names)
	return names
}

// Host returns the bare host of the session base URL.
func (s Session) Host() string {
	host := strings.TrimPrefix(s.BaseURL, "https://")
	host = strings.TrimPrefix(host, "http://")
	return strings.TrimSuffix(host, "/")
}
