package ports

import "context"

// CookieSource resolves the cookie set for the configured portal domain,
// either from an explicit cookie string or from a local browser profile.
type CookieSource interface {
	Cookies(ctx context.Context) (map[string]string, error)
}
