package inline

import (
	"context"
	"fmt"
	"strings"

	"github.com/kmilner/schoology-mcp/internal/domain"
	"github.com/kmilner/schoology-mcp/internal/ports"
)

// Source yields cookies parsed from an explicit "name=value; name2=value2"
// string, the shape copied out of a browser devtools Cookie request header.
type Source struct {
	raw string
}

var _ ports.CookieSource = (*Source)(nil)

func NewSource(cookieHeader string) *Source {
	return &Source{raw: cookieHeader}
}

func (s *Source) Cookies(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cookies := Parse(s.raw)
	if len(cookies) == 0 {
		return nil, fmt.Errorf("cookie string %q holds no cookies: %w", s.raw, domain.ErrNoCookies)
	}

	return cookies, nil
}

// Parse splits a semicolon-separated cookie header into a name→value map.
// Later duplicates overwrite earlier ones. A segment without "=" becomes a
// name with an empty value rather than an error; nameless segments are
// dropped because they cannot be replayed in a Cookie header.
func Parse(cookieHeader string) map[string]string {
	cookies := make(map[string]string)
	for _, segment := range strings.Split(cookieHeader, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		name, value, _ := strings.Cut(segment, "=")
		if name == "" {
			continue
		}
		cookies[name] = value
	}

	return cookies
}
