package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/steipete/sweetcookie"

	"github.com/kmilner/schoology-mcp/internal/domain"
	"github.com/kmilner/schoology-mcp/internal/ports"
)

// getter matches sweetcookie.Get so tests can stub the cookie-store read.
type getter func(ctx context.Context, opts sweetcookie.Options) (sweetcookie.Result, error)

// Source harvests live session cookies for one host from the local browser
// cookie stores. The configured browser is tried alone first; when it is
// unknown or holds nothing for the host, the full default browser order is
// scanned as a fallback.
type Source struct {
	host    string
	browser string
	get     getter
}

var _ ports.CookieSource = (*Source)(nil)

var knownBrowsers = map[string]sweetcookie.Browser{
	"chrome":   sweetcookie.BrowserChrome,
	"chromium": sweetcookie.BrowserChromium,
	"edge":     sweetcookie.BrowserEdge,
	"brave":    sweetcookie.BrowserBrave,
	"vivaldi":  sweetcookie.BrowserVivaldi,
	"opera":    sweetcookie.BrowserOpera,
	"firefox":  sweetcookie.BrowserFirefox,
	"safari":   sweetcookie.BrowserSafari,
}

func NewSource(host, browser string) *Source {
	return &Source{
		host:    host,
		browser: browser,
		get:     sweetcookie.Get,
	}
}

func (s *Source) Cookies(ctx context.Context) (map[string]string, error) {
	var warnings []string

	for _, browsers := range s.attempts() {
		result, err := s.get(ctx, sweetcookie.Options{
			URL:      "https://" + s.host,
			Browsers: browsers,
			Mode:     sweetcookie.ModeFirst,
		})
		if err != nil {
			return nil, fmt.Errorf("read browser cookie stores for %s: %w", s.host, err)
		}

		warnings = append(warnings, result.Warnings...)
		if len(result.Cookies) > 0 {
			return collapse(result.Cookies), nil
		}
	}

	err := fmt.Errorf("%w %s; sign in to Schoology in your browser and retry", domain.ErrNoCookies, s.host)
	if len(warnings) > 0 {
		err = fmt.Errorf("%w (%s)", err, strings.Join(warnings, "; "))
	}

	return nil, err
}

// attempts returns the browser lists to scan in order. A nil list makes
// sweetcookie walk its default browser order.
func (s *Source) attempts() [][]sweetcookie.Browser {
	name := strings.ToLower(strings.TrimSpace(s.browser))
	if target, ok := knownBrowsers[name]; ok {
		return [][]sweetcookie.Browser{{target}, nil}
	}

	return [][]sweetcookie.Browser{nil}
}

func collapse(cookies []sweetcookie.Cookie) map[string]string {
	out := make(map[string]string, len(cookies))
	for _, cookie := range cookies {
		out[cookie.Name] = cookie.Value
	}

	return out
}
