// Package schoology replays an authenticated browser session against the
// portal's internal AJAX endpoints. The endpoints are not a public API;
// responses are whatever the logged-in web UI receives, so an expired
// session shows up as a login page rather than a clean error code.
package schoology

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kmilner/schoology-mcp/internal/adapters/feed"
	"github.com/kmilner/schoology-mcp/internal/domain"
	"github.com/kmilner/schoology-mcp/internal/ports"
)

type Client struct {
	httpClient       *http.Client
	session          domain.Session
	coursesEndpoint  string
	upcomingEndpoint string
}

var _ ports.Portal = (*Client)(nil)

func NewClient(httpClient *http.Client, session domain.Session, coursesEndpoint, upcomingEndpoint string) *Client {
	return &Client{
		httpClient:       httpClient,
		session:          session,
		coursesEndpoint:  coursesEndpoint,
		upcomingEndpoint: upcomingEndpoint,
	}
}

// UpcomingAssignments fetches the upcoming-submissions feed and extracts it
// into sorted assignment records. A response body that is not JSON at all is
// the portal's login page, which means the replayed session has expired.
func (c *Client) UpcomingAssignments(ctx context.Context) ([]domain.Assignment, error) {
	body, err := c.get(ctx, c.upcomingEndpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch upcoming submissions: %w", err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: response is not JSON, looks like a login page; sign in to Schoology in your browser and retry", domain.ErrSessionExpired)
	}

	assignments, err := feed.Extract(body)
	if err != nil {
		return nil, fmt.Errorf("extract assignments: %w", err)
	}

	return assignments, nil
}

type coursesEnvelope struct {
	Data struct {
		Courses []domain.Course `json:"courses"`
	} `json:"data"`
}

// EnrolledCourses fetches the site-navigation course list and projects it to
// course and section titles.
func (c *Client) EnrolledCourses(ctx context.Context) ([]domain.Course, error) {
	body, err := c.get(ctx, c.coursesEndpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch course list: %w", err)
	}

	var envelope coursesEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode course list: %v", domain.ErrInvalidFeed, err)
	}

	if envelope.Data.Courses == nil {
		return []domain.Course{}, nil
	}

	return envelope.Data.Courses, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for name, value := range c.session.Headers {
		request.Header.Set(name, value)
	}
	for _, name := range c.session.SortedCookieNames() {
		request.AddCookie(&http.Cookie{Name: name, Value: c.session.Cookies[name]})
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
			return nil, fmt.Errorf("%w: status %d: %s", domain.ErrSessionExpired, response.StatusCode, strings.TrimSpace(string(body)))
		}
		return nil, fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}
