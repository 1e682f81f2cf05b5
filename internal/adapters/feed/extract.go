// Package feed turns the portal's upcoming-submissions payload into typed
// assignment records.
package feed

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/kmilner/schoology-mcp/internal/domain"
)

const (
	eventSelector    = ".upcoming-event"
	titleSelector    = ".event-title a"
	subtitleSelector = ".readonly-title.event-subtitle"

	dueLayout = "Monday, January 2, 2006 at 3:04 pm"

	excerptLimit = 256
)

// Extract decodes the {"html": "<fragment>"} envelope and parses every
// upcoming-event node in the fragment into an assignment record, sorted by
// due date with undated records last. The envelope shape is a hard contract;
// individual event nodes degrade instead: a node missing its title anchor or
// subtitle rows is skipped, and an unparseable due string leaves the record
// without a due date.
func Extract(payload []byte) ([]domain.Assignment, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object: %s", domain.ErrInvalidFeed, excerpt(payload))
	}

	rawFragment, ok := envelope["html"]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q field: %s", domain.ErrInvalidFeed, "html", excerpt(payload))
	}

	var fragment string
	if err := json.Unmarshal(rawFragment, &fragment); err != nil {
		return nil, fmt.Errorf("%w: %q field is not a string: %s", domain.ErrInvalidFeed, "html", excerpt(payload))
	}

	if fragment == "" {
		return []domain.Assignment{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parse feed fragment: %w", err)
	}

	assignments := []domain.Assignment{}
	doc.Find(eventSelector).Each(func(_ int, event *goquery.Selection) {
		title := strings.TrimSpace(event.Find(titleSelector).First().Text())
		subtitles := event.Find(subtitleSelector)
		if title == "" || subtitles.Length() == 0 {
			return
		}

		assignments = append(assignments, domain.Assignment{
			Title:  title,
			Due:    parseDue(strings.TrimSpace(subtitles.First().Text())),
			Course: strings.TrimSpace(subtitles.Last().Text()),
		})
	})

	slices.SortStableFunc(assignments, domain.CompareByDue)

	return assignments, nil
}

// parseDue normalizes the portal's human-readable due string. A bare day
// given with no time ("Due Tuesday, January 6, 2026 at") means end of day.
// Anything that still does not match the portal's date format yields nil
// rather than an error.
func parseDue(text string) *time.Time {
	text = strings.TrimPrefix(text, "Due ")
	if strings.HasSuffix(text, "at") {
		text += " 11:59 pm"
	}

	due, err := time.Parse(dueLayout, strings.ToLower(text))
	if err != nil {
		return nil
	}

	return &due
}

// excerpt truncates a payload for error messages; a login page can be tens
// of kilobytes.
func excerpt(payload []byte) string {
	s := strings.TrimSpace(string(payload))
	if len(s) > excerptLimit {
		return s[:excerptLimit] + "..."
	}

	return s
}
