package domain

import "time"

// Assignment is one upcoming assignment from the portal feed.
// Due is nil when the feed's due-date text did not match the known format.
type Assignment struct {
	Title  string     `json:"title"`
	Due    *time.Time `json:"due"`
	Course string     `json:"course"`
}

// CompareByDue orders assignments by due date ascending. Assignments without
// a due date sort after every dated one; with a stable sort, ties and
// undated entries keep their feed order.
func CompareByDue(a, b Assignment) int {
	switch {
	case a.Due == nil && b.Due == nil:
		return 0
	case a.Due == nil:
		return 1
	case b.Due == nil:
		return -1
	default:
		return a.Due.Compare(*b.Due)
	}
}
