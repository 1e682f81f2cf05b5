package agenda

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmilner/schoology-mcp/internal/domain"
)

const dueDisplayLayout = "Mon, Jan 2 at 3:04 pm"

type RenderOptions struct {
	Now time.Time
}

func renderAssignmentsView(assignments []domain.Assignment, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Upcoming Assignments"),
		s.header.Render(fmt.Sprintf("assignments: %d", len(assignments))),
	}

	if len(assignments) == 0 {
		lines = append(lines, s.empty.Render("Nothing due. Enjoy the free time."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, assignment := range assignments {
		lines = append(lines, s.section.Render(renderAssignment(assignment, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAssignment(assignment domain.Assignment, opts RenderOptions, s styles) string {
	heading := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.item.Render(assignment.Title),
		" ",
		s.course.Render(fmt.Sprintf("(%s)", assignment.Course)),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		heading,
		dueLine(assignment.Due, opts.Now, s),
	)
}

func dueLine(due *time.Time, now time.Time, s styles) string {
	if due == nil {
		return s.noDue.Render("due: not set")
	}

	text := "due: " + due.Format(dueDisplayLayout)
	if relative := formatDueRelative(*due, now); relative != "" {
		text = fmt.Sprintf("%s (%s)", text, relative)
	}

	return dueStyle(*due, now, s).Render(text)
}

func dueStyle(due, now time.Time, s styles) lipgloss.Style {
	if now.IsZero() {
		return s.dueLater
	}
	if due.Sub(now) < 24*time.Hour {
		return s.dueSoon
	}

	return s.dueLater
}

func formatDueRelative(due, now time.Time) string {
	if now.IsZero() {
		return ""
	}
	if due.Before(now) {
		return "past due"
	}

	remaining := due.Sub(now)
	if remaining < 24*time.Hour {
		hours := int(math.Ceil(remaining.Hours()))
		if hours < 1 {
			hours = 1
		}
		suffix := "hours"
		if hours == 1 {
			suffix = "hour"
		}
		return fmt.Sprintf("due in %d %s", hours, suffix)
	}

	days := int(math.Ceil(remaining.Hours() / 24))
	if days < 1 {
		days = 1
	}
	suffix := "days"
	if days == 1 {
		suffix = "day"
	}

	return fmt.Sprintf("due in %d %s", days, suffix)
}

func renderCoursesView(courses []domain.Course, s styles) string {
	lines := []string{
		s.title.Render("Enrolled Courses"),
		s.header.Render(fmt.Sprintf("courses: %d", len(courses))),
	}

	if len(courses) == 0 {
		lines = append(lines, s.empty.Render("No enrolled courses found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, course := range courses {
		lines = append(lines, renderCourse(course, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCourse(course domain.Course, s styles) string {
	title := strings.TrimSpace(course.CourseTitle)
	if title == "" {
		title = "(untitled course)"
	}

	line := s.item.Render(title)
	if section := strings.TrimSpace(course.SectionTitle); section != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, " ", s.course.Render(section))
	}

	return line
}
