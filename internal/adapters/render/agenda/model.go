package agenda

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmilner/schoology-mcp/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	view   func(s styles) string
	styles styles
	output string
}

func newModel(view func(s styles) string) model {
	return model{
		view:   view,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.view(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// RenderAssignments renders the upcoming-assignments agenda for a terminal.
func RenderAssignments(assignments []domain.Assignment, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderAssignmentsView(assignments, opts, s)
	})
}

// RenderCourses renders the enrolled-course list for a terminal.
func RenderCourses(courses []domain.Course) (string, error) {
	return run(func(s styles) string {
		return renderCoursesView(courses, s)
	})
}

func run(view func(s styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(view),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
