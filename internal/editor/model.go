package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/itarato/gomqlet/internal/gateway"
)

// Model is the bubbletea front end: it owns a Session and turns key
// presses into buffer edits, re-running the pipeline after every change
// and rendering the buffer plus the current completion list through a
// scrolling viewport. This is the one piece of terminal UI the core
// itself has no opinion about (§5 says the core is driven once per
// keystroke by an external orchestrator — Model is that orchestrator).
type Model struct {
	session  *Session
	executor gateway.Executor
	result   Result
	selected int
	status   string
	quitting bool
	view     viewport.Model
}

// NewModel wraps session in a bubbletea program, using executor to run
// the "execute" key binding.
func NewModel(session *Session, executor gateway.Executor) *Model {
	m := &Model{session: session, executor: executor, view: viewport.New(80, 24)}
	m.result = session.Analyze()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = msg.Height
		return m, nil

	case executedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("execute failed: %s", msg.err)
		} else {
			m.status = fmt.Sprintf("response: %s", msg.body)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyBackspace:
		m.session.DeleteBefore(m.session.Cursor())
		m.reanalyze()
		return m, nil

	case tea.KeyLeft:
		m.session.cursor = clamp(m.session.Cursor()-1, 0, len(m.session.Text()))
		return m, nil

	case tea.KeyRight:
		m.session.cursor = clamp(m.session.Cursor()+1, 0, len(m.session.Text()))
		return m, nil

	case tea.KeyUp:
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case tea.KeyDown:
		if m.result.Suggestion != nil && m.selected < len(m.result.Suggestion.Elems)-1 {
			m.selected++
		}
		return m, nil

	case tea.KeyTab, tea.KeyEnter:
		if m.result.Suggestion != nil && len(m.result.Suggestion.Elems) > 0 {
			if err := m.session.ApplySuggestion(m.result.Suggestion, m.selected); err != nil {
				m.status = err.Error()
			}
			m.reanalyze()
		}
		return m, nil

	case tea.KeyCtrlX:
		return m, m.executeCmd()

	case tea.KeyRunes, tea.KeySpace:
		for _, r := range msg.Runes {
			m.session.InsertAt(m.session.Cursor(), r)
		}
		if msg.Type == tea.KeySpace {
			m.session.InsertAt(m.session.Cursor(), ' ')
		}
		m.reanalyze()
		return m, nil
	}

	return m, nil
}

func (m *Model) reanalyze() {
	m.result = m.session.Analyze()
	m.selected = 0
}

// executedMsg carries the result of an "execute" request back into Update.
type executedMsg struct {
	body []byte
	err  error
}

func (m *Model) executeCmd() tea.Cmd {
	return func() tea.Msg {
		body, err := m.session.Execute(m.executor)
		return executedMsg{body: body, err: err}
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.session.Text())
	b.WriteString("\n\n")

	switch {
	case m.result.ParseErr != nil:
		fmt.Fprintf(&b, "parse error: %s\n", m.result.ParseErr.Error())
	case m.result.AnalyzeErr != nil:
		fmt.Fprintf(&b, "analyzer error: %s\n", m.result.AnalyzeErr.Error())
	case m.result.Suggestion != nil:
		b.WriteString("suggestions (replacing " + renderToken(m.result.Suggestion.Token) + "):\n")
		for i, e := range m.result.Suggestion.Elems {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%s\t%s\n", cursor, e.Name, e.KindLabel)
		}
	}

	if m.status != "" {
		fmt.Fprintf(&b, "\n%s\n", m.status)
	}

	// A long suggestion list or a large pasted document can exceed the
	// terminal height; the viewport clips and scrolls instead of letting
	// bubbletea's renderer wrap it unreadably.
	m.view.SetContent(b.String())
	return m.view.View()
}
