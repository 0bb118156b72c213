// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typeline/internal/logger"
	"github.com/verte-zerg/typeline/internal/model"
	"github.com/verte-zerg/typeline/internal/session"
	"github.com/verte-zerg/typeline/internal/words"
)

const tickInterval = 100 * time.Millisecond

type tickMsg time.Time

// Model implements the Bubble Tea typing UI.
type Model struct {
	session   *session.Session
	timeframe time.Duration
	screen    Screen
	timer     progress.Model

	width  int
	height int

	finished bool
	err      error
}

// NewModel constructs a typing TUI model around a prepared session.
func NewModel(s *session.Session, timeframe time.Duration) *Model {
	return &Model{
		session:   s,
		timeframe: timeframe,
		screen:    newCanvas(),
		timer: progress.New(
			progress.WithSolidFill("#C89A3A"),
			progress.WithoutPercentage(),
			progress.WithWidth(30),
		),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.session.Resize(msg.Width)
		m.timer.Width = min(30, max(msg.Width/3, 1))
		return m, nil
	case tickMsg:
		if m.session.Done() {
			return m.finish()
		}
		return m, tick()
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		for _, r := range keyRunes(msg) {
			if err := m.session.HandleKey(r); err != nil {
				logger.Error("keystroke failed", "key", r, "error", err)
				m.err = err
				return m, tea.Quit
			}
			if r == session.KeyReset {
				logger.Info("session restarted")
			}
		}
		if m.session.Done() {
			return m.finish()
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) finish() (tea.Model, tea.Cmd) {
	m.finished = true
	correct, attempted := m.session.Counts()
	logger.Info("session finished", "correct", correct, "attempted", attempted, "elapsed", m.session.Elapsed())
	return m, tea.Quit
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.finished {
		return ""
	}
	drawLine(m.screen, m.session.Line(), m.session.Margin())
	m.screen.PlaceCursor(m.session.Margin()+m.session.Cursor().X(), 0)
	content := m.screen.Flush()
	if m.width == 0 || m.height == 0 {
		return content
	}
	footer := m.renderFooter()
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

// drawLine writes one window line: margin, graded letters, margin.
func drawLine(scr Screen, line []words.Word, margin int) {
	scr.Clear()
	pad := strings.Repeat(" ", margin)
	scr.WriteText(pad)
	for i := range line {
		for _, l := range line[i].Letters {
			switch l.Status {
			case words.Correct:
				scr.WriteColored(string(l.Char), ColorCorrect)
			case words.Wrong:
				if l.Char == ' ' {
					scr.WriteColored(" ", ColorWrongSpace)
				} else {
					scr.WriteColored(string(l.Char), ColorWrong)
				}
			default:
				scr.WriteText(string(l.Char))
			}
		}
	}
	scr.WriteText(pad)
}

func (m *Model) renderFooter() string {
	correct, attempted := m.session.Counts()
	segments := make([]string, 0, 4)
	if m.session.Started() {
		remaining := m.session.Remaining()
		fraction := 0.0
		if m.timeframe > 0 {
			fraction = float64(remaining) / float64(m.timeframe)
		}
		segments = append(segments, m.timer.ViewAs(fraction), fmt.Sprintf("%ds", int(remaining.Round(time.Second).Seconds())))
	} else {
		segments = append(segments, fmt.Sprintf("%ds · start typing", int(m.timeframe.Seconds())))
	}
	segments = append(segments, fmt.Sprintf("%d/%d correct", correct, attempted))
	help := []string{}
	for _, b := range []key.Binding{keys.Reset, keys.Quit} {
		help = append(help, b.Help().Key+" "+b.Help().Desc)
	}
	segments = append(segments, strings.Join(help, "  "))
	return footerStyle.Render(strings.Join(segments, "  "))
}

// Finished reports whether the session ran to completion.
func (m *Model) Finished() bool {
	return m.finished
}

// Err returns the error that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Summary returns the session counters for the final report.
func (m *Model) Summary() model.Summary {
	return m.session.Summary()
}
