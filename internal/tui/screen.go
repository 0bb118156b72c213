package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ColorClass selects how a run of text is drawn.
type ColorClass int

const (
	ColorDefault ColorClass = iota
	ColorCorrect
	ColorWrong
	ColorWrongSpace
)

var (
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	correctStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	wrongStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	wrongSpaceStyle = lipgloss.NewStyle().Background(lipgloss.Color("#FF4D4F"))
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

func styleFor(class ColorClass) lipgloss.Style {
	switch class {
	case ColorCorrect:
		return correctStyle
	case ColorWrong:
		return wrongStyle
	case ColorWrongSpace:
		return wrongSpaceStyle
	default:
		return pendingStyle
	}
}

// Screen is the drawing surface the typing view renders onto.
type Screen interface {
	Clear()
	PlaceCursor(column, line int)
	WriteText(text string)
	WriteColored(text string, class ColorClass)
	Flush() string
}

type cell struct {
	r     rune
	class ColorClass
}

// canvas is a Screen that buffers cells and renders them with lipgloss on
// Flush. Text is appended to the last row; '\n' opens a new row.
type canvas struct {
	rows      [][]cell
	cursorCol int
	cursorRow int
	hasCursor bool
}

func newCanvas() *canvas {
	c := &canvas{}
	c.Clear()
	return c
}

func (c *canvas) Clear() {
	c.rows = [][]cell{{}}
	c.hasCursor = false
	c.cursorCol = 0
	c.cursorRow = 0
}

func (c *canvas) PlaceCursor(column, line int) {
	c.cursorCol = column
	c.cursorRow = line
	c.hasCursor = true
}

func (c *canvas) WriteText(text string) {
	c.WriteColored(text, ColorDefault)
}

func (c *canvas) WriteColored(text string, class ColorClass) {
	for _, r := range text {
		if r == '\n' {
			c.rows = append(c.rows, []cell{})
			continue
		}
		last := len(c.rows) - 1
		c.rows[last] = append(c.rows[last], cell{r: r, class: class})
	}
}

// Flush renders the buffered rows. The cell under the cursor is drawn
// reversed; a cursor past the end of its row is drawn as a reversed blank.
func (c *canvas) Flush() string {
	lines := make([]string, len(c.rows))
	for row, cells := range c.rows {
		var b strings.Builder
		col := 0
		cursorDrawn := false
		for _, cl := range cells {
			style := styleFor(cl.class)
			if c.hasCursor && row == c.cursorRow && col == c.cursorCol {
				style = style.Reverse(true)
				cursorDrawn = true
			}
			b.WriteString(style.Render(string(cl.r)))
			col += runewidth.RuneWidth(cl.r)
		}
		if c.hasCursor && row == c.cursorRow && !cursorDrawn && c.cursorCol >= col {
			b.WriteString(strings.Repeat(" ", c.cursorCol-col))
			b.WriteString(pendingStyle.Reverse(true).Render(" "))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}
