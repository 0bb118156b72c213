// Package cursor tracks the typing position as a line and column.
package cursor

import "errors"

var (
	// ErrAtLineStart is returned when moving left from column 0.
	ErrAtLineStart = errors.New("cursor is at the start of the line")
	// ErrNoPreviousLine is returned when going back from line 0.
	ErrNoPreviousLine = errors.New("cursor is on the first line")
	// ErrEmptyLine is returned when finishing a line nothing was typed on.
	ErrEmptyLine = errors.New("cursor has not moved on this line")
)

// Position is the cursor of a typing session. The line ends of every
// finished line are kept on a stack so moving back is exact.
type Position struct {
	x        int
	line     int
	lineEnds []int
}

// New returns a cursor at line 0, column 0.
func New() *Position {
	return &Position{}
}

// X returns the column within the current line.
func (p *Position) X() int {
	return p.x
}

// Line returns the current line index.
func (p *Position) Line() int {
	return p.line
}

// MoveRight advances one column.
func (p *Position) MoveRight() {
	p.x++
}

// MoveLeft steps back one column.
func (p *Position) MoveLeft() error {
	if p.x == 0 {
		return ErrAtLineStart
	}
	p.x--
	return nil
}

// MoveToNewLine records the rightmost occupied column of the finished line
// and moves to column 0 of the next one. A line can only be finished after
// something was typed on it.
func (p *Position) MoveToNewLine() error {
	if p.x == 0 {
		return ErrEmptyLine
	}
	p.lineEnds = append(p.lineEnds, p.x-1)
	p.line++
	p.x = 0
	return nil
}

// GoBackToOldLine returns to the recorded end of the previous line.
func (p *Position) GoBackToOldLine() error {
	if p.line == 0 {
		return ErrNoPreviousLine
	}
	p.line--
	p.x = p.lineEnds[p.line]
	p.lineEnds = p.lineEnds[:p.line]
	return nil
}
