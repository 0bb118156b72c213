// Package window decides which slice of the word sequence fits on the
// current display line and moves that slice forward and back as the user
// types and corrects.
package window

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/typeline/internal/cursor"
	"github.com/verte-zerg/typeline/internal/logger"
	"github.com/verte-zerg/typeline/internal/words"
)

var (
	// ErrTooNarrow is returned when a word cannot fit the terminal width
	// minus both margins.
	ErrTooNarrow = errors.New("terminal is too narrow")
	// ErrEmpty is returned for an empty word sequence.
	ErrEmpty = errors.New("word sequence is empty")
)

// Engine owns the word sequence and the visible line window [start, end).
// prevStart and prevEnd hold one entry per finished line.
type Engine struct {
	words     []words.Word
	start     int
	end       int
	prevStart []int
	prevEnd   []int
	line      int
	margin    int
}

// New builds line 0 of the window by fitting words greedily from index 0.
func New(seq []words.Word, width, margin int) (*Engine, error) {
	if len(seq) == 0 {
		return nil, ErrEmpty
	}
	available := width - 2*margin
	if available <= 0 {
		return nil, fmt.Errorf("%w: width %d leaves no room for margin %d", ErrTooNarrow, width, margin)
	}
	for i := range seq {
		if size := seq[i].Size(); size > available {
			return nil, fmt.Errorf("%w: %q needs %d columns, %d available", ErrTooNarrow, seq[i].Text(), size, available)
		}
	}
	e := &Engine{words: seq, margin: margin}
	e.end = e.fit(0, width)
	return e, nil
}

// fit returns the largest end such that words [from, end) plus both
// margins fit in width.
func (e *Engine) fit(from, width int) int {
	used := 0
	end := from
	for end < len(e.words) {
		size := e.words[end].Size()
		if used+size+2*e.margin > width {
			break
		}
		used += size
		end++
	}
	return end
}

// Visible synchronises the window with typing progress and returns the
// words of the current line. At most one line transition happens per call.
func (e *Engine) Visible(cur *cursor.Position, width int) ([]words.Word, error) {
	completed := words.CompletedCount(e.words)
	switch {
	case e.start != 0 && completed < e.start:
		if err := e.rollback(cur); err != nil {
			return nil, err
		}
	case completed > e.end-1 && e.end < len(e.words):
		if err := e.advance(cur, width); err != nil {
			return nil, err
		}
	}
	return e.words[e.start:e.end], nil
}

func (e *Engine) rollback(cur *cursor.Position) error {
	// The input handler usually moved the cursor back already.
	if cur.Line() == e.line {
		if err := cur.GoBackToOldLine(); err != nil {
			return fmt.Errorf("failed to roll back line %d: %w", e.line, err)
		}
	}
	e.line--
	e.start = e.prevStart[e.line]
	e.end = e.prevEnd[e.line]
	e.prevStart = e.prevStart[:e.line]
	e.prevEnd = e.prevEnd[:e.line]
	logger.Debug("window rollback", "line", e.line, "start", e.start, "end", e.end)
	return nil
}

func (e *Engine) advance(cur *cursor.Position, width int) error {
	if err := cur.MoveToNewLine(); err != nil {
		return fmt.Errorf("failed to advance past line %d: %w", e.line, err)
	}
	e.prevStart = append(e.prevStart, e.start)
	e.prevEnd = append(e.prevEnd, e.end)
	e.line++
	e.start = e.end
	e.end = e.fit(e.start, width)
	if e.end == e.start {
		return fmt.Errorf("%w: %q does not fit width %d", ErrTooNarrow, e.words[e.start].Text(), width)
	}
	logger.Debug("window advance", "line", e.line, "start", e.start, "end", e.end)
	return nil
}

// Words returns the full sequence. Letters are mutated in place by the
// input handler.
func (e *Engine) Words() []words.Word {
	return e.words
}

// Bounds returns the current window [start, end).
func (e *Engine) Bounds() (start, end int) {
	return e.start, e.end
}

// Line returns the engine's line index.
func (e *Engine) Line() int {
	return e.line
}

// Margin returns the column padding on each side of a line.
func (e *Engine) Margin() int {
	return e.margin
}

// Exhausted reports whether every word of the sequence is completed.
func (e *Engine) Exhausted() bool {
	return words.ActiveIndex(e.words) == len(e.words)
}
