// Package session holds the state of one typing session and applies
// keystrokes to it.
package session

import (
	"fmt"
	"time"

	"github.com/verte-zerg/typeline/internal/cursor"
	"github.com/verte-zerg/typeline/internal/generator"
	"github.com/verte-zerg/typeline/internal/logger"
	"github.com/verte-zerg/typeline/internal/model"
	"github.com/verte-zerg/typeline/internal/window"
	"github.com/verte-zerg/typeline/internal/words"
)

// Raw key values with special meaning. Every other key is graded.
const (
	KeyReset     rune = 9
	KeyBackspace rune = 127
)

// Options configures how a session builds its word sequence.
type Options struct {
	Vocabulary    []string
	MinWordLength int
	MaxWordLength int
	Width         int
	Margin        int
	Timeframe     time.Duration
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// Session bundles the word sequence, cursor, window and counters. It is
// owned by a single event loop and is not safe for concurrent use.
type Session struct {
	opts Options
	gen  *generator.Generator
	now  func() time.Time

	cursor *cursor.Position
	window *window.Engine
	width  int

	correct   int
	attempted int

	started   bool
	startedAt time.Time
}

// New builds a session with a freshly shuffled word sequence.
func New(opts Options, gen *generator.Generator) (*Session, error) {
	s := &Session{opts: opts, gen: gen, now: opts.Now, width: opts.Width}
	if s.now == nil {
		s.now = time.Now
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards all state and rebuilds the session from a new shuffle,
// laid out for the current width.
func (s *Session) Reset() error {
	shuffled := s.gen.Shuffle(s.opts.Vocabulary)
	seq := words.Build(shuffled, s.opts.MinWordLength, s.opts.MaxWordLength)
	engine, err := window.New(seq, s.width, s.opts.Margin)
	if err != nil {
		return fmt.Errorf("failed to build line window: %w", err)
	}
	s.window = engine
	s.cursor = cursor.New()
	s.correct = 0
	s.attempted = 0
	s.started = false
	s.startedAt = time.Time{}
	logger.Debug("session reset", "words", len(seq), "width", s.width, "margin", s.opts.Margin)
	return nil
}

// HandleKey applies one keystroke.
func (s *Session) HandleKey(key rune) error {
	if key == KeyReset {
		return s.Reset()
	}
	if !s.started {
		s.started = true
		s.startedAt = s.now()
	}
	if key == KeyBackspace {
		if err := s.backspace(); err != nil {
			return err
		}
	} else {
		s.grade(key)
	}
	return s.sync()
}

// sync lets the window follow the keystroke that was just applied.
func (s *Session) sync() error {
	if _, err := s.window.Visible(s.cursor, s.width); err != nil {
		return fmt.Errorf("failed to update line window: %w", err)
	}
	return nil
}

func (s *Session) grade(key rune) {
	seq := s.window.Words()
	i := words.ActiveIndex(seq)
	if i == len(seq) {
		return
	}
	marked, correct := seq[i].Grade(key)
	if !marked {
		return
	}
	s.attempted++
	if correct {
		s.correct++
	}
	s.cursor.MoveRight()
}

func (s *Session) backspace() error {
	seq := s.window.Words()
	i := words.ActiveIndex(seq)
	if i < len(seq) && seq[i].Ungrade() {
		if err := s.cursor.MoveLeft(); err != nil {
			return fmt.Errorf("failed to move cursor left: %w", err)
		}
		return nil
	}
	if i == 0 {
		return nil
	}
	seq[i-1].ReopenSpace()
	if s.cursor.X() == 0 {
		if err := s.cursor.GoBackToOldLine(); err != nil {
			return fmt.Errorf("failed to return to previous line: %w", err)
		}
		return nil
	}
	if err := s.cursor.MoveLeft(); err != nil {
		return fmt.Errorf("failed to move cursor left: %w", err)
	}
	return nil
}

// Resize changes the width used for later line fits. Lines already laid
// out keep their boundaries.
func (s *Session) Resize(width int) {
	if width <= 0 {
		logger.Warn("ignoring terminal resize", "width", width)
		return
	}
	s.width = width
}

// Line returns the words of the current display line.
func (s *Session) Line() []words.Word {
	start, end := s.window.Bounds()
	return s.window.Words()[start:end]
}

// LineIndex returns the window's current line.
func (s *Session) LineIndex() int {
	return s.window.Line()
}

// Cursor returns the session cursor.
func (s *Session) Cursor() *cursor.Position {
	return s.cursor
}

// Words returns the full word sequence.
func (s *Session) Words() []words.Word {
	return s.window.Words()
}

// Margin returns the configured line margin.
func (s *Session) Margin() int {
	return s.window.Margin()
}

// Counts returns the correct and attempted keystroke totals.
func (s *Session) Counts() (correct, attempted int) {
	return s.correct, s.attempted
}

// Started reports whether the first keystroke has been received.
func (s *Session) Started() bool {
	return s.started
}

// Elapsed returns the time since the first keystroke.
func (s *Session) Elapsed() time.Duration {
	if !s.started {
		return 0
	}
	return s.now().Sub(s.startedAt)
}

// Remaining returns the time left in the timeframe.
func (s *Session) Remaining() time.Duration {
	left := s.opts.Timeframe - s.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}

// Done reports whether the session is over: the timeframe has elapsed
// since the first keystroke, or every word has been typed.
func (s *Session) Done() bool {
	if !s.started {
		return false
	}
	return s.Elapsed() >= s.opts.Timeframe || s.window.Exhausted()
}

// Summary captures the final counters for reporting.
func (s *Session) Summary() model.Summary {
	seq := s.window.Words()
	completedLetters := 0
	completedWords := 0
	for i := range seq {
		if seq[i].Completed {
			completedWords++
			completedLetters += seq[i].Size()
		}
	}
	return model.Summary{
		Correct:          s.correct,
		Attempted:        s.attempted,
		CompletedWords:   completedWords,
		CompletedLetters: completedLetters,
		Timeframe:        s.opts.Timeframe,
	}
}
