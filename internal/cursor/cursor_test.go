package cursor

import (
	"errors"
	"testing"
)

func TestMoveLeftAtLineStart(t *testing.T) {
	p := New()
	if err := p.MoveLeft(); !errors.Is(err, ErrAtLineStart) {
		t.Fatalf("expected ErrAtLineStart, got %v", err)
	}
	p.MoveRight()
	if err := p.MoveLeft(); err != nil {
		t.Fatalf("move left: %v", err)
	}
	if p.X() != 0 {
		t.Fatalf("expected x=0, got %d", p.X())
	}
}

func TestNewLineAndBack(t *testing.T) {
	p := New()
	for i := 0; i < 8; i++ {
		p.MoveRight()
	}
	if err := p.MoveToNewLine(); err != nil {
		t.Fatalf("new line: %v", err)
	}
	if p.Line() != 1 || p.X() != 0 {
		t.Fatalf("expected (1,0), got (%d,%d)", p.Line(), p.X())
	}
	for i := 0; i < 5; i++ {
		p.MoveRight()
	}
	if err := p.MoveToNewLine(); err != nil {
		t.Fatalf("new line: %v", err)
	}
	if len(p.lineEnds) != p.Line() {
		t.Fatalf("history length %d does not match line %d", len(p.lineEnds), p.Line())
	}

	if err := p.GoBackToOldLine(); err != nil {
		t.Fatalf("go back: %v", err)
	}
	if p.Line() != 1 || p.X() != 4 {
		t.Fatalf("expected (1,4), got (%d,%d)", p.Line(), p.X())
	}
	if err := p.GoBackToOldLine(); err != nil {
		t.Fatalf("go back: %v", err)
	}
	if p.Line() != 0 || p.X() != 7 {
		t.Fatalf("expected (0,7), got (%d,%d)", p.Line(), p.X())
	}
	if len(p.lineEnds) != 0 {
		t.Fatalf("expected empty history, got %v", p.lineEnds)
	}
	if err := p.GoBackToOldLine(); !errors.Is(err, ErrNoPreviousLine) {
		t.Fatalf("expected ErrNoPreviousLine, got %v", err)
	}
}

func TestMoveToNewLineRequiresTypedText(t *testing.T) {
	p := New()
	if err := p.MoveToNewLine(); !errors.Is(err, ErrEmptyLine) {
		t.Fatalf("expected ErrEmptyLine, got %v", err)
	}
	if p.Line() != 0 || len(p.lineEnds) != 0 {
		t.Fatalf("failed move must not change state, got line %d history %v", p.Line(), p.lineEnds)
	}
	p.MoveRight()
	if err := p.MoveToNewLine(); err != nil {
		t.Fatalf("new line: %v", err)
	}
	if err := p.GoBackToOldLine(); err != nil {
		t.Fatalf("go back: %v", err)
	}
	if p.X() != 0 {
		t.Fatalf("expected x=0 for a one-column line, got %d", p.X())
	}
}
