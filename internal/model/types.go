// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Timeframe     time.Duration
	MinWordLength int
	MaxWordLength int
	WordsList     string
	Margin        int
	Debug         bool
}

// WordListInfo describes a selectable vocabulary.
type WordListInfo struct {
	Name       string
	Words      int
	Builtin    bool
	Source     string
	ImportedAt time.Time
}

// Summary captures the final counters of a session.
type Summary struct {
	Correct          int
	Attempted        int
	CompletedWords   int
	CompletedLetters int
	Timeframe        time.Duration
}
