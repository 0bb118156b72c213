// Package words defines the graded-text model: letters, words, and the session word sequence.
package words

import "unicode/utf8"

// Status is the grading state of a single letter.
type Status int

const (
	Unmarked Status = iota
	Correct
	Wrong
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	default:
		return "unmarked"
	}
}

// Letter is one character position of a word.
type Letter struct {
	Char   rune
	Status Status
}

// Graded reports whether the letter has been typed.
func (l Letter) Graded() bool {
	return l.Status != Unmarked
}

// Word is an ordered run of letters ending in a space.
type Word struct {
	Letters   []Letter
	Completed bool
}

// NewWord builds an unmarked word from text and appends the trailing space.
func NewWord(text string) Word {
	letters := make([]Letter, 0, utf8.RuneCountInString(text)+1)
	for _, r := range text {
		letters = append(letters, Letter{Char: r})
	}
	letters = append(letters, Letter{Char: ' '})
	return Word{Letters: letters}
}

// Size returns the number of letters including the trailing space.
func (w *Word) Size() int {
	return len(w.Letters)
}

// Text returns the word without its trailing space.
func (w *Word) Text() string {
	runes := make([]rune, 0, len(w.Letters))
	for _, l := range w.Letters[:len(w.Letters)-1] {
		runes = append(runes, l.Char)
	}
	return string(runes)
}

// Grade marks the first unmarked letter against typed. It returns whether a
// letter was graded and whether it matched.
func (w *Word) Grade(typed rune) (marked, correct bool) {
	for i := range w.Letters {
		letter := &w.Letters[i]
		if letter.Graded() {
			continue
		}
		if letter.Char == typed {
			letter.Status = Correct
			correct = true
		} else {
			letter.Status = Wrong
		}
		marked = true
		break
	}
	w.Completed = w.allGraded()
	return marked, correct
}

// Ungrade resets the last graded letter. It returns false when nothing in the
// word has been typed yet.
func (w *Word) Ungrade() bool {
	for i := len(w.Letters) - 1; i >= 0; i-- {
		if w.Letters[i].Graded() {
			w.Letters[i].Status = Unmarked
			w.Completed = false
			return true
		}
	}
	return false
}

// ReopenSpace unmarks the trailing space so the word is active again.
func (w *Word) ReopenSpace() {
	w.Letters[len(w.Letters)-1].Status = Unmarked
	w.Completed = false
}

func (w *Word) allGraded() bool {
	for _, l := range w.Letters {
		if !l.Graded() {
			return false
		}
	}
	return true
}

// Build converts a shuffled vocabulary into a word sequence, keeping words
// whose code point length is in [minLen, maxLen).
func Build(vocabulary []string, minLen, maxLen int) []Word {
	out := make([]Word, 0, len(vocabulary))
	for _, text := range vocabulary {
		if !InRange(text, minLen, maxLen) {
			continue
		}
		out = append(out, NewWord(text))
	}
	return out
}

// InRange reports whether the code point length of text is in [minLen, maxLen).
func InRange(text string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(text)
	return n >= minLen && n < maxLen
}

// CompletedCount counts completed words in the sequence.
func CompletedCount(seq []Word) int {
	n := 0
	for i := range seq {
		if seq[i].Completed {
			n++
		}
	}
	return n
}

// ActiveIndex returns the index of the first word that is not completed, or
// len(seq) when every word is completed.
func ActiveIndex(seq []Word) int {
	for i := range seq {
		if !seq[i].Completed {
			return i
		}
	}
	return len(seq)
}
