// Package stats contains the end-of-session report.
package stats

import (
	"fmt"
	"io"
	"math"

	"github.com/verte-zerg/typeline/internal/model"
)

// Accuracy returns the rounded percentage of correct keystrokes, or 0 when
// nothing was typed.
func Accuracy(s model.Summary) int64 {
	if s.Attempted <= 0 {
		return 0
	}
	return int64(math.Round(float64(s.Correct) / float64(s.Attempted) * 100))
}

// AverageWordLength returns the mean letter count of completed words,
// trailing space included.
func AverageWordLength(s model.Summary) float64 {
	if s.CompletedWords <= 0 {
		return 0
	}
	return float64(s.CompletedLetters) / float64(s.CompletedWords)
}

// WPM returns attempted keystrokes expressed in average completed words per
// minute of the configured timeframe.
func WPM(s model.Summary) int64 {
	avg := AverageWordLength(s)
	minutes := s.Timeframe.Minutes()
	if avg <= 0 || minutes <= 0 {
		return 0
	}
	return int64(math.Round((float64(s.Attempted) / avg) / minutes))
}

// WriteReport prints the two report lines.
func WriteReport(w io.Writer, s model.Summary) error {
	if _, err := fmt.Fprintf(w, "Accuracy %d%%\n", Accuracy(s)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "WPM %d\n", WPM(s)); err != nil {
		return err
	}
	return nil
}
