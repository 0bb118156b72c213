package stats

import (
	"bytes"
	"testing"
	"time"

	"github.com/verte-zerg/typeline/internal/model"
)

func TestReportMetrics(t *testing.T) {
	tests := []struct {
		name     string
		summary  model.Summary
		accuracy int64
		wpm      int64
	}{
		{
			name:     "no data",
			summary:  model.Summary{Timeframe: time.Minute},
			accuracy: 0,
			wpm:      0,
		},
		{
			name:     "attempted without completed words",
			summary:  model.Summary{Correct: 2, Attempted: 3, Timeframe: time.Minute},
			accuracy: 67,
			wpm:      0,
		},
		{
			name: "one minute",
			summary: model.Summary{
				Correct:          45,
				Attempted:        50,
				CompletedWords:   10,
				CompletedLetters: 50,
				Timeframe:        time.Minute,
			},
			accuracy: 90,
			wpm:      10,
		},
		{
			name: "fifteen seconds",
			summary: model.Summary{
				Correct:          8,
				Attempted:        8,
				CompletedWords:   2,
				CompletedLetters: 8,
				Timeframe:        15 * time.Second,
			},
			accuracy: 100,
			wpm:      8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accuracy(tt.summary); got != tt.accuracy {
				t.Fatalf("accuracy: got %d, want %d", got, tt.accuracy)
			}
			if got := WPM(tt.summary); got != tt.wpm {
				t.Fatalf("wpm: got %d, want %d", got, tt.wpm)
			}
		})
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	s := model.Summary{Correct: 3, Attempted: 4, CompletedWords: 1, CompletedLetters: 4, Timeframe: time.Minute}
	if err := WriteReport(&buf, s); err != nil {
		t.Fatalf("write report: %v", err)
	}
	if buf.String() != "Accuracy 75%\nWPM 1\n" {
		t.Fatalf("unexpected report: %q", buf.String())
	}
}
