package wordlist

import "testing"

func TestLengthFilterHalfOpen(t *testing.T) {
	keep := LengthFilter(2, 4)
	for _, word := range []string{"go", "cat", "né"} {
		if !keep(word) {
			t.Fatalf("expected %q to be kept", word)
		}
	}
	for _, word := range []string{"a", "door", ""} {
		if keep(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter([]string{"zebra", "a", "ox", "bee"}, LengthFilter(2, 4))
	if len(got) != 2 || got[0] != "ox" || got[1] != "bee" {
		t.Fatalf("unexpected filtered words: %v", got)
	}
}
