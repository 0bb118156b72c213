package wordlist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/verte-zerg/typeline/internal/model"
	"github.com/verte-zerg/typeline/internal/store"
)

// ErrUnknownList is returned for a list name that is neither built in nor imported.
var ErrUnknownList = errors.New("unknown word list")

// Source provides imported word lists.
type Source interface {
	LoadWords(ctx context.Context, name string, minLen, maxLen int) ([]string, error)
	ListLists(ctx context.Context) ([]model.WordListInfo, error)
}

// Resolve returns the vocabulary called name with words outside
// [minLen, maxLen) removed. Built-in lists take precedence over imported
// ones. src may be nil when only built-in lists are available.
func Resolve(ctx context.Context, name string, minLen, maxLen int, src Source) ([]string, error) {
	var vocab []string
	switch {
	case IsBuiltin(name):
		all, err := Builtin(name)
		if err != nil {
			return nil, err
		}
		vocab = Filter(all, LengthFilter(minLen, maxLen))
	case src != nil:
		loaded, err := src.LoadWords(ctx, name, minLen, maxLen)
		if errors.Is(err, store.ErrNotFound) {
			return nil, unknownListError(ctx, name, src)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %q: %w", name, err)
		}
		vocab = loaded
	default:
		return nil, unknownListError(ctx, name, nil)
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf("word list %q has no words with length in [%d, %d)", name, minLen, maxLen)
	}
	return vocab, nil
}

// Names returns built-in and imported list names.
func Names(ctx context.Context, src Source) ([]string, error) {
	names := BuiltinNames()
	if src == nil {
		return names, nil
	}
	lists, err := src.ListLists(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range lists {
		names = append(names, l.Name)
	}
	return names, nil
}

// Suggest returns up to limit known names that fuzzily match name.
func Suggest(name string, known []string, limit int) []string {
	matches := fuzzy.Find(strings.ToLower(name), known)
	out := make([]string, 0, limit)
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

func unknownListError(ctx context.Context, name string, src Source) error {
	known, err := Names(ctx, src)
	if err != nil {
		known = BuiltinNames()
	}
	suggestions := Suggest(name, known, 3)
	if len(suggestions) == 0 {
		return fmt.Errorf("%w %q (available: %s)", ErrUnknownList, name, strings.Join(known, ", "))
	}
	return fmt.Errorf("%w %q; did you mean %s?", ErrUnknownList, name, strings.Join(suggestions, ", "))
}
