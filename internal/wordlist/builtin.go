package wordlist

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

// DefaultList is the vocabulary used when none is configured.
const DefaultList = "english1k"

//go:embed lists/*.txt
var builtinFS embed.FS

var builtinFiles = map[string]string{
	"english1k":  "lists/english1k.txt",
	"english200": "lists/english200.txt",
}

// BuiltinNames returns the names of the embedded vocabularies.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinFiles))
	for name := range builtinFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsBuiltin reports whether name is an embedded vocabulary.
func IsBuiltin(name string) bool {
	_, ok := builtinFiles[strings.ToLower(name)]
	return ok
}

// Builtin returns the words of an embedded vocabulary.
func Builtin(name string) ([]string, error) {
	path, ok := builtinFiles[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownList, name)
	}
	f, err := builtinFS.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return ReadWords(f)
}
