package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/typeline/internal/config"
	"github.com/verte-zerg/typeline/internal/model"
	"github.com/verte-zerg/typeline/internal/store"
	"github.com/verte-zerg/typeline/internal/wordlist"
)

func validConfig() model.Config {
	return model.Config{
		Timeframe:     time.Minute,
		MinWordLength: 0,
		MaxWordLength: 1000,
		WordsList:     wordlist.DefaultList,
		Margin:        4,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Config)
		ok     bool
	}{
		{"defaults", func(*model.Config) {}, true},
		{"zero timeframe", func(c *model.Config) { c.Timeframe = 0 }, false},
		{"negative min", func(c *model.Config) { c.MinWordLength = -1 }, false},
		{"max equals min", func(c *model.Config) { c.MinWordLength, c.MaxWordLength = 5, 5 }, false},
		{"negative margin", func(c *model.Config) { c.Margin = -1 }, false},
		{"zero margin", func(c *model.Config) { c.Margin = 0 }, true},
		{"empty list", func(c *model.Config) { c.WordsList = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := validateConfig(cfg)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestDefaultConfigTemplateParses(t *testing.T) {
	tmpl := defaultConfigTemplate()
	uncommented := strings.NewReplacer("# timeframe", "timeframe",
		"# max-word-length", "max-word-length",
		"# min-word-length", "min-word-length",
		"# words-list", "words-list",
		"# margin", "margin").Replace(tmpl)
	var cfg config.FileConfig
	if _, err := toml.Decode(uncommented, &cfg); err != nil {
		t.Fatalf("decode template: %v", err)
	}
	if cfg.Practice.Timeframe == nil || *cfg.Practice.Timeframe != defaultTimeframe {
		t.Fatalf("unexpected timeframe: %v", cfg.Practice.Timeframe)
	}
	if cfg.Practice.WordsList == nil || *cfg.Practice.WordsList != wordlist.DefaultList {
		t.Fatalf("unexpected words list: %v", cfg.Practice.WordsList)
	}
	if cfg.Practice.Margin == nil || *cfg.Practice.Margin != defaultMargin {
		t.Fatalf("unexpected margin: %v", cfg.Practice.Margin)
	}
}

func TestApplyConfigRespectsExplicitFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("margin", "2"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	fileMargin := 7
	fileTimeframe := 30
	applyIntConfig(cmd, "margin", &practiceMargin, &fileMargin)
	applyIntConfig(cmd, "timeframe", &practiceTimeframe, &fileTimeframe)
	applyIntConfig(cmd, "min-word-length", &practiceMinWordLength, nil)
	if practiceMargin != 2 {
		t.Fatalf("flag must win over config, got margin %d", practiceMargin)
	}
	if practiceTimeframe != 30 {
		t.Fatalf("config must fill unset flags, got timeframe %d", practiceTimeframe)
	}
	if practiceMinWordLength != defaultMinWordLength {
		t.Fatalf("nil config value must keep default, got %d", practiceMinWordLength)
	}
}

func TestValidateListName(t *testing.T) {
	if err := validateListName("english1k"); err == nil {
		t.Fatalf("expected built-in name to be rejected")
	}
	if err := validateListName("my list"); err == nil {
		t.Fatalf("expected name with spaces to be rejected")
	}
	if err := validateListName("german"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestImportAndListCommands(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	src := filepath.Join(t.TempDir(), "German.txt")
	if err := os.WriteFile(src, []byte("haus\nbaum\n# comment\n\nstraße\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"wordlist", "import", src})
	if err := root.Execute(); err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out.String(), `Imported 3 words as "german"`) {
		t.Fatalf("unexpected import output: %q", out.String())
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	got, err := wordlist.Resolve(context.Background(), "german", 0, 5, st)
	if cerr := st.Close(); cerr != nil {
		t.Fatalf("close store: %v", cerr)
	}
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if strings.Join(got, ",") != "haus,baum" {
		t.Fatalf("unexpected words: %v", got)
	}

	vocab, err := loadVocabulary(context.Background(), model.Config{
		WordsList:     normalizeListName(" German "),
		MinWordLength: 0,
		MaxWordLength: 1000,
	})
	if err != nil {
		t.Fatalf("load mixed-case list name: %v", err)
	}
	if len(vocab) != 3 {
		t.Fatalf("expected 3 words, got %v", vocab)
	}

	out.Reset()
	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"lists"})
	if err := root.Execute(); err != nil {
		t.Fatalf("lists: %v", err)
	}
	for _, want := range []string{"english1k", "english200", "german", "built-in"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in lists output: %q", want, out.String())
		}
	}
}

func TestImportRejectsDuplicateWithoutForce(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	src := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(src, []byte("alpha\nbeta\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	run := func(args ...string) error {
		importName, importForce = "", false
		root := newRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(args)
		return root.Execute()
	}
	if err := run("wordlist", "import", "--name", "mine", src); err != nil {
		t.Fatalf("first import: %v", err)
	}
	if err := run("wordlist", "import", "--name", "mine", src); err == nil {
		t.Fatalf("expected duplicate import to fail")
	}
	if err := run("wordlist", "import", "--name", "mine", "--force", src); err != nil {
		t.Fatalf("forced import: %v", err)
	}
}

func TestNormalizeListName(t *testing.T) {
	tests := map[string]string{
		"Rust":       "rust",
		"  german\t": "german",
		"english1k":  "english1k",
		"":           "",
	}
	for in, want := range tests {
		if got := normalizeListName(in); got != want {
			t.Fatalf("normalizeListName(%q) = %q, want %q", in, got, want)
		}
	}
}
