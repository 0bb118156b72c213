// Package main provides the CLI entrypoint for typeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typeline/internal/config"
	"github.com/verte-zerg/typeline/internal/generator"
	"github.com/verte-zerg/typeline/internal/logger"
	"github.com/verte-zerg/typeline/internal/model"
	"github.com/verte-zerg/typeline/internal/session"
	"github.com/verte-zerg/typeline/internal/stats"
	"github.com/verte-zerg/typeline/internal/store"
	"github.com/verte-zerg/typeline/internal/tui"
	"github.com/verte-zerg/typeline/internal/window"
	"github.com/verte-zerg/typeline/internal/wordlist"
)

const (
	defaultTimeframe     = 60
	defaultMaxWordLength = 1000
	defaultMinWordLength = 0
	defaultMargin        = 4
)

var (
	practiceTimeframe     int
	practiceMaxWordLength int
	practiceMinWordLength int
	practiceWordsList     string
	practiceMargin        int
	practiceDebug         bool

	importName  string
	importForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typeline",
		Short:         "Timed typing exercise in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practiceTimeframe, "timeframe", defaultTimeframe, "session length in seconds")
	rootCmd.Flags().IntVar(&practiceMaxWordLength, "max-word-length", defaultMaxWordLength, "skip words with this many letters or more")
	rootCmd.Flags().IntVar(&practiceMinWordLength, "min-word-length", defaultMinWordLength, "skip words shorter than this")
	rootCmd.Flags().StringVar(&practiceWordsList, "words-list", wordlist.DefaultList, "word list name (see: typeline lists)")
	rootCmd.Flags().IntVar(&practiceMargin, "margin", defaultMargin, "blank columns on each side of the line")
	rootCmd.Flags().BoolVar(&practiceDebug, "debug", false, "write debug logs")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newListsCmd())
	rootCmd.AddCommand(newWordlistCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "timeframe", &practiceTimeframe, fileCfg.Practice.Timeframe)
	applyIntConfig(cmd, "max-word-length", &practiceMaxWordLength, fileCfg.Practice.MaxWordLength)
	applyIntConfig(cmd, "min-word-length", &practiceMinWordLength, fileCfg.Practice.MinWordLength)
	applyStringConfig(cmd, "words-list", &practiceWordsList, fileCfg.Practice.WordsList)
	applyIntConfig(cmd, "margin", &practiceMargin, fileCfg.Practice.Margin)

	cfg := model.Config{
		Timeframe:     time.Duration(practiceTimeframe) * time.Second,
		MinWordLength: practiceMinWordLength,
		MaxWordLength: practiceMaxWordLength,
		WordsList:     normalizeListName(practiceWordsList),
		Margin:        practiceMargin,
		Debug:         practiceDebug,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	if err := logger.Init(config.DefaultLogPath(), cfg.Debug); err != nil {
		logErrf("failed to open log file: %v\n", err)
	}
	defer logger.Close()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("typeline needs an interactive terminal")
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read terminal size: %w", err)
	}

	vocab, err := loadVocabulary(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	sess, err := session.New(session.Options{
		Vocabulary:    vocab,
		MinWordLength: cfg.MinWordLength,
		MaxWordLength: cfg.MaxWordLength,
		Width:         width,
		Margin:        cfg.Margin,
		Timeframe:     cfg.Timeframe,
	}, generator.New())
	if err != nil {
		if errors.Is(err, window.ErrTooNarrow) {
			return fmt.Errorf("terminal width %d is too small for margin %d and the longest word: %w", width, cfg.Margin, err)
		}
		return err
	}
	logger.Info("session prepared", "list", cfg.WordsList, "words", len(vocab), "width", width, "timeframe", cfg.Timeframe)

	program := tea.NewProgram(tui.NewModel(sess, cfg.Timeframe), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	m, ok := final.(*tui.Model)
	if !ok {
		return nil
	}
	if err := m.Err(); err != nil {
		return fmt.Errorf("session aborted: %w", err)
	}
	if !m.Finished() {
		return nil
	}
	return stats.WriteReport(cmd.OutOrStdout(), m.Summary())
}

// loadVocabulary resolves the configured list, opening the word list store
// only for names that are not built in.
func loadVocabulary(ctx context.Context, cfg model.Config) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if wordlist.IsBuiltin(cfg.WordsList) {
		return wordlist.Resolve(ctx, cfg.WordsList, cfg.MinWordLength, cfg.MaxWordLength, nil)
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return wordlist.Resolve(ctx, cfg.WordsList, cfg.MinWordLength, cfg.MaxWordLength, st)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "List available word lists",
		Args:  cobra.NoArgs,
		RunE:  runListsCmd,
	}
}

func runListsCmd(cmd *cobra.Command, _ []string) error {
	rows := [][]string{}
	for _, name := range wordlist.BuiltinNames() {
		words, err := wordlist.Builtin(name)
		if err != nil {
			return fmt.Errorf("failed to read built-in list %s: %w", name, err)
		}
		rows = append(rows, []string{name, strconv.Itoa(len(words)), "built-in"})
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	imported, err := st.ListLists(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list imported word lists: %w", err)
	}
	for _, info := range imported {
		rows = append(rows, []string{info.Name, strconv.Itoa(info.Words), info.Source})
	}
	return stats.WriteTable(cmd.OutOrStdout(), []string{"NAME", "WORDS", "SOURCE"}, rows, map[int]bool{1: true})
}

func newWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Manage imported word lists",
	}
	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a one-word-per-line file as a word list",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordlistImportCmd,
	}
	importCmd.Flags().StringVar(&importName, "name", "", "list name (default: file name without extension)")
	importCmd.Flags().BoolVar(&importForce, "force", false, "replace an existing list with the same name")
	cmd.AddCommand(importCmd)
	return cmd
}

func runWordlistImportCmd(cmd *cobra.Command, args []string) error {
	path := args[0]
	name := normalizeListName(importName)
	if name == "" {
		name = normalizeListName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	if err := validateListName(name); err != nil {
		return err
	}

	words, err := wordlist.LoadWords(path)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := cmd.Context()
	if !importForce {
		existing, err := st.ListLists(ctx)
		if err != nil {
			return fmt.Errorf("failed to list imported word lists: %w", err)
		}
		for _, info := range existing {
			if info.Name == name {
				return fmt.Errorf("word list already exists: %s (use --force to overwrite)", name)
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if err := st.ImportList(ctx, name, abs, words); err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words as %q\n", len(words), name)
	return err
}

// normalizeListName folds list names so imported lists match regardless of
// how they were typed.
func normalizeListName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func validateListName(name string) error {
	if name == "" {
		return fmt.Errorf("--name must not be empty")
	}
	if wordlist.IsBuiltin(name) {
		return fmt.Errorf("%q is a built-in word list; choose another --name", name)
	}
	if strings.ContainsAny(name, " \t/\\") {
		return fmt.Errorf("word list name %q must not contain spaces or slashes", name)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typeline configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# timeframe = %d           # Session length in seconds
# max-word-length = %d   # Skip words with this many letters or more
# min-word-length = %d      # Skip words shorter than this
# words-list = %q  # Word list name (see: typeline lists)
# margin = %d               # Blank columns on each side of the line
`,
		defaultTimeframe,
		defaultMaxWordLength,
		defaultMinWordLength,
		wordlist.DefaultList,
		defaultMargin,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Timeframe <= 0 {
		return fmt.Errorf("--timeframe must be > 0")
	}
	if cfg.MinWordLength < 0 {
		return fmt.Errorf("--min-word-length must be >= 0")
	}
	if cfg.MaxWordLength <= cfg.MinWordLength {
		return fmt.Errorf("--max-word-length must be greater than --min-word-length")
	}
	if cfg.Margin < 0 {
		return fmt.Errorf("--margin must be >= 0")
	}
	if cfg.WordsList == "" {
		return fmt.Errorf("--words-list must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
