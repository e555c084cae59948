// babynames ranks the most popular baby names across one or more years of
// Social Security name data and writes them to a one-column CSV file.
//
// Usage:
//
//	babynames -g F                      # top 1000 girl names for 2024
//	babynames -g M -y 2022 2023 -n 100  # top 100 boy names over two years
//	babynames browse -g F -y 2024       # scroll the ranking in the terminal
//
// Year files are read from ~/Downloads/names/yob<year>.txt unless --data-dir,
// BABYNAMES_DATA_DIR or data_dir in .babynames.yaml says otherwise. Missing
// years are skipped with a warning; a malformed line aborts the run and no
// output file is written.
//
// Exit codes: 0 success, 1 run failure, 2 usage or configuration error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/dkoosis/babynames/internal/config"
	"github.com/dkoosis/babynames/internal/version"
	"github.com/dkoosis/babynames/pkg/browse"
	"github.com/dkoosis/babynames/pkg/mapper"
	"github.com/dkoosis/babynames/pkg/names"
	"github.com/dkoosis/babynames/pkg/output"
	"github.com/dkoosis/babynames/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// invocation is everything a command needs after flag parsing.
type invocation struct {
	category names.Category
	resolved *config.ResolvedConfig
	logger   *slog.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Check for subcommands before flag parsing
	if len(args) > 0 && args[0] == "browse" {
		return runBrowse(args[1:], stdin, stdout, stderr)
	}

	inv, code := setup("babynames", args, stdout, stderr)
	if code >= 0 {
		return code
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, code := aggregate(ctx, inv, stderr)
	if code >= 0 {
		return code
	}

	outPath := inv.resolved.OutputPath
	if outPath == "" {
		outPath = filepath.Join(inv.resolved.OutputDir, output.FileName(inv.resolved.TopN, inv.category))
	}
	if err := output.WriteFile(outPath, res.Names()); err != nil {
		fmt.Fprintf(stderr, "babynames: %v\n", err)
		return 1
	}
	inv.logger.Info("wrote output", "file", outPath, "names", len(res.Ranked), "label", inv.category.Label())

	mode := resolveFormat(inv.resolved.Format, stdout)
	r := render.New(mode, render.ThemeByName(inv.resolved.Theme), termWidth(stdout))
	fmt.Fprint(stdout, r.Render(mapper.FromResult(res, outPath, inv.resolved.Preview)))
	return 0
}

// --- babynames browse subcommand ---

func runBrowse(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	inv, code := setup("babynames browse", args, stdout, stderr)
	if code >= 0 {
		return code
	}
	if !isTTYWriter(stdout) {
		fmt.Fprintf(stderr, "babynames browse: stdout is not a terminal\n")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, code := aggregate(ctx, inv, stderr)
	if code >= 0 {
		return code
	}
	if err := browse.Run(ctx, res, render.ThemeByName(inv.resolved.Theme), stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "babynames browse: %v\n", err)
		return 1
	}
	return 0
}

// setup parses flags, resolves configuration and builds the logger.
// Returns (invocation, -1) on success; (nil, exitCode) otherwise.
func setup(name string, args []string, stdout, stderr io.Writer) (*invocation, int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		gender      string
		years       yearList
		topN        int
		showVersion bool
		flags       config.CliFlags
	)
	fs.StringVar(&gender, "g", "", "Gender: F for female, M for male (required)")
	fs.StringVar(&gender, "gender", "", "Alias for -g")
	fs.Var(&years, "y", "Target year; repeat, comma-separate or list after the flag (default 2024)")
	fs.Var(&years, "years", "Alias for -y")
	fs.IntVar(&topN, "n", config.DefaultTopN, "Number of top names to generate")
	fs.IntVar(&topN, "num-names", config.DefaultTopN, "Alias for -n")
	fs.StringVar(&flags.DataDir, "data-dir", "", "Directory containing yob<year>.txt files")
	fs.StringVar(&flags.OutputPath, "out", "", "Output CSV path (default top_<N>_<label>_names.csv)")
	fs.StringVar(&flags.Format, "format", "", "Report format: auto, terminal, plain, json")
	fs.StringVar(&flags.Theme, "theme", "", "Theme: default, orca, mono")
	fs.IntVar(&flags.Preview, "preview", config.DefaultPreview, "Names shown in the report (0 hides the list)")
	fs.BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")

	if err := parseArgs(fs, args, &years); err != nil {
		return nil, 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version.String())
		return nil, 0
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n", "num-names":
			flags.TopNSet = true
		case "preview":
			flags.PreviewSet = true
		case "debug":
			flags.DebugSet = true
		}
	})
	flags.TopN = topN
	flags.Years = years

	if gender == "" {
		fmt.Fprintf(stderr, "%s: -g is required (F or M)\n", name)
		fs.Usage()
		return nil, 2
	}
	category, err := names.ParseCategory(gender)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return nil, 2
	}

	level := new(slog.LevelVar)
	logger := newLogger(stderr, level)

	resolved, err := config.ResolveConfig(flags, logger)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return nil, 2
	}
	if resolved.Debug {
		level.Set(slog.LevelDebug)
	}

	return &invocation{category: category, resolved: resolved, logger: logger}, -1
}

// aggregate runs the core and maps its failures to exit codes.
// Returns (result, -1) on success; (nil, exitCode) on error.
func aggregate(ctx context.Context, inv *invocation, stderr io.Writer) (*names.Result, int) {
	res, err := names.Aggregate(ctx, names.Config{
		Category: inv.category,
		Years:    inv.resolved.Years,
		TopN:     inv.resolved.TopN,
		Resolver: names.DirResolver{Dir: inv.resolved.DataDir},
		Logger:   inv.logger,
	})
	switch {
	case err == nil:
		return res, -1
	case errors.Is(err, names.ErrNoData):
		fmt.Fprintf(stderr, "babynames: %v in %s\n", err, inv.resolved.DataDir)
	case errors.Is(err, names.ErrParse):
		fmt.Fprintf(stderr, "babynames: malformed input: %v\n", err)
	default:
		fmt.Fprintf(stderr, "babynames: %v\n", err)
	}
	return nil, 1
}

// parseArgs parses flags, treating bare integers that follow -y as more
// years so that "-y 2022 2023 -n 10" works. Any other positional argument
// is a usage error.
func parseArgs(fs *flag.FlagSet, args []string, years *yearList) error {
	for {
		if err := fs.Parse(args); err != nil {
			return err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return nil
		}
		consumed := 0
		for consumed < len(rest) && !strings.HasPrefix(rest[consumed], "-") {
			if err := years.Set(rest[consumed]); err != nil {
				fmt.Fprintf(fs.Output(), "%s: unexpected argument %q\n", fs.Name(), rest[consumed])
				fs.Usage()
				return err
			}
			consumed++
		}
		if consumed == 0 {
			fmt.Fprintf(fs.Output(), "%s: unexpected argument %q\n", fs.Name(), rest[0])
			return errUnexpectedArg
		}
		args = rest[consumed:]
	}
}

var errUnexpectedArg = errors.New("unexpected argument")

// yearList collects years from repeated or comma-separated -y values.
type yearList []int

func (y *yearList) String() string {
	if y == nil {
		return ""
	}
	parts := make([]string, len(*y))
	for i, v := range *y {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (y *yearList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid year %q", part)
		}
		*y = append(*y, v)
	}
	return nil
}

func newLogger(w io.Writer, level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = plain
	if isTTYWriter(w) {
		return "terminal"
	}
	return "plain"
}
