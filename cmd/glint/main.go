package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"glint/internal/config"
	"glint/internal/filediff"
	"glint/internal/highlight"
	"glint/internal/pager"
	"glint/internal/pipeline"
	"glint/internal/render"
)

const version = "0.3.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "languages":
			languagesCmd()
			return
		case "themes":
			themesCmd()
			return
		case "colors":
			colorsCmd()
			return
		case "version":
			fmt.Printf("glint %s\n", version)
			return
		case "help":
			printHelp()
			return
		}
	}
	os.Exit(run())
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `glint - a syntax-highlighting pager for diff output

Usage:
  git diff | glint [flags]         Annotate a unified diff from stdin
  glint [flags] <fileA> <fileB>    Diff two files
  glint <command>                  Run a subcommand

Commands:
  languages  List known syntax languages
  themes     List known syntax themes
  colors     Show the resolved diff palette
  version    Print version information
  help       Show this help message

Flags:
  --lang <name>            Force a syntax language instead of detecting it
  --theme <name>           Syntax theme (see 'glint themes')
  --pager <cmd>            Pager command (overrides GLINT_PAGER and PAGER)
  --no-pager               Write directly to stdout
  --tabs <n>               Spaces a tab expands to
  --min-similarity <f>     Pairing threshold for removed/added lines
  --max-line-length <n>    Longest line eligible for intra-line diffing
  --width <n>              Pad changed-line backgrounds to this width
  --true-color             Emit 24-bit color (ANSI-256 otherwise)

Exit codes: 0 success (including a pager quit early), 1 files differ in
two-file mode, 2 real error.
`)
}

// run executes the filter and returns the process exit code.
func run() int {
	cfg := config.Load()

	fs := flag.NewFlagSet("glint", flag.ExitOnError)
	langFlag := fs.String("lang", "", "Force a syntax language instead of detecting from file headers")
	themeFlag := fs.String("theme", cfg.Theme, "Syntax theme name")
	pagerFlag := fs.String("pager", cfg.Pager, "Pager command (overrides GLINT_PAGER and PAGER)")
	noPagerFlag := fs.Bool("no-pager", false, "Write directly to stdout without a pager")
	tabsFlag := fs.Int("tabs", cfg.TabWidth, "Number of spaces a tab expands to")
	simFlag := fs.Float64("min-similarity", cfg.MinSimilarity, "Minimum similarity for pairing removed and added lines")
	maxLenFlag := fs.Int("max-line-length", cfg.MaxLineLength, "Longest line eligible for intra-line diffing (0 = no limit)")
	widthFlag := fs.Int("width", cfg.Width, "Pad changed-line backgrounds to this display width (0 disables)")
	trueColorFlag := fs.Bool("true-color", cfg.TrueColor, "Emit 24-bit color sequences")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	fs.Usage = printHelp

	if err := fs.Parse(os.Args[1:]); err != nil {
		return 2
	}
	if *versionFlag {
		fmt.Printf("glint %s\n", version)
		return 0
	}

	if *langFlag != "" && !highlight.Known(*langFlag) {
		fmt.Fprintf(os.Stderr, "glint: unknown language %q, using plain text\n", *langFlag)
		if names := highlight.Suggest(*langFlag, 5); len(names) > 0 {
			fmt.Fprintf(os.Stderr, "glint: did you mean: %s\n", strings.Join(names, ", "))
		}
	}

	var (
		input     io.Reader = os.Stdin
		filesDiff bool
	)
	switch fs.NArg() {
	case 0:
	case 2:
		text, differ, err := filediff.Unified(fs.Arg(0), fs.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "glint: %v\n", err)
			return 2
		}
		input = strings.NewReader(text)
		filesDiff = differ
	default:
		fmt.Fprintln(os.Stderr, "glint: expected a diff on stdin, or exactly two files to compare")
		return 2
	}

	// Output always carries color: the point of the program is decoration,
	// and the pager downstream understands the sequences.
	if *trueColorFlag {
		lipgloss.SetColorProfile(termenv.TrueColor)
	} else {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}

	// Leave ctrl-c to the pager; exiting first would orphan it.
	signal.Ignore(os.Interrupt)

	out, err := pager.New(*pagerFlag, *noPagerFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "glint: %v\n", err)
		return 2
	}

	p := pipeline.New(
		highlight.NewChroma(*themeFlag),
		render.NewEmitter(out, render.DefaultPalette(), *widthFlag),
		pipeline.Options{
			Lang:          *langFlag,
			MinSimilarity: *simFlag,
			TabWidth:      *tabsFlag,
			MaxLineLength: *maxLenFlag,
		},
	)

	runErr := p.Run(input)
	out.Close()

	if runErr != nil && !pager.IsClosed(runErr) {
		fmt.Fprintf(os.Stderr, "glint: %v\n", runErr)
		return 2
	}
	if filesDiff {
		return 1
	}
	return 0
}
