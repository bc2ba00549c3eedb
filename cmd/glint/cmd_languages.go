package main

import (
	"flag"
	"fmt"
	"os"

	"glint/internal/highlight"
)

func languagesCmd() {
	fs := flag.NewFlagSet("languages", flag.ExitOnError)
	filterFlag := fs.String("filter", "", "Fuzzy-filter the list")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: glint languages [--filter <query>]\n\n")
		fmt.Fprintf(os.Stderr, "List the syntax languages glint can highlight.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  glint languages\n")
		fmt.Fprintf(os.Stderr, "  glint languages --filter script\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	names := highlight.Languages()
	if *filterFlag != "" {
		names = highlight.Suggest(*filterFlag, len(names))
	}
	for _, name := range names {
		fmt.Println(name)
	}
}
