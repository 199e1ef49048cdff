// Command expandable is a small file reader demonstrating the truncating
// "show more" text view: each matched file is shown collapsed to a few lines
// and expands in place when activated.
//
// Usage:
//
//	expandable [flags] [glob]
//
// The glob (default "*.md") is resolved against -dir and supports ** for
// recursive matching. Markdown files render styled; everything else is shown
// as plain text.
//
// Flags:
//
//	-dir string        Directory the glob is resolved against (default ".")
//	-line-limit int    Visible lines per file while collapsed (default 3)
//	-label string      Expand-control label (default "more")
//	-collapse          Allow collapsing an expanded file again
//	-keep-blanks       Keep repeated blank lines in the truncated presentation
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mstarzyk/expandable"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "expandable: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		dir        = flag.String("dir", ".", "Directory the glob is resolved against")
		lineLimit  = flag.Int("line-limit", expandable.DefaultLineLimit, "Visible lines per file while collapsed")
		label      = flag.String("label", expandable.DefaultMoreLabel, "Expand-control label")
		collapse   = flag.Bool("collapse", false, "Allow collapsing an expanded file again")
		keepBlanks = flag.Bool("keep-blanks", false, "Keep repeated blank lines in the truncated presentation")
	)
	flag.Parse()

	pattern := "*.md"
	if flag.NArg() > 0 {
		pattern = flag.Arg(0)
	}

	entries, err := loadEntries(*dir, pattern)
	if err != nil {
		return err
	}

	opts := expandable.DefaultOptions().
		WithLineLimit(*lineLimit).
		WithMoreLabel(*label).
		WithCollapseEnabled(*collapse).
		WithCollapseBlankLines(!*keepBlanks)

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := tea.NewProgram(newModel(entries, opts, expandable.DefaultTheme()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err = p.Run()
	return err
}
