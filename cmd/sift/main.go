package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pflagx/pflagx"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func fail(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+msg))
}

func main() {
	p := pflagx.New("sift",
		pflagx.WithVersion("%prog 0.3.1"),
		pflagx.WithDescription("Filter stdin line by line against a pattern.\n"+
			"Matching lines are kept and highlighted; everything else is dropped."),
		pflagx.WithEpilog("Examples:\n"+
			"  journalctl | sift -p error\n"+
			"  sift -p TODO -m prefix -n 20 < notes.txt"),
	)

	p.Add(pflagx.Option{Help: "pattern to look for"}, "-p", "--pattern")

	matching := p.AddGroup("Matching")
	matching.Add(pflagx.Option{
		Action:  pflagx.StoreTrue,
		Default: false,
		Help:    "ignore case when comparing",
	}, "-i", "--ignore-case")
	matching.Add(pflagx.Option{
		Default: "substring",
		Choices: []string{"substring", "prefix", "exact"},
		Help:    "how lines are compared against the pattern",
	}, "-m", "--mode")

	output := p.AddGroup("Output")
	output.Add(pflagx.Option{
		Dest:    "limit",
		Default: 0,
		Help:    "stop after this many matching lines (0 means no limit)",
	}, "-n", "--limit")
	output.Add(pflagx.Option{
		Action: pflagx.Count,
		Help:   "report counters on stderr when done (repeatable)",
	}, "-v", "--verbose")

	vals, args, err := p.Parse(os.Args[1:])
	switch {
	case errors.Is(err, pflagx.ErrHelp), errors.Is(err, pflagx.ErrVersion):
		return
	case err != nil:
		fail(err.Error())
		os.Exit(2)
	}
	if len(args) > 0 {
		fail("unexpected arguments: " + strings.Join(args, " "))
		os.Exit(2)
	}

	os.Exit(run(vals))
}

func run(vals pflagx.Values) int {
	pattern := vals.String("pattern")
	if pattern == "" {
		fail("a pattern is required (try -p)")
		return 2
	}
	ignoreCase := vals.Bool("ignore_case")
	mode := vals.String("mode")
	limit := vals.Int("limit")
	verbose := vals.Int("verbose")

	want := pattern
	if ignoreCase {
		want = strings.ToLower(want)
	}

	matched, seen := 0, 0
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		seen++
		line := sc.Text()
		have := line
		if ignoreCase {
			have = strings.ToLower(have)
		}
		if !matches(have, want, mode) {
			continue
		}
		matched++
		fmt.Println(highlight(line, pattern, ignoreCase))
		if limit > 0 && matched >= limit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		fail("read stdin: " + err.Error())
		return 1
	}

	if verbose > 0 {
		fmt.Fprintln(os.Stderr, mutedStyle.Render(
			fmt.Sprintf("%d of %d lines matched", matched, seen)))
	}
	if matched == 0 {
		return 1
	}
	return 0
}

func matches(line, pattern, mode string) bool {
	switch mode {
	case "prefix":
		return strings.HasPrefix(line, pattern)
	case "exact":
		return line == pattern
	}
	return strings.Contains(line, pattern)
}

// highlight wraps the first occurrence of pattern in the match style.
func highlight(line, pattern string, ignoreCase bool) string {
	idx := strings.Index(line, pattern)
	if ignoreCase {
		idx = strings.Index(strings.ToLower(line), strings.ToLower(pattern))
	}
	if idx < 0 {
		return line
	}
	end := idx + len(pattern)
	return line[:idx] + matchStyle.Render(line[idx:end]) + line[end:]
}
