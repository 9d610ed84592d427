package pflagx

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
)

const (
	rootIndent      = 2  // root option lines
	groupIndent     = 2  // group headings; group options sit two deeper
	maxHelpPosition = 24 // help text column cap
	minHelpWidth    = 11
	noDefaultValue  = "None"
)

// formatter renders one help page at a fixed geometry. The usable width and
// the help column are computed per render, so re-rendering after a resize or
// after more registrations just works.
type formatter struct {
	width        int // usable text width
	helpPosition int // column where help text starts
}

func (f *formatter) helpWidth() int {
	return max(f.width-f.helpPosition, minHelpWidth)
}

// sortForHelp orders everything alphabetically: root options and each
// group's options by sort key, groups by title. The comparators are pure,
// so sorting on every render leaves an already-sorted parser untouched.
func (p *Parser) sortForHelp() {
	sortOptions(p.opts)
	slices.SortStableFunc(p.groups, func(a, b *Group) int {
		return strings.Compare(a.Title, b.Title)
	})
	for _, g := range p.groups {
		sortOptions(g.opts)
	}
}

func sortOptions(opts []*Option) {
	slices.SortStableFunc(opts, func(a, b *Option) int {
		return strings.Compare(a.sortKey(), b.sortKey())
	})
}

// FormatHelp renders the full help page: usage line, description, the
// sorted option listing, and the epilog.
func (p *Parser) FormatHelp() string {
	p.sortForHelp()
	f := p.newFormatter()

	var b strings.Builder
	b.WriteString(p.formatUsage() + "\n")
	if p.description != "" {
		b.WriteString(wrapPreserving(p.description, f.width, 0))
		b.WriteString("\n")
	}
	b.WriteString("Options:\n")
	for _, o := range p.opts {
		b.WriteString(f.formatOption(o, rootIndent))
	}
	for _, g := range p.groups {
		b.WriteString(fmt.Sprintf("\n%*s%s:\n", groupIndent, "", g.Title))
		for _, o := range g.opts {
			b.WriteString(f.formatOption(o, groupIndent+2))
		}
	}
	if p.epilog != "" {
		b.WriteString("\n" + wrapPreserving(p.epilog, f.width, 0))
	}
	return b.String()
}

func (p *Parser) formatUsage() string {
	if p.usage != "" {
		return "Usage: " + strings.ReplaceAll(p.usage, "%prog", p.prog) + "\n"
	}
	return "Usage: " + p.prog + " [options]\n"
}

func (p *Parser) newFormatter() *formatter {
	width := p.width
	if width <= 0 {
		width = termWidth()
	}
	f := &formatter{width: width - 2}

	// Help column: two past the widest flags string, capped.
	maxLen := 0
	for _, o := range p.opts {
		maxLen = max(maxLen, rootIndent+runewidth.StringWidth(formatFlags(o)))
	}
	for _, g := range p.groups {
		for _, o := range g.opts {
			maxLen = max(maxLen, groupIndent+2+runewidth.StringWidth(formatFlags(o)))
		}
	}
	f.helpPosition = min(maxLen+2, maxHelpPosition)
	return f
}

// formatFlags renders all spellings of an option with metavars, shorts
// first: "-f FILE, --file=FILE".
func formatFlags(o *Option) string {
	metavar := o.Metavar
	if metavar == "" {
		metavar = strings.ToUpper(o.Dest)
	}
	parts := make([]string, 0, o.spellingCount())
	for _, s := range o.short {
		if o.Action.takesValue() {
			s += " " + metavar
		}
		parts = append(parts, s)
	}
	for _, l := range o.long {
		if o.Action.takesValue() {
			l += "=" + metavar
		}
		parts = append(parts, l)
	}
	return strings.Join(parts, ", ")
}

// formatOption emits one option entry. Flags and help share a line when the
// flags fit before the help column; otherwise the flags get their own line
// and the help starts on the next one, indented to the help column.
func (f *formatter) formatOption(o *Option, indent int) string {
	var b strings.Builder
	flags := formatFlags(o)
	optWidth := f.helpPosition - indent - 2
	indentFirst := 0
	if runewidth.StringWidth(flags) > optWidth {
		b.WriteString(strings.Repeat(" ", indent) + flags + "\n")
		indentFirst = f.helpPosition
	} else {
		b.WriteString(strings.Repeat(" ", indent) + runewidth.FillRight(flags, optWidth) + "  ")
	}
	if o.Help == "" {
		if !strings.HasSuffix(b.String(), "\n") {
			b.WriteString("\n")
		}
		return b.String()
	}

	// Explicit newlines in the help string start fresh paragraphs; each is
	// wrapped on its own so the breaks survive.
	var lines []string
	for _, para := range strings.Split(f.expandDefault(o), "\n") {
		lines = append(lines, strings.Split(wordwrap.WrapString(para, uint(f.helpWidth())), "\n")...)
	}
	b.WriteString(strings.Repeat(" ", indentFirst) + lines[0] + "\n")
	for _, ln := range lines[1:] {
		b.WriteString(strings.Repeat(" ", f.helpPosition) + ln + "\n")
	}
	return b.String()
}

// expandDefault substitutes the %default placeholder with the option's
// rendered default value ("None" for an absent one).
func (f *formatter) expandDefault(o *Option) string {
	return strings.ReplaceAll(o.Help, "%default", o.defaultString())
}

// wrapPreserving word-wraps text paragraph by paragraph, keeping the
// author's line breaks, with every line left-padded by indent.
func wrapPreserving(text string, width, indent int) string {
	pad := strings.Repeat(" ", indent)
	var out []string
	for _, para := range strings.Split(text, "\n") {
		wrapped := wordwrap.WrapString(para, uint(width-indent))
		for _, ln := range strings.Split(wrapped, "\n") {
			if ln == "" {
				out = append(out, "")
				continue
			}
			out = append(out, pad+ln)
		}
	}
	return strings.Join(out, "\n") + "\n"
}
