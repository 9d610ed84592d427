package pflagx

import (
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"
)

// Parser is the root container. It owns the ungrouped option list, the
// ordered group list, and the spelling registry shared by all of them.
type Parser struct {
	container

	prog        string
	version     string
	description string
	epilog      string
	usage       string
	width       int // 0 = detect from the terminal
	out         io.Writer
	general     bool
	groups      []*Group
}

// ParserOption configures a Parser at construction time.
type ParserOption func(*Parser)

// WithVersion sets the version string; %prog expands to the program name.
func WithVersion(v string) ParserOption { return func(p *Parser) { p.version = v } }

// WithDescription sets the description shown above the option listing.
// Explicit line breaks are preserved.
func WithDescription(d string) ParserOption { return func(p *Parser) { p.description = d } }

// WithEpilog sets the text shown below the option listing.
func WithEpilog(e string) ParserOption { return func(p *Parser) { p.epilog = e } }

// WithUsage overrides the generated usage line; %prog expands to the
// program name.
func WithUsage(u string) ParserOption { return func(p *Parser) { p.usage = u } }

// WithWidth fixes the render width instead of detecting the terminal's.
func WithWidth(w int) ParserOption { return func(p *Parser) { p.width = w } }

// WithOutput redirects help and version output. Paging only happens when
// the output is a terminal.
func WithOutput(w io.Writer) ParserOption { return func(p *Parser) { p.out = w } }

// WithoutGeneralGroup keeps the built-in help and version options in the
// root list instead of moving them into a "General options" group.
func WithoutGeneralGroup() ParserOption { return func(p *Parser) { p.general = false } }

// New builds a parser with the built-in help and version options already
// registered. Help answers to -? rather than -h, leaving -h free. Unless
// disabled, both built-ins are moved into a "General options" group. The
// version string is forced non-empty so the version line always renders.
func New(prog string, opts ...ParserOption) *Parser {
	p := &Parser{
		container: container{reg: newRegistry()},
		prog:      prog,
		out:       os.Stdout,
		general:   true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.version == "" {
		p.version = " "
	}

	// Fresh registry, nothing to conflict with.
	p.mustAdd(Option{Action: Help, Help: "show this help message and exit"}, "-?", "--help")
	p.mustAdd(Option{Action: Version, Help: "show program's version number and exit"}, "--version")

	if p.general {
		g := p.AddGroup("General options")
		p.MoveOption("help", g)
		p.MoveOption("version", g)
	}
	return p
}

func (p *Parser) mustAdd(spec Option, spellings ...string) *Option {
	o, err := p.Add(spec, spellings...)
	if err != nil {
		panic(err)
	}
	return o
}

// MoveOption relocates the named option from the root list to dst. The name
// resolves like OptionByName: destination first, then long, then short
// spelling.
func (p *Parser) MoveOption(name string, dst Container) error {
	return p.MoveOptionFrom(name, p, dst)
}

// MoveOptionFrom relocates the named option between two containers. The
// option is appended to the destination's list; there is no positional
// control.
func (p *Parser) MoveOptionFrom(name string, src, dst Container) error {
	o := src.OptionByName(name)
	if o == nil || !src.list().remove(o) {
		return notFound("option", name)
	}
	dst.list().opts = append(dst.list().opts, o)
	return nil
}

// Walk yields every option: the root list first, then each group in
// container order. The sequence is restartable.
func (p *Parser) Walk() iter.Seq[*Option] {
	return func(yield func(*Option) bool) {
		for _, o := range p.opts {
			if !yield(o) {
				return
			}
		}
		for _, g := range p.groups {
			for _, o := range g.opts {
				if !yield(o) {
					return
				}
			}
		}
	}
}

// SearchOption looks for an option across the whole parser by destination
// name or by spelling, without the dashes. A miss is not an error.
func (p *Parser) SearchOption(name string) (*Option, bool) {
	for o := range p.Walk() {
		if o.Dest != "" && o.Dest == name {
			return o, true
		}
		if slices.Contains(o.long, "--"+name) || slices.Contains(o.short, "-"+name) {
			return o, true
		}
	}
	return nil, false
}

// GroupByTitle finds the first group whose title starts with prefix,
// case-insensitively.
func (p *Parser) GroupByTitle(prefix string) (*Group, error) {
	for _, g := range p.groups {
		if strings.HasPrefix(strings.ToLower(g.Title), strings.ToLower(prefix)) {
			return g, nil
		}
	}
	return nil, notFound("option group", prefix)
}

// Groups returns the parser's groups in container order.
func (p *Parser) Groups() []*Group { return slices.Clone(p.groups) }

// Parse augments help strings with defaults, then hands argv to the engine.
// It returns the parsed values and the leftover positional arguments.
// Engine errors (unknown flag, missing value, invalid choice) pass through
// unmodified. After displaying help or the version line, Parse returns
// ErrHelp or ErrVersion so the caller can decide the exit.
func (p *Parser) Parse(argv []string) (Values, []string, error) {
	p.augmentDefaults()
	e := p.newEngine()
	if err := e.parse(argv); err != nil {
		return nil, nil, err
	}
	if e.help {
		p.PrintHelp()
		return nil, nil, ErrHelp
	}
	if e.version {
		fmt.Fprintln(p.out, strings.ReplaceAll(p.version, "%prog", p.prog))
		return nil, nil, ErrVersion
	}
	return e.vals, e.args(), nil
}

// PrintHelp renders the help page and shows it through the pager when the
// output is a terminal, or writes it straight out otherwise.
func (p *Parser) PrintHelp() {
	text := p.FormatHelp()
	if f, ok := p.out.(*os.File); ok && isTerminal(f) {
		if runPager(text) == nil {
			return
		}
	}
	fmt.Fprint(p.out, text)
}
