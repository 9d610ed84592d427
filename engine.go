package pflagx

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// engine materializes the parser's registry into a pflag.FlagSet for a
// single parse run. Every spelling of an option becomes a pflag flag; the
// secondary spellings are hidden aliases sharing the primary's value
// adapter, so whichever form the user types lands on the same destination.
type engine struct {
	fs      *pflag.FlagSet
	vals    Values
	help    bool
	version bool
}

func (p *Parser) newEngine() *engine {
	fs := pflag.NewFlagSet(p.prog, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	e := &engine{fs: fs, vals: Values{}}
	for o := range p.Walk() {
		e.bind(o)
	}
	return e
}

func (e *engine) bind(o *Option) {
	if o.Dest != "" {
		e.vals[o.Dest] = o.Default
	}
	v := &optionValue{o: o, e: e}

	long := o.LongSpellings()
	short := o.ShortSpellings()
	shorthand := ""
	if len(short) > 0 {
		shorthand = strings.TrimPrefix(short[0], "-")
	}
	// Primary flag: named after the first long spelling, or the short
	// character when the option has no long form.
	if len(long) > 0 {
		e.addFlag(v, o, strings.TrimPrefix(long[0], "--"), shorthand, false)
		long = long[1:]
		if shorthand != "" {
			short = short[1:]
		}
	} else {
		e.addFlag(v, o, shorthand, shorthand, false)
		short = short[1:]
	}
	for _, l := range long {
		e.addFlag(v, o, strings.TrimPrefix(l, "--"), "", true)
	}
	for _, s := range short {
		c := strings.TrimPrefix(s, "-")
		e.addFlag(v, o, c, c, true)
	}
}

func (e *engine) addFlag(v pflag.Value, o *Option, name, shorthand string, hidden bool) {
	e.fs.VarP(v, name, shorthand, o.Help)
	fl := e.fs.Lookup(name)
	fl.Hidden = hidden
	if !o.Action.takesValue() {
		// Lets the flag appear without an argument, pflag bool-style.
		if o.Action == Count {
			fl.NoOptDefVal = "+1"
		} else {
			fl.NoOptDefVal = "true"
		}
	}
}

func (e *engine) parse(argv []string) error { return e.fs.Parse(argv) }

func (e *engine) args() []string { return e.fs.Args() }

// optionValue adapts one option to pflag's Value interface.
type optionValue struct {
	o *Option
	e *engine
}

func (v *optionValue) String() string { return "" }

func (v *optionValue) Type() string {
	switch v.o.Action {
	case Store:
		return "string"
	case Count:
		return "count"
	default:
		return "bool"
	}
}

func (v *optionValue) Set(s string) error {
	switch v.o.Action {
	case Store:
		if len(v.o.Choices) > 0 && !slices.Contains(v.o.Choices, s) {
			return fmt.Errorf("invalid choice %q (choose from %s)",
				s, strings.Join(v.o.Choices, ", "))
		}
		v.e.vals[v.o.Dest] = s
	case StoreTrue, StoreFalse:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		if v.o.Action == StoreFalse {
			b = !b
		}
		v.e.vals[v.o.Dest] = b
	case Count:
		if s == "+1" {
			v.e.vals[v.o.Dest] = v.e.vals.Int(v.o.Dest) + 1
		} else {
			n, err := strconv.Atoi(s)
			if err != nil {
				return err
			}
			v.e.vals[v.o.Dest] = n
		}
	case Help:
		v.e.help = true
	case Version:
		v.e.version = true
	}
	return nil
}
