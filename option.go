package pflagx

import (
	"fmt"
	"slices"
	"strings"
)

// Action selects what the engine does when an option's flag shows up on the
// command line.
type Action int

const (
	Store      Action = iota // store the following argument
	StoreTrue                // store true
	StoreFalse               // store false
	Count                    // increment per occurrence
	Help                     // show the help page
	Version                  // print the version line
)

// takesValue reports whether the action consumes an argument.
func (a Action) takesValue() bool { return a == Store }

// storesValue reports whether the action writes to a destination at all.
func (a Action) storesValue() bool {
	switch a {
	case Store, StoreTrue, StoreFalse, Count:
		return true
	}
	return false
}

// Option is one registered command-line option. The flag spellings are set
// during registration and managed by the parser's registry afterwards; an
// option always keeps at least one spelling.
type Option struct {
	Dest    string // destination name; derived from the spellings when empty
	Action  Action
	Default any // nil renders as "None"
	Help    string
	Metavar string   // placeholder in flag listings; defaults to upper-cased Dest
	Choices []string // Store only: accepted values

	short []string // e.g. "-x"
	long  []string // e.g. "--xray"
}

// ShortSpellings returns a copy of the option's short flag spellings.
func (o *Option) ShortSpellings() []string { return slices.Clone(o.short) }

// LongSpellings returns a copy of the option's long flag spellings.
func (o *Option) LongSpellings() []string { return slices.Clone(o.long) }

// spellingCount is the total across short and long forms.
func (o *Option) spellingCount() int { return len(o.short) + len(o.long) }

func (o *Option) dropSpelling(s string) {
	if i := slices.Index(o.short, s); i >= 0 {
		o.short = slices.Delete(o.short, i, i+1)
		return
	}
	if i := slices.Index(o.long, s); i >= 0 {
		o.long = slices.Delete(o.long, i, i+1)
	}
}

// setSpellings validates and splits the registration spellings. A short
// spelling is a dash plus one character, a long spelling a double dash plus
// at least two characters.
func (o *Option) setSpellings(spellings []string) error {
	if len(spellings) == 0 {
		return fmt.Errorf("option needs at least one flag spelling")
	}
	for _, s := range spellings {
		switch {
		case strings.HasPrefix(s, "--") && len(s) >= 4:
			o.long = append(o.long, s)
		case strings.HasPrefix(s, "-") && !strings.HasPrefix(s, "--") && len(s) == 2:
			o.short = append(o.short, s)
		default:
			return fmt.Errorf("invalid flag spelling %q", s)
		}
	}
	return nil
}

// deriveDest fills in the destination for value-storing options: first long
// spelling with dashes turned into underscores, else the short character.
func (o *Option) deriveDest() {
	if o.Dest != "" || !o.Action.storesValue() {
		return
	}
	if len(o.long) > 0 {
		o.Dest = strings.ReplaceAll(strings.TrimPrefix(o.long[0], "--"), "-", "_")
		return
	}
	o.Dest = strings.TrimPrefix(o.short[0], "-")
}

// sortKey orders options on the help page: first short spelling without its
// dash, else first long spelling without its dashes. Every registered option
// has at least one spelling, so the key always exists.
func (o *Option) sortKey() string {
	if len(o.short) > 0 {
		return o.short[0][1:]
	}
	return o.long[0][2:]
}

// defaultString is the rendered form of the default value. A nil default
// reads "None"; note that makes it non-empty for augmentation purposes.
func (o *Option) defaultString() string {
	if o.Default == nil {
		return noDefaultValue
	}
	return fmt.Sprint(o.Default)
}
