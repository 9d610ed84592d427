package pflagx

import "slices"

// Container is anything holding an ordered list of options: the parser root
// or an option group. Both expose the same registration contract, so options
// added directly to a group go through identical conflict handling.
type Container interface {
	// Add registers a new option. The spec carries the metadata, the
	// spellings mix short ("-x") and long ("--xray") forms.
	Add(spec Option, spellings ...string) (*Option, error)

	// Options returns the container's option list in registration order.
	Options() []*Option

	// OptionByName resolves a plain identifier: destinations first, then as
	// a long flag, then as a short flag. Returns nil when nothing matches.
	OptionByName(name string) *Option

	list() *container
}

// container is the shared implementation behind the parser root and groups.
type container struct {
	reg  *registry
	opts []*Option
}

func (c *container) list() *container { return c }

func (c *container) Add(spec Option, spellings ...string) (*Option, error) {
	o := spec
	if err := o.setSpellings(spellings); err != nil {
		return nil, err
	}
	o.deriveDest()
	if err := c.reg.claim(&o); err != nil {
		return nil, err
	}
	c.opts = append(c.opts, &o)
	return &o, nil
}

func (c *container) Options() []*Option { return slices.Clone(c.opts) }

func (c *container) OptionByName(name string) *Option {
	for _, o := range c.opts {
		if o.Dest != "" && o.Dest == name {
			return o
		}
	}
	if o := c.reg.long["--"+name]; o != nil {
		return o
	}
	return c.reg.short["-"+name]
}

// remove takes o out of the container's list, reporting whether it was there.
func (c *container) remove(o *Option) bool {
	i := slices.Index(c.opts, o)
	if i < 0 {
		return false
	}
	c.opts = slices.Delete(c.opts, i, i+1)
	return true
}
