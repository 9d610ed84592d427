package pflagx

import "strings"

// augmentDefaults appends "Default: %default" to the help text of every
// value-taking option in the root container and in every group. Options
// whose help already mentions %default are skipped, which also makes the
// pass idempotent. Runs once per Parse, before parsing.
func (p *Parser) augmentDefaults() {
	p.container.augmentDefaults()
	for _, g := range p.groups {
		g.container.augmentDefaults()
	}
}

func (c *container) augmentDefaults() {
	for _, o := range c.opts {
		if o.Action != Store || o.Help == "" {
			continue
		}
		if strings.Contains(o.Help, "%default") || o.defaultString() == "" {
			continue
		}
		if last := o.Help[len(o.Help)-1]; last != '.' && last != '!' {
			o.Help += "."
		}
		if o.Help[len(o.Help)-1] != ' ' {
			o.Help += " "
		}
		o.Help += "Default: %default"
	}
}
