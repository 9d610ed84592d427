package pflagx

// Group is a titled collection of options rendered under its own heading on
// the help page. Groups belong to exactly one parser and share its registry.
type Group struct {
	container
	Title string
}

// AddGroup creates a new option group owned by the parser and appends it to
// the parser's group list.
func (p *Parser) AddGroup(title string) *Group {
	g := &Group{
		container: container{reg: p.reg},
		Title:     title,
	}
	p.groups = append(p.groups, g)
	return g
}
