package pflagx

import "strings"

// registry owns the two spelling indexes of a parser. The root container and
// every group share one registry, so a spelling means the same thing no
// matter where its option lives.
type registry struct {
	short map[string]*Option // "-x" -> owning option
	long  map[string]*Option // "--xray" -> owning option
}

func newRegistry() *registry {
	return &registry{
		short: make(map[string]*Option),
		long:  make(map[string]*Option),
	}
}

// owner returns the option currently claiming spelling, if any.
func (r *registry) owner(spelling string) *Option {
	if strings.HasPrefix(spelling, "--") {
		return r.long[spelling]
	}
	return r.short[spelling]
}

// release strips spelling from its current owner, but only when the owner
// keeps at least one other spelling. An option's last spelling is never
// taken away; the later claim fails with a conflict instead.
func (r *registry) release(spelling string) {
	o := r.owner(spelling)
	if o == nil || o.spellingCount() < 2 {
		return
	}
	o.dropSpelling(spelling)
	if strings.HasPrefix(spelling, "--") {
		delete(r.long, spelling)
	} else {
		delete(r.short, spelling)
	}
}

// claim runs the conflict pre-pass for every spelling of o, then indexes
// them. A spelling that is still taken after the pre-pass fails the whole
// registration with ErrConflict.
func (r *registry) claim(o *Option) error {
	for _, s := range o.short {
		r.release(s)
	}
	for _, s := range o.long {
		r.release(s)
	}
	for _, s := range o.short {
		if r.short[s] != nil {
			return conflict(s)
		}
	}
	for _, s := range o.long {
		if r.long[s] != nil {
			return conflict(s)
		}
	}
	for _, s := range o.short {
		r.short[s] = o
	}
	for _, s := range o.long {
		r.long[s] = o
	}
	return nil
}
