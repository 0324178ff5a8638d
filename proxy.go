package whosetit

// Proxy is the view of a wrapped object that callers write through. Every
// operation is forwarded to the target; only Set looks at what it forwards.
//
// Once the handle is revoked, Set and Delete return an error wrapping
// ErrRevoked, and Get, Has and Keys panic with such an error.
type Proxy struct {
	h *Handle
}

var _ Object = (*Proxy)(nil)

// Set assigns value to property on the target. If the property did not exist
// the location of the caller is recorded first. Errors from the target are
// returned unchanged.
func (p *Proxy) Set(property string, value any) error {
	return p.h.set(property, value)
}

func (p *Proxy) Get(property string) (any, bool) {
	p.mustBeActive("get", property)
	return p.h.target.Get(property)
}

func (p *Proxy) Has(property string) bool {
	p.mustBeActive("check", property)
	return p.h.target.Has(property)
}

func (p *Proxy) Delete(property string) error {
	if p.h.revoked {
		return revokedError("delete", property)
	}
	return p.h.target.Delete(property)
}

func (p *Proxy) Keys() []string {
	p.mustBeActive("list keys", "")
	return p.h.target.Keys()
}

func (p *Proxy) mustBeActive(op, property string) {
	if p.h.revoked {
		panic(revokedError(op, property))
	}
}
