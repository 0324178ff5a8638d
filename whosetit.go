package whosetit

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/liuxd6825/whosetit/errext"
	"github.com/liuxd6825/whosetit/internal/callsite"
)

// CallSite is the position of the code that performed a write.
type CallSite struct {
	Filename string
	Line     int
	Column   int
}

// CallSiteFunc returns the call site of the write being intercepted. It is
// called synchronously from within Proxy.Set.
type CallSiteFunc func() (CallSite, error)

// Options configure a Handle. The zero value is usable.
type Options struct {
	Config Config
	Logger logrus.FieldLogger

	// FS is where Go sources are read from when resolving columns. The OS
	// filesystem is used when nil.
	FS afero.Fs

	// CallSite replaces the Go stack walk, for wrappers whose writes come
	// from somewhere else (a script runtime for instance).
	CallSite CallSiteFunc
}

// Handle owns a proxy view over a target object and the locations of the
// new properties assigned through it.
type Handle struct {
	target    Object
	proxy     *Proxy
	locations *Locations
	revoked   bool

	config   Config
	logger   logrus.FieldLogger
	resolver *callsite.Resolver
	callSite CallSiteFunc
}

// Wrap returns an active handle over target with the default options.
func Wrap(target Object) *Handle {
	return WrapWithOptions(target, Options{})
}

// WrapWithOptions returns an active handle over target.
func WrapWithOptions(target Object, opts Options) *Handle {
	h := &Handle{
		target:    target,
		locations: &Locations{},
		config:    NewConfig().Apply(opts.Config),
		logger:    opts.Logger,
		callSite:  opts.CallSite,
	}
	h.proxy = &Proxy{h: h}

	if h.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		h.logger = l
	}
	if opts.FS != nil {
		h.resolver = callsite.NewResolver(opts.FS)
	} else {
		h.resolver = callsite.DefaultResolver()
	}

	return h
}

// Proxy returns the proxy view. It is the same value on every call.
func (h *Handle) Proxy() *Proxy {
	return h.proxy
}

// Locations returns the live list of records.
func (h *Handle) Locations() *Locations {
	return h.locations
}

// Revoked reports whether Revoke has been called.
func (h *Handle) Revoked() bool {
	return h.revoked
}

// Revoke disables the proxy view for good and returns the original target.
// Calling it again does nothing and returns the same target.
func (h *Handle) Revoke() Object {
	if !h.revoked {
		h.revoked = true
		h.logger.WithField("locations", h.locations.Len()).Debug("Proxy view revoked")
	}
	return h.target
}

// callerDepth is the Capture depth of the code calling Proxy.Set, counted
// from locate: locate, set, Proxy.Set, caller.
const callerDepth = 3

func (h *Handle) set(property string, value any) error {
	if h.revoked {
		return revokedError("set", property)
	}

	if !h.target.Has(property) {
		site, err := h.locate()
		if err != nil {
			err = malformedFrameError(property, err)
			errext.Log(h.logger, logrus.WarnLevel, err)
			return err
		}
		h.record(Location{
			Property: property,
			Filename: site.Filename,
			Line:     site.Line,
			Column:   site.Column,
		})
	}

	return h.target.Set(property, value)
}

func (h *Handle) locate() (CallSite, error) {
	if h.callSite != nil {
		return h.callSite()
	}

	site, err := callsite.Capture(callerDepth)
	if err != nil {
		return CallSite{}, err
	}
	if h.config.ResolveColumns.Bool {
		site = h.resolver.Resolve(site, "Set")
	}
	return CallSite{Filename: site.File, Line: site.Line, Column: site.Column}, nil
}

func (h *Handle) record(loc Location) {
	h.locations.append(loc)
	if h.config.LogLocations.Bool {
		h.logger.WithFields(logrus.Fields{
			"property": loc.Property,
			"filename": loc.Filename,
			"line":     loc.Line,
			"column":   loc.Column,
		}).Debug("New property set")
	}
}
