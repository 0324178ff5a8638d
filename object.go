package whosetit

import (
	"errors"
	"fmt"
	"sort"
)

// ErrFrozen is returned by writes to a frozen PlainObject.
var ErrFrozen = errors.New("object is frozen")

// Object is anything with string-keyed properties that can be wrapped.
type Object interface {
	// Get returns the value of property and whether it exists.
	Get(property string) (any, bool)
	// Has reports whether property exists on the object, inherited
	// properties included.
	Has(property string) bool
	Set(property string, value any) error
	Delete(property string) error
	// Keys returns the names of the object's own properties.
	Keys() []string
}

// Map is a plain map used as an Object. It has no inherited properties and
// never rejects a write.
type Map map[string]any

var _ Object = Map{}

func (m Map) Get(property string) (any, bool) {
	v, ok := m[property]
	return v, ok
}

func (m Map) Has(property string) bool {
	_, ok := m[property]
	return ok
}

func (m Map) Set(property string, value any) error {
	m[property] = value
	return nil
}

func (m Map) Delete(property string) error {
	delete(m, property)
	return nil
}

// Keys returns the map keys sorted.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PlainObject is an ordered property bag with an optional prototype. Reads
// and existence checks fall through to the prototype; writes always create
// or update an own property. A frozen object rejects every write.
type PlainObject struct {
	proto  Object
	keys   []string
	values map[string]any
	frozen bool
}

var _ Object = (*PlainObject)(nil)

// NewObject returns an empty object inheriting from proto, which may be nil.
func NewObject(proto Object) *PlainObject {
	return &PlainObject{proto: proto, values: make(map[string]any)}
}

// Prototype returns the object this one inherits from, or nil.
func (o *PlainObject) Prototype() Object {
	return o.proto
}

func (o *PlainObject) Get(property string) (any, bool) {
	if v, ok := o.values[property]; ok {
		return v, true
	}
	if o.proto != nil {
		return o.proto.Get(property)
	}
	return nil, false
}

func (o *PlainObject) Has(property string) bool {
	if _, ok := o.values[property]; ok {
		return true
	}
	return o.proto != nil && o.proto.Has(property)
}

// HasOwn reports whether property is set on o itself.
func (o *PlainObject) HasOwn(property string) bool {
	_, ok := o.values[property]
	return ok
}

func (o *PlainObject) Set(property string, value any) error {
	if o.frozen {
		return fmt.Errorf("cannot assign to property %q: %w", property, ErrFrozen)
	}
	if _, ok := o.values[property]; !ok {
		o.keys = append(o.keys, property)
	}
	o.values[property] = value
	return nil
}

func (o *PlainObject) Delete(property string) error {
	if o.frozen {
		return fmt.Errorf("cannot delete property %q: %w", property, ErrFrozen)
	}
	if _, ok := o.values[property]; !ok {
		return nil
	}
	delete(o.values, property)
	for i, k := range o.keys {
		if k == property {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return nil
}

// Keys returns the own property names in insertion order.
func (o *PlainObject) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Freeze makes every later Set or Delete fail with ErrFrozen. It can't be undone.
func (o *PlainObject) Freeze() {
	o.frozen = true
}

// Frozen reports whether Freeze was called.
func (o *PlainObject) Frozen() bool {
	return o.frozen
}
