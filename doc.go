// Package whosetit is a debugging aid that finds out who set a property.
//
// Wrap returns a Handle over an Object. Writes made through the handle's
// proxy view behave exactly like writes on the object itself, but every write
// that creates a property the object did not have yet is recorded together
// with the file, line and column of the call that made it:
//
//	h := whosetit.Wrap(whosetit.Map{"foo": 1})
//	p := h.Proxy()
//	_ = p.Set("foo", 2) // existing, not recorded
//	_ = p.Set("bar", 3) // new, recorded
//	fmt.Println(h.Locations().At(0))
//	obj := h.Revoke()
//
// Revoke detaches the proxy view and returns the original object. The
// recorded locations stay readable after that.
//
// Handles are not safe for concurrent use.
package whosetit
