package ast

// Declarations is an insertion-ordered mapping from property name to value
// text, with unique keys: setting an existing key overwrites its value in
// place without moving it, matching spec.md §3's ordering invariant. A
// later duplicate overwrites the earlier entry; only an explicit
// Delete+Set by a transform moves a key to a new position.
//
// Go's builtin map has no stable iteration order, so this keeps a parallel
// slice of keys alongside the value map - the "parallel order vector"
// spec.md §9 calls for in languages without an ordered-dict primitive.
type Declarations struct {
	order  []string
	values map[string]string
}

// NewDeclarations returns an empty, ready-to-use Declarations.
func NewDeclarations() *Declarations {
	return &Declarations{values: make(map[string]string)}
}

// Len returns the number of declarations.
func (d *Declarations) Len() int { return len(d.order) }

// Get returns the value for name and whether it is present.
func (d *Declarations) Get(name string) (string, bool) {
	v, ok := d.values[name]
	return v, ok
}

// Has reports whether name is present.
func (d *Declarations) Has(name string) bool {
	_, ok := d.values[name]
	return ok
}

// Set inserts name=value, appending name to the iteration order if it is
// new, or overwriting the value in place (without moving it) if present.
func (d *Declarations) Set(name, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[name]; !ok {
		d.order = append(d.order, name)
	}
	d.values[name] = value
}

// Delete removes name, if present.
func (d *Declarations) Delete(name string) {
	if _, ok := d.values[name]; !ok {
		return
	}
	delete(d.values, name)
	for i, k := range d.order {
		if k == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Keys returns the property names in insertion order.
func (d *Declarations) Keys() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Range calls fn for each declaration in insertion order. fn must not
// mutate the Declarations being ranged over.
func (d *Declarations) Range(fn func(name, value string)) {
	for _, k := range d.order {
		fn(k, d.values[k])
	}
}

// Clone returns a deep copy.
func (d *Declarations) Clone() *Declarations {
	out := NewDeclarations()
	d.Range(func(name, value string) {
		out.Set(name, value)
	})
	return out
}
