// Package fakereg is an in-memory hardware service registry for tests.
//
// It implements the als Registry/Cursor/Service ports over a plain ordered
// slice of entries. Entries can be added and removed between queries, which
// lets tests exercise the probe-then-reopen race in sensor enumeration, and
// every handle counts its releases so tests can assert the single-release
// discipline. Not safe for concurrent use; the accessor layer is
// single-threaded by contract.
package fakereg

import (
	"github.com/luxtap/luxtap/internal/als"
)

// Entry is one fake service registry entry.
type Entry struct {
	name     string
	nameErr  error
	props    map[string]any
	releases int
}

// Releases reports how many times handles to this entry have been released.
func (e *Entry) Releases() int {
	return e.releases
}

// SetProperty sets or replaces a property on the entry.
func (e *Entry) SetProperty(key string, value any) {
	e.props[key] = value
}

// Registry is a fake als.Registry backed by an ordered entry list.
type Registry struct {
	entries   []*Entry
	queryErr  error
	queries   int
	lastClass string
	cursors   []*cursor
}

// New creates an empty fake registry.
func New() *Registry {
	return &Registry{}
}

// Add registers an entry with the given name and properties, appended in
// enumeration order. A nil props map means the entry has no properties.
func (r *Registry) Add(name string, props map[string]any) *Entry {
	if props == nil {
		props = map[string]any{}
	}
	e := &Entry{name: name, props: props}
	r.entries = append(r.entries, e)
	return e
}

// AddNameless registers an entry whose Name call fails with err.
func (r *Registry) AddNameless(err error, props map[string]any) *Entry {
	e := r.Add("", props)
	e.nameErr = err
	return e
}

// Remove deletes the first entry with the given name. Cursors created
// before the removal still see the entry; later queries do not, mimicking
// an entry vanishing from the live registry mid-iteration.
func (r *Registry) Remove(name string) {
	for i, e := range r.entries {
		if e.name == name {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// FailQueries makes every subsequent Services call fail with err.
func (r *Registry) FailQueries(err error) {
	r.queryErr = err
}

// Queries reports how many Services calls have been made.
func (r *Registry) Queries() int {
	return r.queries
}

// OpenCursors reports how many issued cursors have not been closed.
func (r *Registry) OpenCursors() int {
	n := 0
	for _, c := range r.cursors {
		if !c.closed {
			n++
		}
	}
	return n
}

// LastClass reports the service class of the most recent query.
func (r *Registry) LastClass() string {
	return r.lastClass
}

// Services returns a cursor over a snapshot of the current entries.
func (r *Registry) Services(class string) (als.Cursor, error) {
	r.queries++
	r.lastClass = class
	if r.queryErr != nil {
		return nil, r.queryErr
	}
	snapshot := make([]*Entry, len(r.entries))
	copy(snapshot, r.entries)
	c := &cursor{entries: snapshot}
	r.cursors = append(r.cursors, c)
	return c, nil
}

type cursor struct {
	entries []*Entry
	pos     int
	closed  bool
}

func (c *cursor) Next() (als.Service, bool) {
	if c.closed || c.pos >= len(c.entries) {
		return nil, false
	}
	e := c.entries[c.pos]
	c.pos++
	return &handle{entry: e}, true
}

func (c *cursor) Close() {
	c.closed = true
}

// handle is one issued service handle. Each handle releases at most once
// regardless of how many times Close is called.
type handle struct {
	entry  *Entry
	closed bool
}

func (h *handle) Name() (string, error) {
	if h.entry.nameErr != nil {
		return "", h.entry.nameErr
	}
	return h.entry.name, nil
}

func (h *handle) Property(key string) (any, bool) {
	v, ok := h.entry.props[key]
	return v, ok
}

func (h *handle) Close() {
	if !h.closed {
		h.closed = true
		h.entry.releases++
	}
}
