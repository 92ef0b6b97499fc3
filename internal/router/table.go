// Package router maps navigation paths to overlay page content.
package router

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoNotFound is returned when a table is built without a not-found producer.
var ErrNoNotFound = errors.New("router: table has no not-found producer")

// Producer renders the HTML content of a page.
type Producer func() string

// Table is a read-only route table.
type Table struct {
	routes   map[string]Producer
	notFound Producer
}

// NewTable creates a table from routes. Keys are normalized; the map is
// copied so later changes by the caller have no effect.
func NewTable(routes map[string]Producer, notFound Producer) (*Table, error) {
	if notFound == nil {
		return nil, ErrNoNotFound
	}

	t := &Table{
		routes:   make(map[string]Producer, len(routes)),
		notFound: notFound,
	}
	for key, p := range routes {
		if p == nil {
			return nil, fmt.Errorf("router: nil producer for %q", key)
		}
		t.routes[Normalize(key)] = p
	}
	return t, nil
}

// Resolve returns the producer for key, or the not-found producer.
func (t *Table) Resolve(key string) Producer {
	p, _ := t.Lookup(key)
	return p
}

// Lookup is Resolve that also reports whether key matched a route.
func (t *Table) Lookup(key string) (Producer, bool) {
	if p, ok := t.routes[Normalize(key)]; ok {
		return p, true
	}
	return t.notFound, false
}

// Keys returns the route keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.routes))
	for k := range t.routes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Normalize canonicalizes a navigation path. Query and fragment are
// dropped, repeated slashes collapse, a trailing slash is trimmed and the
// empty path becomes "/".
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)

	var b strings.Builder
	b.Grow(len(path) + 1)
	b.WriteByte('/')
	prevSlash := true
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteByte(c)
	}

	out := b.String()
	if len(out) > 1 {
		out = strings.TrimSuffix(out, "/")
	}
	return out
}
