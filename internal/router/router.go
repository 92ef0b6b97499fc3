package router

// View is the resolved content for the current route.
type View struct {
	Route    string
	Content  string
	NotFound bool
}

// Router resolves the current history entry through a Table and reports
// each resolution to a listener.
type Router struct {
	table    *Table
	history  History
	onChange func(View)
	current  View
}

// New creates a router. onChange may be nil.
func New(table *Table, history History, onChange func(View)) *Router {
	return &Router{
		table:    table,
		history:  history,
		onChange: onChange,
	}
}

// Load resolves the current entry without touching history.
func (r *Router) Load() View {
	return r.resolve()
}

// Navigate pushes path and resolves it. Navigating to the current entry
// does not push a duplicate, so repeated calls leave history unchanged.
func (r *Router) Navigate(path string) View {
	path = Normalize(path)
	if path != r.history.Current() {
		r.history.Push(path)
	}
	return r.resolve()
}

// Popstate resolves the current entry after an external history move.
func (r *Router) Popstate() View {
	return r.resolve()
}

// Back moves history back and resolves. Returns false at the start.
func (r *Router) Back() bool {
	if !r.history.Back() {
		return false
	}
	r.Popstate()
	return true
}

// Forward moves history forward and resolves. Returns false at the end.
func (r *Router) Forward() bool {
	if !r.history.Forward() {
		return false
	}
	r.Popstate()
	return true
}

// Current returns the last resolved view.
func (r *Router) Current() View {
	return r.current
}

// History returns the underlying history.
func (r *Router) History() History {
	return r.history
}

func (r *Router) resolve() View {
	route := r.history.Current()
	producer, ok := r.table.Lookup(route)
	v := View{
		Route:    route,
		Content:  producer(),
		NotFound: !ok,
	}
	r.current = v
	if r.onChange != nil {
		r.onChange(v)
	}
	return v
}
