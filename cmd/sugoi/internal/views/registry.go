package views

import (
	"github.com/germanamz/sugoi/pkg/router"
)

// Menu groups.
const (
	GroupTools      = "Tools"
	GroupGenerators = "Generators"
)

// Factory builds a fresh view with empty input state.
type Factory func(env Env) View

// Entry binds a route to its menu title, menu group and view factory.
// Index has no group and is not listed in the menu.
type Entry struct {
	Route router.Route
	Title string
	Group string
	New   Factory
}

// Registry maps routes to entries. Adding a tool means registering one more
// Entry; nothing else dispatches on the route.
type Registry struct {
	entries map[router.Route]Entry
	order   []router.Route
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[router.Route]Entry),
	}
}

// Register adds entries. An entry for an already registered route replaces
// it in place.
func (r *Registry) Register(entries ...Entry) {
	for _, e := range entries {
		if _, exists := r.entries[e.Route]; !exists {
			r.order = append(r.order, e.Route)
		}
		r.entries[e.Route] = e
	}
}

// Get returns the entry for route.
func (r *Registry) Get(route router.Route) (Entry, bool) {
	e, ok := r.entries[route]
	return e, ok
}

// Entries returns all entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, route := range r.order {
		out = append(out, r.entries[route])
	}
	return out
}

// MenuEntries returns the entries that belong to group, in registration
// order.
func (r *Registry) MenuEntries(group string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Group == group {
			out = append(out, e)
		}
	}
	return out
}

// Mount builds a fresh view for route. Unregistered routes get the index
// screen.
func (r *Registry) Mount(route router.Route, env Env) View {
	if e, ok := r.entries[route]; ok {
		return e.New(env)
	}
	if e, ok := r.entries[router.Index]; ok {
		return e.New(env)
	}
	return NewIndex(env, r)
}

// Default returns a registry with every tool.
func Default() *Registry {
	r := NewRegistry()
	r.Register(
		Entry{Route: router.Index, Title: "Index", New: func(env Env) View { return NewIndex(env, r) }},
		Entry{Route: router.Base64, Title: "Base64", Group: GroupTools, New: NewBase64},
		Entry{Route: router.Digest, Title: "Message digest (MD5, SHA-1, SHA-2)", Group: GroupTools, New: NewDigest},
		Entry{Route: router.BaseConverter, Title: "Base converter", Group: GroupTools, New: NewBaseConverter},
		Entry{Route: router.CharCounter, Title: "Character counter", Group: GroupTools, New: NewCharCounter},
		Entry{Route: router.Regex, Title: "Regex generator", Group: GroupGenerators, New: NewRegex},
		Entry{Route: router.SuddenDeath, Title: "突然の死ジェネレーター", Group: GroupGenerators, New: NewSuddenDeath},
	)
	return r
}
