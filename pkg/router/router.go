// Package router maps URL-style fragments such as "#/digest" to the tool
// that should be mounted, and keeps browser-like back/forward history.
package router

import "strings"

// Route identifies the screen shown in the content area.
type Route int

const (
	Index Route = iota
	Base64
	Digest
	BaseConverter
	CharCounter
	Regex
	SuddenDeath
)

// All returns every route, Index first.
func All() []Route {
	return []Route{Index, Base64, Digest, BaseConverter, CharCounter, Regex, SuddenDeath}
}

var paths = map[Route]string{
	Index:         "",
	Base64:        "base64",
	Digest:        "digest",
	BaseConverter: "base-conv",
	CharCounter:   "wc",
	Regex:         "regex",
	SuddenDeath:   "sudden-death",
}

var names = map[Route]string{
	Index:         "index",
	Base64:        "base64",
	Digest:        "digest",
	BaseConverter: "base-converter",
	CharCounter:   "char-counter",
	Regex:         "regex",
	SuddenDeath:   "sudden-death",
}

func (r Route) String() string {
	if n, ok := names[r]; ok {
		return n
	}
	return "unknown"
}

// Path returns the route's bare path, e.g. "base-conv". Index is "".
func (r Route) Path() string {
	return paths[r]
}

// Fragment returns the route's fragment, e.g. "#/base-conv". Index is "#/".
func (r Route) Fragment() string {
	return "#/" + paths[r]
}

// Parse maps a fragment to its route. Anything unmatched is Index.
func Parse(fragment string) Route {
	r, _ := Lookup(fragment)
	return r
}

// Lookup maps a fragment to its route and reports whether it names one. It
// accepts a bare fragment ("#/wc"), a path with a root prefix
// ("/static/#/wc"), a bare route path ("wc"), and tolerates a missing
// leading "/" or a trailing "/". Empty input is Index.
func Lookup(fragment string) (Route, bool) {
	s := strings.TrimSpace(fragment)
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.Trim(s, "/")
	s = strings.ToLower(s)

	if s == "" {
		return Index, true
	}
	for r, p := range paths {
		if p == s {
			return r, true
		}
	}
	return Index, false
}

// Transition describes a route change. From == To never occurs.
type Transition struct {
	From Route
	To   Route
}

// Router is the route state machine. The zero value starts at Index.
type Router struct {
	current Route
	back    []Route
	forward []Route
}

// New creates a Router positioned at initial with empty history.
func New(initial Route) *Router {
	return &Router{current: initial}
}

// Current returns the active route.
func (r *Router) Current() Route { return r.current }

// CanBack reports whether Back would move.
func (r *Router) CanBack() bool { return len(r.back) > 0 }

// CanForward reports whether Forward would move.
func (r *Router) CanForward() bool { return len(r.forward) > 0 }

// Navigate moves to to, recording the current route in the back history and
// clearing the forward history. Navigating to the current route does
// nothing and reports false.
func (r *Router) Navigate(to Route) (Transition, bool) {
	if to == r.current {
		return Transition{}, false
	}
	t := Transition{From: r.current, To: to}
	r.back = append(r.back, r.current)
	r.forward = r.forward[:0]
	r.current = to
	return t, true
}

// NavigateFragment is Navigate(Parse(fragment)).
func (r *Router) NavigateFragment(fragment string) (Transition, bool) {
	return r.Navigate(Parse(fragment))
}

// Back moves to the previous route, if any.
func (r *Router) Back() (Transition, bool) {
	if len(r.back) == 0 {
		return Transition{}, false
	}
	prev := r.back[len(r.back)-1]
	r.back = r.back[:len(r.back)-1]
	r.forward = append(r.forward, r.current)
	t := Transition{From: r.current, To: prev}
	r.current = prev
	return t, true
}

// Forward re-applies a route undone by Back, if any.
func (r *Router) Forward() (Transition, bool) {
	if len(r.forward) == 0 {
		return Transition{}, false
	}
	next := r.forward[len(r.forward)-1]
	r.forward = r.forward[:len(r.forward)-1]
	r.back = append(r.back, r.current)
	t := Transition{From: r.current, To: next}
	r.current = next
	return t, true
}
