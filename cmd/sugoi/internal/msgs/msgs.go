package msgs

// NavigateMsg asks the app to move to a fragment, as if the URL fragment
// had changed.
type NavigateMsg struct {
	Fragment string
}

// HistoryMsg asks the app to move through the route history.
type HistoryMsg struct {
	Forward bool
}
