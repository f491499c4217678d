package controller

// pageLoadedMsg reports the end of a page fetch started by the pager.
type pageLoadedMsg struct {
	err error
}

// selectionMsg reports the result of pushing the marked rows to the session.
type selectionMsg struct {
	err error
}
