package ui

// linkOpenedMsg contains the result of opening a suggestion in the browser
type linkOpenedMsg struct {
	link string
	err  error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
