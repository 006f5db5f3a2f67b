package domain

// Suggestion is one search result: a page title and the link to it
type Suggestion struct {
	Title string
	Link  string
}

// SuggestionList is an ordered list of suggestions, in the order the
// search source returned them
type SuggestionList []Suggestion

// Clone returns a copy that does not share the backing array
func (l SuggestionList) Clone() SuggestionList {
	if l == nil {
		return nil
	}
	out := make(SuggestionList, len(l))
	copy(out, l)
	return out
}

// IndexOf returns the position of the suggestion with the given link, or -1.
// Links are unique within one result set, so they double as item keys.
func (l SuggestionList) IndexOf(link string) int {
	for i, s := range l {
		if s.Link == link {
			return i
		}
	}
	return -1
}
