package book

import "strings"

// Filter narrows a listing to books whose fields contain the given
// substrings. A blank field (empty or whitespace-only) is not applied; when
// both are set the conditions are combined with AND. The zero Filter matches
// every book.
//
// Matching is case-sensitive. The filter is a plain value so that stores
// can translate it into their own query vocabulary.
type Filter struct {
	Title  string
	Author string
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Matches reports whether b satisfies every applied condition.
func (f Filter) Matches(b Book) bool {
	if notBlank(f.Title) && !strings.Contains(b.Title, f.Title) {
		return false
	}
	if notBlank(f.Author) && !strings.Contains(b.Author, f.Author) {
		return false
	}
	return true
}
