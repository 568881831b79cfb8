package deck

import "net/url"

// Location is the address the deck is mirrored into.
//
// Search returns the current query string without the leading '?'.
// ReplaceSearch swaps the query in place; it never adds a history entry.
type Location interface {
	Search() string
	ReplaceSearch(rawQuery string)
}

// Notifier shows a blocking message to the user
type Notifier interface {
	Alert(message string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(message string)

func (f NotifierFunc) Alert(message string) {
	f(message)
}

// URLLocation is a Location over a page URL
type URLLocation struct {
	u *url.URL
}

// ParseLocation parses a page URL
func ParseLocation(rawURL string) (*URLLocation, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	return &URLLocation{u: u}, nil
}

func (l *URLLocation) Search() string {
	return l.u.RawQuery
}

func (l *URLLocation) ReplaceSearch(rawQuery string) {
	l.u.RawQuery = rawQuery
	l.u.ForceQuery = false
}

// String renders the page URL; the '?' is omitted when the query is empty
func (l *URLLocation) String() string {
	return l.u.String()
}
