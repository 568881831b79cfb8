package deck

import (
	"fmt"
	"net/url"
	"strings"
)

// ParamKey returns the query key of a slot: c01 for slot 0 up to c20
func ParamKey(index int) string {
	return fmt.Sprintf("c%02d", index+1)
}

// param is one key=value segment of a query string
type param struct {
	raw   string // segment as written, reused verbatim unless the key is set
	key   string
	value string
}

// query is an ordered query string editor. Segments it does not touch are
// written back byte-for-byte.
type query struct {
	params []param
}

func parseQuery(raw string) *query {
	q := &query{}
	raw = strings.TrimPrefix(raw, "?")
	for _, seg := range strings.Split(raw, "&") {
		if seg == "" {
			continue
		}
		k, v, _ := strings.Cut(seg, "=")
		q.params = append(q.params, param{raw: seg, key: unescape(k), value: unescape(v)})
	}
	return q
}

// unescape decodes a form-encoded component; malformed input is taken literally
func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

// get returns the first value for key
func (q *query) get(key string) (string, bool) {
	for _, p := range q.params {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

// set replaces the first occurrence of key in place and drops the others, or
// appends the key when absent.
func (q *query) set(key, value string) {
	p := param{
		raw:   url.QueryEscape(key) + "=" + url.QueryEscape(value),
		key:   key,
		value: value,
	}

	out := q.params[:0]
	found := false
	for _, existing := range q.params {
		if existing.key != key {
			out = append(out, existing)
			continue
		}
		if !found {
			out = append(out, p)
			found = true
		}
	}
	if !found {
		out = append(out, p)
	}
	q.params = out
}

func (q *query) del(key string) {
	out := q.params[:0]
	for _, p := range q.params {
		if p.key != key {
			out = append(out, p)
		}
	}
	q.params = out
}

func (q *query) encode() string {
	segs := make([]string, len(q.params))
	for i, p := range q.params {
		segs[i] = p.raw
	}
	return strings.Join(segs, "&")
}

// apply writes the deck into q: every filled slot sets its key, every empty
// slot removes it.
func (q *query) apply(d Deck) {
	for i, id := range d {
		key := ParamKey(i)
		if id != "" {
			q.set(key, id)
		} else {
			q.del(key)
		}
	}
}

// Encode renders the deck keys alone, in slot order
func Encode(d Deck) string {
	q := &query{}
	q.apply(d)
	return q.encode()
}

// Decode reads the deck keys of a raw query. Slots keep the positions found in
// the query. The boolean reports whether any slot was filled.
func Decode(rawQuery string) (Deck, bool) {
	var d Deck
	found := false
	q := parseQuery(rawQuery)
	for i := range d {
		if v, ok := q.get(ParamKey(i)); ok && v != "" {
			d[i] = v
			found = true
		}
	}
	return d, found
}

// Sync rewrites the deck keys of rawQuery and leaves every other segment as is
func Sync(rawQuery string, d Deck) string {
	q := parseQuery(rawQuery)
	q.apply(d)
	return q.encode()
}
