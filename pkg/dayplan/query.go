package dayplan

import (
	"net/url"
	"strconv"
	"strings"
)

// query builds a query string whose parameters keep call-site order.
// url.Values.Encode sorts keys, which would reorder filters, so pairs are
// appended to a slice instead. Only parameters explicitly added appear in
// the output; empty strings, zero and false are legitimate values and are
// kept when set.
type query struct {
	pairs []string
}

func (q *query) add(key, value string) {
	q.pairs = append(q.pairs, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

func (q *query) addInt(key string, value int) {
	q.add(key, strconv.Itoa(value))
}

func (q *query) addBool(key string, value bool) {
	q.add(key, strconv.FormatBool(value))
}

// encode returns the assembled query string including the leading "?",
// or the empty string when no parameters were added.
func (q *query) encode() string {
	if len(q.pairs) == 0 {
		return ""
	}
	return "?" + strings.Join(q.pairs, "&")
}
