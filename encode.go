package urlencoded

import (
	"net/url"
	"sort"
	"strings"
)

// Encode serialises m into form-urlencoded format ("key=value" pairs
// joined by "&"). Keys are sorted so the output is deterministic; the
// values for each key are emitted in order. Encoding a nil or empty map
// yields the empty string.
func Encode(m QueryMap) string {
	if len(m) == 0 {
		return ""
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		escaped := url.QueryEscape(k)
		for _, v := range m[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(escaped)
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
