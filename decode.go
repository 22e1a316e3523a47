package urlencoded

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// QueryMap maps a parameter name to the list of values supplied for that
// name. The values for a key appear in the order the key occurred in the
// source string.
type QueryMap map[string][]string

// Get returns the first value associated with key, or the empty string if
// the key is not present.
func (m QueryMap) Get(key string) string {
	vs := m[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Add appends value to the values associated with key.
func (m QueryMap) Add(key, value string) {
	m[key] = append(m[key], value)
}

// DecodeQuery decodes the query component of u. If u is nil or carries no
// query component, DecodeQuery returns [ErrEmptyQuery].
func DecodeQuery(u *url.URL) (QueryMap, error) {
	if u == nil || (u.RawQuery == "" && !u.ForceQuery) {
		return nil, ErrEmptyQuery
	}
	return ParseQuery(u.RawQuery)
}

// DecodeBody decodes a form-urlencoded request body. The body and err
// arguments are typically the results of the caller's own body read, so
// the call chains directly:
//
//	params, err := urlencoded.DecodeBody(io.ReadAll(r.Body))
//
// A non-nil err is reported as a [*BodyError] before any decoding is
// attempted. An empty body decodes like an empty query string and returns
// [ErrEmptyQuery].
func DecodeBody(body []byte, err error) (QueryMap, error) {
	if err != nil {
		return nil, &BodyError{Err: err}
	}
	return ParseQuery(string(body))
}

// ParseQuery decodes a form-urlencoded string into a [QueryMap]. Duplicate
// keys are merged into a single entry whose values keep their original
// left-to-right order. Invalid percent escapes pass through literally, so
// ParseQuery fails only on empty input ([ErrEmptyQuery]) or on input whose
// percent-decoded bytes are not valid UTF-8 ([ErrMalformedQuery]).
func ParseQuery(query string) (QueryMap, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	decoded := percentDecode(query)
	if !utf8.ValidString(decoded) {
		return nil, ErrMalformedQuery
	}

	m := QueryMap{}
	for _, segment := range strings.Split(decoded, "&") {
		// Empty segments from a leading, trailing or doubled "&" carry no
		// pair.
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		m.Add(decodePart(key), decodePart(value))
	}
	return m, nil
}

// decodePart decodes a single key or value: "+" becomes a space, percent
// escapes are reversed, and any bytes left invalid are replaced with
// U+FFFD.
func decodePart(s string) string {
	s = percentDecode(strings.ReplaceAll(s, "+", " "))
	return strings.ToValidUTF8(s, "�")
}

// percentDecode reverses %XX escapes in s. A "%" not followed by two hex
// digits is passed through unchanged.
func percentDecode(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
