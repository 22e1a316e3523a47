package urlencoded_test

import (
	"errors"
	"net/url"
)

// errRead stands in for whatever failure the caller's body read reports.
var errRead = errors.New("read: connection reset")

// errReader fails on every Read.
type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errRead }

func mustParseURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}
