package urlencoded

import (
	"io"
)

// Decoder reads a form-urlencoded body from an [io.Reader] and decodes it
// into a [QueryMap].
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a new [Decoder] that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the remainder of the underlying [io.Reader] and decodes it.
// A read failure is reported as a [*BodyError]; an empty stream reports
// [ErrEmptyQuery].
func (d *Decoder) Decode() (QueryMap, error) {
	body, err := io.ReadAll(d.r)
	return DecodeBody(body, err)
}

// Encoder writes form-urlencoded data to an [io.Writer].
type Encoder struct {
	w io.Writer
}

// NewEncoder creates a new [Encoder] that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode serialises m and writes it to the underlying [io.Writer].
func (e *Encoder) Encode(m QueryMap) error {
	_, err := io.WriteString(e.w, Encode(m))
	return err
}
