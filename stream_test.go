package urlencoded_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/queryforge/urlencoded"
)

func TestDecoder(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		r       io.Reader
		want    urlencoded.QueryMap
		wantErr error
	}{
		"valid stream": {
			r:    strings.NewReader("band=arctic+monkeys&band=temper+trap"),
			want: urlencoded.QueryMap{"band": {"arctic monkeys", "temper trap"}},
		},
		"empty stream": {
			r:       strings.NewReader(""),
			wantErr: urlencoded.ErrEmptyQuery,
		},
		"failing reader": {
			r:       errReader{},
			wantErr: errRead,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := urlencoded.NewDecoder(tt.r).Decode()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil {
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("(-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestDecoder_ReadFailureIsBodyError(t *testing.T) {
	t.Parallel()

	_, err := urlencoded.NewDecoder(errReader{}).Decode()

	var bodyErr *urlencoded.BodyError
	if !errors.As(err, &bodyErr) {
		t.Fatalf("expected *BodyError, got %T", err)
	}
	if bodyErr.Err != errRead {
		t.Errorf("wrapped cause = %v, want %v", bodyErr.Err, errRead)
	}
}

func TestEncoder(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	err := urlencoded.NewEncoder(&b).Encode(urlencoded.QueryMap{
		"color": {"green"},
		"band":  {"arctic_monkeys", "temper_trap"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff("band=arctic_monkeys&band=temper_trap&color=green", b.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
