package lookup_test

import (
	"strings"
	"testing"

	"github.com/jroosing/domaininfo/internal/lookup"
	"github.com/stretchr/testify/assert"
)

func TestValidDomain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "simple", in: "example.com", want: true},
		{name: "multi-label", in: "sub.example.co.uk", want: true},
		{name: "digits", in: "0example.com", want: true},
		{name: "inner-hyphen", in: "my-site.example.com", want: true},
		{name: "single-char-label", in: "a.com", want: true},
		{name: "max-label", in: strings.Repeat("a", 63) + ".com", want: true},

		{name: "empty", in: "", want: false},
		{name: "whitespace", in: "   ", want: false},
		{name: "no-dot", in: "localhost", want: false},
		{name: "leading-hyphen", in: "-bad.com", want: false},
		{name: "trailing-hyphen", in: "bad-.com", want: false},
		{name: "empty-label", in: "bad..com", want: false},
		{name: "short-tld", in: "example.c", want: false},
		{name: "numeric-tld", in: "example.12", want: false},
		{name: "label-too-long", in: strings.Repeat("a", 64) + ".com", want: false},
		{name: "embedded-space", in: "exa mple.com", want: false},
		{name: "underscore", in: "ex_ample.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lookup.ValidDomain(tt.in))
		})
	}
}
