package dnswire_test

import (
	"strings"
	"testing"

	"github.com/jroosing/domaininfo/internal/dnswire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr bool
	}{
		{
			name: "simple",
			in:   "example.com",
			want: []byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0},
		},
		{
			name: "trailing-dot",
			in:   "example.com.",
			want: []byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0},
		},
		{
			name: "root",
			in:   ".",
			want: []byte{0},
		},
		{name: "empty", in: "", wantErr: true},
		{name: "empty-label", in: "bad..com", wantErr: true},
		{name: "non-ascii", in: "exämple.com", wantErr: true},
		{name: "label-too-long", in: strings.Repeat("a", 64) + ".com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dnswire.EncodeName(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, dnswire.ErrWire)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeName_RoundTrip(t *testing.T) {
	for _, name := range []string{"example.com", "sub.example.co.uk", "a.b.c.d.e"} {
		t.Run(name, func(t *testing.T) {
			b, err := dnswire.EncodeName(name)
			require.NoError(t, err)

			off := 0
			got, err := dnswire.DecodeName(b, &off)
			require.NoError(t, err)
			assert.Equal(t, name, got)
			assert.Equal(t, len(b), off, "offset should advance past the name")
		})
	}
}

func TestDecodeName_CompressionPointer(t *testing.T) {
	// Message layout: name "example.com" at offset 0, then a name that is
	// [3]www + pointer back to offset 0.
	base, err := dnswire.EncodeName("example.com")
	require.NoError(t, err)

	msg := append([]byte{}, base...)
	ptrStart := len(msg)
	msg = append(msg, 3, 'w', 'w', 'w', 0xC0, 0x00)

	off := ptrStart
	got, err := dnswire.DecodeName(msg, &off)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", got)
	assert.Equal(t, len(msg), off)
}

func TestDecodeName_PointerLoop(t *testing.T) {
	// A pointer referring to itself must be rejected, not spin forever.
	msg := []byte{0xC0, 0x00}
	off := 0
	_, err := dnswire.DecodeName(msg, &off)
	require.Error(t, err)
	assert.ErrorIs(t, err, dnswire.ErrWire)
}

func TestDecodeName_Truncated(t *testing.T) {
	msg := []byte{7, 'e', 'x', 'a'}
	off := 0
	_, err := dnswire.DecodeName(msg, &off)
	require.Error(t, err)
	assert.ErrorIs(t, err, dnswire.ErrWire)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "example.com", dnswire.NormalizeName("EXAMPLE.COM."))
	assert.Equal(t, "example.com", dnswire.NormalizeName("example.com"))
	assert.Equal(t, "", dnswire.NormalizeName("."))
}
