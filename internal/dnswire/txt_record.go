package dnswire

import (
	"fmt"
	"strconv"
	"strings"
)

// TXTRecord represents a DNS TXT record (RFC 1035 Section 3.3.14).
//
// RDATA is one or more character-strings, each a length byte followed by up
// to 255 bytes of data. Long TXT payloads (SPF, DKIM keys) span multiple
// character-strings within a single record.
type TXTRecord struct {
	H       RRHeader
	Strings []string
}

// NewTXTRecord creates a new TXT record from its character-strings.
func NewTXTRecord(h RRHeader, strs []string) *TXTRecord {
	return &TXTRecord{H: h, Strings: strs}
}

// Type returns TypeTXT.
func (r *TXTRecord) Type() RecordType { return TypeTXT }

// Header returns the record header.
func (r *TXTRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *TXTRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData marshals the character-strings to wire format.
func (r *TXTRecord) MarshalRData() ([]byte, error) {
	size := 0
	for _, s := range r.Strings {
		if len(s) > 255 {
			return nil, fmt.Errorf("%w: TXT character-string too long (%d > 255)", ErrWire, len(s))
		}
		size += 1 + len(s)
	}
	out := make([]byte, 0, size)
	for _, s := range r.Strings {
		out = append(out, byte(len(s)))
		out = append(out, s...)
	}
	return out, nil
}

// Text returns the character-strings quoted and space-separated, the
// conventional presentation format ("\"v=spf1 -all\"").
func (r *TXTRecord) Text() string {
	quoted := make([]string, 0, len(r.Strings))
	for _, s := range r.Strings {
		quoted = append(quoted, strconv.Quote(s))
	}
	return strings.Join(quoted, " ")
}

// ParseTXTRData parses TXT record RDATA from wire format.
func ParseTXTRData(msg []byte, off *int, rdlen int) (*TXTRecord, error) {
	end := *off + rdlen
	if end > len(msg) {
		return nil, fmt.Errorf("%w: unexpected EOF reading TXT record (RFC 1035 §3.3.14)", ErrWire)
	}
	var strs []string
	for *off < end {
		l := int(msg[*off])
		*off++
		if *off+l > end {
			return nil, fmt.Errorf("%w: TXT character-string overruns RDATA (RFC 1035 §3.3.14)", ErrWire)
		}
		strs = append(strs, string(msg[*off:*off+l]))
		*off += l
	}
	return &TXTRecord{Strings: strs}, nil
}
