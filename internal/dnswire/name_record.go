package dnswire

import "fmt"

// NameRecord represents DNS records whose RDATA is a single domain name
// (NS, CNAME).
type NameRecord struct {
	H      RRHeader
	T      RecordType
	Target string
}

// NewNameRecord creates a new name-valued record (NS or CNAME).
func NewNameRecord(h RRHeader, rt RecordType, target string) *NameRecord {
	return &NameRecord{H: h, T: rt, Target: target}
}

// Type returns the record type (NS or CNAME).
func (r *NameRecord) Type() RecordType { return r.T }

// Header returns the record header.
func (r *NameRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *NameRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData marshals the target name to wire format.
func (r *NameRecord) MarshalRData() ([]byte, error) {
	return EncodeName(r.Target)
}

// Text returns the target name in absolute form ("ns1.example.com.").
func (r *NameRecord) Text() string { return absoluteName(r.Target) }

// ParseNameRData parses NS or CNAME record RDATA from wire format.
func ParseNameRData(msg []byte, off *int, start, rdlen int, rt RecordType) (*NameRecord, error) {
	n, err := DecodeName(msg, off)
	if err != nil {
		return nil, err
	}
	if *off-start != rdlen {
		return nil, fmt.Errorf("%w: name record RDATA length mismatch (RFC 1035 §3.3)", ErrWire)
	}
	return &NameRecord{Target: n, T: rt}, nil
}
