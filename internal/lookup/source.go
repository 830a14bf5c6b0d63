package lookup

import (
	"context"
	"errors"
)

// RawRegistration is a WHOIS record as the upstream returns it, before
// normalization. Field shapes vary between registrars; see values.go.
type RawRegistration struct {
	Registrar   string
	Created     DateValue
	Expires     DateValue
	Status      Text
	Nameservers []string
}

// RegistrationSource resolves a domain's WHOIS registration record.
// Implementations report recognized protocol-level failures (no record,
// rate limiting, malformed responses) as *WhoisError; any other error is
// treated as unexpected.
type RegistrationSource interface {
	Resolve(ctx context.Context, domain string) (RawRegistration, error)
}

// RecordSource resolves one DNS record type for a domain into its textual
// record values. recordType is one of RecordTypes. Implementations classify
// failures with the sentinel errors below; anything else is reported as-is.
type RecordSource interface {
	Resolve(ctx context.Context, domain, recordType string) ([]string, error)
}

// WhoisError marks a failure reported by the WHOIS service itself, as
// opposed to an unexpected transport or parsing fault.
type WhoisError struct {
	Reason string
}

func (e *WhoisError) Error() string { return e.Reason }

// DNS failure classification honored by RecordSource implementations.
var (
	// ErrNoRecords: the domain exists but has no records of the requested type.
	ErrNoRecords = errors.New("no records of requested type")

	// ErrNXDomain: the domain does not exist at all.
	ErrNXDomain = errors.New("domain does not exist")

	// ErrTimeout: the query exceeded its time budget.
	ErrTimeout = errors.New("query timed out")
)
