// Package whois resolves domain registration records by delegating to the
// likexian WHOIS client and parser, and converts the parsed result into the
// raw registration shape the lookup package normalizes.
package whois

import (
	"context"
	"errors"
	"slices"
	"time"

	whoisclient "github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"

	"github.com/jroosing/domaininfo/internal/lookup"
)

// DefaultTimeout bounds a single WHOIS query, including registrar referrals.
const DefaultTimeout = 10 * time.Second

// dateLayouts covers the date formats registrars put in WHOIS responses when
// the parser could not produce a typed timestamp itself.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02 15:04:05",
	"02/01/2006",
}

// Source queries WHOIS for registration records.
// It implements lookup.RegistrationSource and is safe for concurrent use.
type Source struct {
	client *whoisclient.Client

	// query performs the raw WHOIS exchange. Swapped out in tests.
	query func(ctx context.Context, domain string) (string, error)
}

// New creates a Source with the given query timeout.
func New(timeout time.Duration) *Source {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := whoisclient.NewClient()
	c.SetTimeout(timeout)
	s := &Source{client: c}
	s.query = s.queryWhois
	return s
}

// Resolve fetches and parses the WHOIS record for a domain.
//
// Failures the WHOIS service itself reports (no matching record, rate
// limiting, reserved or premium names) come back as *lookup.WhoisError.
// Transport and other faults are returned unwrapped.
func (s *Source) Resolve(ctx context.Context, domain string) (lookup.RawRegistration, error) {
	text, err := s.query(ctx, domain)
	if err != nil {
		return lookup.RawRegistration{}, err
	}

	parsed, err := whoisparser.Parse(text)
	if err != nil {
		return lookup.RawRegistration{}, &lookup.WhoisError{Reason: reasonFor(err)}
	}
	return fromParsed(parsed), nil
}

// queryWhois runs the blocking WHOIS exchange under the caller's context.
// The client enforces its own dial and read timeouts; the goroutine hand-off
// lets callers abandon a query early without waiting them out.
func (s *Source) queryWhois(ctx context.Context, domain string) (string, error) {
	type answer struct {
		text string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		text, err := s.client.Whois(domain)
		ch <- answer{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a := <-ch:
		return a.text, a.err
	}
}

// reasonFor renders a parser failure as a human-readable reason.
func reasonFor(err error) string {
	switch {
	case errors.Is(err, whoisparser.ErrNotFoundDomain):
		return "no matching record for domain"
	case errors.Is(err, whoisparser.ErrDomainLimitExceed):
		return "query rate limit exceeded"
	case errors.Is(err, whoisparser.ErrDomainDataInvalid):
		return "response data invalid"
	case errors.Is(err, whoisparser.ErrReservedDomain):
		return "domain is reserved by the registry"
	case errors.Is(err, whoisparser.ErrPremiumDomain):
		return "domain is a premium name without registration"
	case errors.Is(err, whoisparser.ErrBlockedDomain):
		return "domain is blocked by the registry"
	default:
		return err.Error()
	}
}

// fromParsed converts a parsed WHOIS response to the raw registration shape.
func fromParsed(info whoisparser.WhoisInfo) lookup.RawRegistration {
	var raw lookup.RawRegistration
	if info.Registrar != nil {
		raw.Registrar = info.Registrar.Name
	}
	if d := info.Domain; d != nil {
		raw.Created = dateField(d.CreatedDateInTime, d.CreatedDate)
		raw.Expires = dateField(d.ExpirationDateInTime, d.ExpirationDate)
		raw.Status = statusField(d.Status)
		raw.Nameservers = slices.Clone(d.NameServers)
	}
	return raw
}

// dateField prefers the parser's typed timestamp, falling back to parsing
// the raw string with the known registrar layouts.
func dateField(typed *time.Time, text string) lookup.DateValue {
	if typed != nil {
		return lookup.DateOf(*typed)
	}
	if text == "" {
		return lookup.DateValue{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return lookup.DateOf(t)
		}
	}
	return lookup.DateValue{}
}

// statusField carries the shape distinction through: a single EPP status is
// a scalar, multiple statuses are a sequence, none at all is absent.
func statusField(statuses []string) lookup.Text {
	switch len(statuses) {
	case 0:
		return lookup.Text{}
	case 1:
		return lookup.TextOf(statuses[0])
	default:
		return lookup.TextList(slices.Clone(statuses))
	}
}
