package lookup

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
)

// ErrInvalidDomain is returned by Lookup for syntactically invalid input.
// No network call is made in that case.
var ErrInvalidDomain = errors.New("invalid domain")

// Service orchestrates a lookup: validate, fan out to the WHOIS and DNS
// sources, join, assemble. Invocations are fully independent; the Service
// holds no per-lookup state and is safe for concurrent use.
type Service struct {
	registration RegistrationSource
	records      RecordSource
	logger       *slog.Logger
}

// NewService creates a Service backed by the given sources.
// A nil logger falls back to slog.Default().
func NewService(registration RegistrationSource, records RecordSource, logger *slog.Logger) *Service {
	if registration == nil {
		panic("lookup.NewService: registration source is nil")
	}
	if records == nil {
		panic("lookup.NewService: record source is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{registration: registration, records: records, logger: logger}
}

// Lookup resolves metadata for the given raw domain string.
//
// Leading and trailing whitespace is ignored. Invalid syntax returns
// ErrInvalidDomain before any fetch. Otherwise the WHOIS fetch and the five
// DNS record-type fetches run concurrently, all complete (each bounded by
// its source's own timeout), and exactly one Result is assembled. Per-field
// failures surface inside the Result, never as an error here.
func (s *Service) Lookup(ctx context.Context, raw string) (Result, error) {
	domain := strings.TrimSpace(raw)
	if !ValidDomain(domain) {
		return Result{}, ErrInvalidDomain
	}

	s.logger.Debug("lookup started", "domain", domain)

	var (
		wg           sync.WaitGroup
		registration Registration
		records      RecordSet
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		registration = s.fetchRegistration(ctx, domain)
	}()
	go func() {
		defer wg.Done()
		records = s.FetchRecords(ctx, domain)
	}()
	wg.Wait()

	failed := 0
	for _, r := range records {
		if !r.OK() {
			failed++
		}
	}
	s.logger.Info("lookup finished",
		"domain", domain,
		"whois_ok", registration.OK(),
		"dns_failed", failed,
	)

	return Result{Domain: domain, Registration: registration, Records: records}, nil
}
