package lookup

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// fetchRegistration performs one WHOIS fetch and converts the outcome to
// data. All failure is returned as an ErrorRecord, never as a live error.
func (s *Service) fetchRegistration(ctx context.Context, domain string) Registration {
	raw, err := s.registration.Resolve(ctx, domain)
	if err != nil {
		var we *WhoisError
		if errors.As(err, &we) {
			return Registration{Err: &ErrorRecord{Message: "WHOIS lookup failed: " + we.Reason}}
		}
		return Registration{Err: &ErrorRecord{Message: fmt.Sprintf("Unexpected error fetching WHOIS: %v", err)}}
	}

	rec := &RegistrationRecord{
		Registrar:   raw.Registrar,
		CreatedDate: FormatDate(raw.Created),
		ExpiryDate:  FormatDate(raw.Expires),
		Status:      CleanStatus(raw.Status),
	}
	if len(raw.Nameservers) > 0 {
		rec.Nameservers = slices.Clone(raw.Nameservers)
	}
	return Registration{Record: rec}
}

// fetchRecord performs one DNS fetch for a single record type and converts
// the outcome to data.
func (s *Service) fetchRecord(ctx context.Context, recordType, domain string) RecordResult {
	values, err := s.records.Resolve(ctx, domain, recordType)
	switch {
	case err == nil:
		return RecordResult{Values: values}
	case errors.Is(err, ErrNoRecords):
		return RecordResult{Err: fmt.Sprintf("No %s records found.", recordType)}
	case errors.Is(err, ErrNXDomain):
		return RecordResult{Err: fmt.Sprintf("Domain '%s' does not exist.", domain)}
	case errors.Is(err, ErrTimeout):
		return RecordResult{Err: "DNS query timed out. Check your network."}
	default:
		return RecordResult{Err: fmt.Sprintf("Error retrieving %s records: %v", recordType, err)}
	}
}

// FetchRecords resolves all record types in RecordTypes concurrently and
// assembles the per-type outcomes. The returned set always covers all five
// keys; one type's failure never blocks or cancels the others.
func (s *Service) FetchRecords(ctx context.Context, domain string) RecordSet {
	results := make([]RecordResult, len(RecordTypes))

	var wg sync.WaitGroup
	for i, rt := range RecordTypes {
		wg.Add(1)
		go func(i int, rt string) {
			defer wg.Done()
			results[i] = s.fetchRecord(ctx, rt, domain)
		}(i, rt)
	}
	wg.Wait()

	set := make(RecordSet, len(RecordTypes))
	for i, rt := range RecordTypes {
		set[rt] = results[i]
	}
	return set
}
