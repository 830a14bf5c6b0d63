package whois

import (
	"context"
	"errors"
	"testing"
	"time"

	whoisparser "github.com/likexian/whois-parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/domaininfo/internal/lookup"
)

func TestFromParsed_FullRecord(t *testing.T) {
	created := time.Date(1997, 9, 15, 4, 0, 0, 0, time.UTC)
	expires := time.Date(2028, 9, 14, 4, 0, 0, 0, time.UTC)

	raw := fromParsed(whoisparser.WhoisInfo{
		Registrar: &whoisparser.Contact{Name: "MarkMonitor Inc."},
		Domain: &whoisparser.Domain{
			Domain:               "google.com",
			Status:               []string{"clientDeleteProhibited", "clientTransferProhibited"},
			NameServers:          []string{"ns1.google.com", "ns2.google.com"},
			CreatedDateInTime:    &created,
			ExpirationDateInTime: &expires,
		},
	})

	assert.Equal(t, "MarkMonitor Inc.", raw.Registrar)
	assert.Equal(t, []string{"ns1.google.com", "ns2.google.com"}, raw.Nameservers)

	got, ok := raw.Created.Scalar()
	require.True(t, ok)
	assert.Equal(t, created, got)

	got, ok = raw.Expires.Scalar()
	require.True(t, ok)
	assert.Equal(t, expires, got)

	statuses, ok := raw.Status.Sequence()
	require.True(t, ok)
	assert.Equal(t, []string{"clientDeleteProhibited", "clientTransferProhibited"}, statuses)
}

func TestFromParsed_SingleStatusIsScalar(t *testing.T) {
	raw := fromParsed(whoisparser.WhoisInfo{
		Domain: &whoisparser.Domain{Status: []string{"ok"}},
	})

	status, ok := raw.Status.Scalar()
	require.True(t, ok)
	assert.Equal(t, "ok", status)
}

func TestFromParsed_EmptyInfo(t *testing.T) {
	raw := fromParsed(whoisparser.WhoisInfo{})

	assert.Empty(t, raw.Registrar)
	assert.Nil(t, raw.Nameservers)
	assert.True(t, raw.Created.Absent())
	assert.True(t, raw.Expires.Absent())
	assert.True(t, raw.Status.Absent())
}

func TestDateField_FallsBackToStringParsing(t *testing.T) {
	tests := []struct {
		text string
		want time.Time
	}{
		{"2019-05-13T04:00:00Z", time.Date(2019, 5, 13, 4, 0, 0, 0, time.UTC)},
		{"2019-05-13 04:00:00", time.Date(2019, 5, 13, 4, 0, 0, 0, time.UTC)},
		{"2019-05-13", time.Date(2019, 5, 13, 0, 0, 0, 0, time.UTC)},
		{"13-May-2019", time.Date(2019, 5, 13, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := dateField(nil, tt.text).Scalar()
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestDateField_Unparseable(t *testing.T) {
	assert.True(t, dateField(nil, "sometime in spring").Absent())
	assert.True(t, dateField(nil, "").Absent())
}

func TestReasonFor(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{whoisparser.ErrNotFoundDomain, "no matching record for domain"},
		{whoisparser.ErrDomainLimitExceed, "query rate limit exceeded"},
		{whoisparser.ErrReservedDomain, "domain is reserved by the registry"},
		{errors.New("something else"), "something else"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, reasonFor(tt.err))
	}
}

func TestResolve_NotFoundBecomesWhoisError(t *testing.T) {
	s := New(0)
	s.query = func(context.Context, string) (string, error) {
		return `No match for domain "NOSUCHDOMAIN.COM".`, nil
	}

	_, err := s.Resolve(context.Background(), "nosuchdomain.com")
	var werr *lookup.WhoisError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "no matching record for domain", werr.Reason)
}

func TestResolve_TransportErrorPassesThrough(t *testing.T) {
	s := New(0)
	s.query = func(context.Context, string) (string, error) {
		return "", errors.New("dial tcp: connection refused")
	}

	_, err := s.Resolve(context.Background(), "example.com")
	require.Error(t, err)
	var werr *lookup.WhoisError
	assert.False(t, errors.As(err, &werr))
}

func TestResolve_ContextCanceled(t *testing.T) {
	s := New(0)
	s.query = func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Resolve(ctx, "example.com")
	assert.ErrorIs(t, err, context.Canceled)
}
