// Package resolver implements the DNS resolution capability for lookups.
//
// The client queries a fixed pair of public nameservers in order over UDP,
// with per-attempt deadlines, bounded retries on timeout, and TCP fallback
// when a response is truncated. System nameserver discovery is deliberately
// not used; the nameserver list is a compile-time constant.
//
// Outcomes are classified into the sentinel errors declared by the lookup
// package (lookup.ErrNoRecords, lookup.ErrNXDomain, lookup.ErrTimeout) so
// the orchestrator can convert them to per-field error values.
package resolver

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/jroosing/domaininfo/internal/dnswire"
	"github.com/jroosing/domaininfo/internal/helpers"
	"github.com/jroosing/domaininfo/internal/lookup"
)

// Default client configuration.
const (
	DefaultUDPTimeout = 3 * time.Second
	DefaultTCPTimeout = 5 * time.Second
	DefaultMaxRetries = 2 // Retries per nameserver on timeout

	recvSize = 4096 // UDP receive buffer size
)

// Nameservers are the fixed public resolvers, queried in this order.
var Nameservers = []string{"8.8.8.8", "1.1.1.1"}

// queryTypes maps the lookup record-type tags to wire types.
var queryTypes = map[string]dnswire.RecordType{
	"A":     dnswire.TypeA,
	"NS":    dnswire.TypeNS,
	"CNAME": dnswire.TypeCNAME,
	"MX":    dnswire.TypeMX,
	"TXT":   dnswire.TypeTXT,
}

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	UDPTimeout  time.Duration
	TCPTimeout  time.Duration
	MaxRetries  int
	TCPFallback bool
}

// Client resolves DNS record types against the fixed nameservers.
// It implements lookup.RecordSource and is safe for concurrent use.
type Client struct {
	nameservers []string
	udpTimeout  time.Duration
	tcpTimeout  time.Duration
	maxRetries  int
	tcpFallback bool

	// exchange performs one query attempt against one nameserver.
	// Swapped out in tests.
	exchange func(ctx context.Context, server string, req []byte) ([]byte, error)
}

// New creates a Client with the given options.
func New(opts Options) *Client {
	if opts.UDPTimeout <= 0 {
		opts.UDPTimeout = DefaultUDPTimeout
	}
	if opts.TCPTimeout <= 0 {
		opts.TCPTimeout = DefaultTCPTimeout
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	c := &Client{
		nameservers: Nameservers,
		udpTimeout:  opts.UDPTimeout,
		tcpTimeout:  opts.TCPTimeout,
		maxRetries:  opts.MaxRetries,
		tcpFallback: opts.TCPFallback,
	}
	c.exchange = c.exchangeUDP
	return c
}

// Resolve issues one DNS query for the given record type and returns the
// answers in presentation format, in the order the nameserver returned them.
func (c *Client) Resolve(ctx context.Context, domain, recordType string) ([]string, error) {
	qtype, ok := queryTypes[recordType]
	if !ok {
		return nil, fmt.Errorf("unsupported record type %q", recordType)
	}

	req := dnswire.NewQuery(domain, qtype)
	reqBytes, err := req.Marshal()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	var lastErr error
	for _, server := range c.nameservers {
		resp, err := c.queryServer(ctx, server, reqBytes)
		if err != nil {
			lastErr = err
			continue
		}
		// A parseable answer from any nameserver is final; NXDOMAIN or an
		// empty answer section is a property of the domain, not the server.
		return c.classify(req, resp, domain, qtype)
	}

	if isTimeout(lastErr) {
		return nil, fmt.Errorf("all nameservers timed out: %w", lookup.ErrTimeout)
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, errors.New("no nameservers configured")
}

// queryServer sends the query to a single nameserver with retries.
// Only timeouts are retried; other transport errors fail over immediately.
func (c *Client) queryServer(ctx context.Context, server string, req []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		resp, err := c.exchange(ctx, server, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isTimeout(err) {
			return nil, err
		}
	}
	return nil, lastErr
}

// exchangeUDP performs one UDP query attempt, falling back to TCP when the
// response is truncated and TCP fallback is enabled.
func (c *Client) exchangeUDP(ctx context.Context, server string, req []byte) ([]byte, error) {
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(server, "53"))
	if err != nil {
		return nil, err
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	// Deadline from timeout or context, whichever is sooner
	deadline := time.Now().Add(c.udpTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	_ = conn.SetDeadline(deadline)

	if _, err := conn.Write(req); err != nil {
		return nil, err
	}

	buf := make([]byte, recvSize)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, err
	}
	resp := buf[:n:n]

	if c.tcpFallback && dnswire.IsTruncated(resp) {
		return c.exchangeTCP(ctx, server, req)
	}
	return resp, nil
}

// exchangeTCP sends a DNS query over TCP with length-prefix framing
// (RFC 1035 Section 4.2.2: a 2-byte big-endian length precedes the message).
func (c *Client) exchangeTCP(ctx context.Context, server string, req []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.tcpTimeout)
	defer cancel()

	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(server, "53"))
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var prefix [2]byte
	binary.BigEndian.PutUint16(prefix[:], helpers.ClampIntToUint16(len(req)))
	if _, err := conn.Write(prefix[:]); err != nil {
		return nil, err
	}
	if _, err := conn.Write(req); err != nil {
		return nil, err
	}

	if _, err := io.ReadFull(conn, prefix[:]); err != nil {
		return nil, err
	}
	respLen := int(binary.BigEndian.Uint16(prefix[:]))
	if respLen <= 0 {
		return nil, fmt.Errorf("TCP response length invalid: %d", respLen)
	}

	resp := make([]byte, respLen)
	if _, err := io.ReadFull(conn, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// classify validates and decodes a response, applying the lookup error
// taxonomy. Answers are filtered to the queried type: an A query whose
// answer section only holds the CNAME chain counts as no answer.
func (c *Client) classify(req dnswire.Packet, respBytes []byte, domain string, qtype dnswire.RecordType) ([]string, error) {
	resp, err := dnswire.ParsePacket(respBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if err := validateResponse(req, resp); err != nil {
		return nil, err
	}

	switch rcode := resp.Header.RCode(); rcode {
	case dnswire.RCodeNoError:
		// fall through to answer extraction
	case dnswire.RCodeNXDomain:
		return nil, fmt.Errorf("%q: %w", domain, lookup.ErrNXDomain)
	default:
		return nil, fmt.Errorf("nameserver returned rcode %d", rcode)
	}

	values := make([]string, 0, len(resp.Answers))
	for _, rr := range resp.Answers {
		if rr.Type() != qtype {
			continue
		}
		values = append(values, rr.Text())
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%q %s: %w", domain, qtype, lookup.ErrNoRecords)
	}
	return values, nil
}

// validateResponse checks that a response actually answers our query:
// matching transaction ID, QR flag set, and matching question. Responses
// failing these checks are spoofed, stale, or corrupt.
func validateResponse(req dnswire.Packet, resp dnswire.Packet) error {
	if resp.Header.ID != req.Header.ID {
		return fmt.Errorf("transaction ID mismatch: expected %d, got %d", req.Header.ID, resp.Header.ID)
	}
	if !resp.Header.IsResponse() {
		return errors.New("packet is not a response")
	}
	if len(resp.Questions) == 0 {
		return errors.New("response has no question section")
	}

	reqQ := req.Questions[0]
	respQ := resp.Questions[0]
	if dnswire.NormalizeName(reqQ.Name) != dnswire.NormalizeName(respQ.Name) {
		return fmt.Errorf("QNAME mismatch: expected %s, got %s", reqQ.Name, respQ.Name)
	}
	if reqQ.Type != respQ.Type {
		return fmt.Errorf("QTYPE mismatch: expected %d, got %d", reqQ.Type, respQ.Type)
	}
	if reqQ.Class != respQ.Class {
		return fmt.Errorf("QCLASS mismatch: expected %d, got %d", reqQ.Class, respQ.Class)
	}
	return nil
}

// isTimeout reports whether an error is a deadline or timeout error.
func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
