// Package lookup resolves domain-name metadata: the WHOIS registration
// record and a fixed set of DNS record types, normalized into a uniform
// display-ready shape.
//
// Error-As-Value Contract:
//
// Every sub-fetch converts its failure into data at the fetcher boundary
// (an ErrorRecord for WHOIS, an error string per DNS record type). A failure
// in one record type or in WHOIS never suppresses or corrupts data from the
// other fetches, so a Result can always be assembled, even when every
// sub-fetch fails. The only error Lookup itself returns is ErrInvalidDomain,
// raised before any network call.
//
// Collaborators:
//
// The package performs no network I/O of its own. WHOIS resolution and DNS
// resolution are consumed through the RegistrationSource and RecordSource
// interfaces; see internal/whois and internal/resolver for the production
// implementations.
//
// Concurrency:
//
// Lookup fans out one WHOIS fetch and one DNS fetch per record type, joins
// all of them, and only then assembles the Result. No goroutine outlives the
// call, and invocations share no state.
package lookup
