package lookup

import (
	"encoding/json"
)

// RecordTypes is the fixed set of DNS record types every lookup resolves,
// in display order.
var RecordTypes = []string{"A", "NS", "CNAME", "MX", "TXT"}

// ErrorRecord is the uniform failure representation used wherever a success
// value is otherwise expected. Consumers must check shape before use.
type ErrorRecord struct {
	Message string `json:"error"`
}

// RegistrationRecord holds the normalized WHOIS fields for a domain.
// It is immutable once produced; a later fetch supersedes it entirely.
type RegistrationRecord struct {
	Registrar   string   `json:"registrar,omitempty"`
	CreatedDate Text     `json:"created_date"`
	ExpiryDate  Text     `json:"expiry_date"`
	Status      Text     `json:"status"`
	Nameservers []string `json:"nameservers,omitempty"`
}

// Registration is the WHOIS half of a lookup outcome: exactly one of Record
// or Err is set.
type Registration struct {
	Record *RegistrationRecord
	Err    *ErrorRecord
}

// OK reports whether the registration fetch succeeded.
func (r Registration) OK() bool { return r.Err == nil }

// MarshalJSON emits either the record object or the error object.
func (r Registration) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		return json.Marshal(r.Err)
	}
	return json.Marshal(r.Record)
}

// RecordResult is one DNS record type's outcome: an ordered sequence of
// textual record values, or an error message. Exactly one side is set.
type RecordResult struct {
	Values []string
	Err    string
}

// OK reports whether the record fetch succeeded.
func (r RecordResult) OK() bool { return r.Err == "" }

// MarshalJSON emits either the value array or the bare error string,
// mirroring the per-key shape consumers render directly.
func (r RecordResult) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(r.Err)
	}
	if r.Values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Values)
}

// RecordSet maps each record type in RecordTypes to its outcome. All five
// keys are always present; entries are independent of each other.
type RecordSet map[string]RecordResult

// Result is one lookup invocation's complete outcome. It is immutable and
// shares no state with other invocations.
type Result struct {
	Domain       string       `json:"domain"`
	Registration Registration `json:"whois"`
	Records      RecordSet    `json:"dns"`
}
