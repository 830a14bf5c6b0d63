package lookup

import "strings"

// displayDateFormat renders dates as "Jan 05, 2024".
const displayDateFormat = "Jan 02, 2006"

// FormatDate normalizes a WHOIS date field into display-ready text.
//
// A sequence maps element-wise: every non-zero timestamp becomes a formatted
// string, zero timestamps are silently dropped, and the (possibly empty)
// sequence shape is preserved. A single timestamp becomes one formatted
// string; a zero timestamp or absent input yields absent. Total: never fails.
func FormatDate(v DateValue) Text {
	if dates, ok := v.Sequence(); ok {
		out := make([]string, 0, len(dates))
		for _, d := range dates {
			if d.IsZero() {
				continue
			}
			out = append(out, d.Format(displayDateFormat))
		}
		return TextList(out)
	}
	if d, ok := v.Scalar(); ok && !d.IsZero() {
		return TextOf(d.Format(displayDateFormat))
	}
	return Text{}
}

// CleanStatus normalizes a WHOIS status field to bare status tokens.
//
// Registrars append URLs after the status token ("clientTransferProhibited
// https://icann.org/epp#..."); only the first whitespace-delimited token is
// kept. Sequences map element-wise with tokenless entries dropped; a single
// string yields its first token; a tokenless string or absent input yields
// absent. Total: never fails.
func CleanStatus(v Text) Text {
	if vals, ok := v.Sequence(); ok {
		out := make([]string, 0, len(vals))
		for _, s := range vals {
			if fields := strings.Fields(s); len(fields) > 0 {
				out = append(out, fields[0])
			}
		}
		return TextList(out)
	}
	if s, ok := v.Scalar(); ok {
		if fields := strings.Fields(s); len(fields) > 0 {
			return TextOf(fields[0])
		}
	}
	return Text{}
}
