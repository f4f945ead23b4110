package usecase

import "fmt"

// Document number prefixes. Quote requests and issued quotes run on
// independent yearly sequences.
const (
	PrefixQuoteRequest = "DDV"
	PrefixIssuedQuote  = "DV"
)

// RequestCounterKey scopes the quote-request sequence to a calendar year.
func RequestCounterKey(year int) string {
	return fmt.Sprintf("demande:%d", year)
}

// QuoteCounterKey scopes the issued-quote sequence to a calendar year.
func QuoteCounterKey(year int) string {
	return fmt.Sprintf("devis:%d", year)
}

// FormatNumber produces the canonical display code
// "<PREFIX><2-digit year><5-digit zero-padded sequence>", e.g.
// FormatNumber("DDV", 2025, 1) == "DDV2500001".
//
// The format must stay bit-exact: numbers already issued live in the
// database and in customers' inboxes. Past 99999 the numeric field widens to
// six digits and more; it never truncates.
func FormatNumber(prefix string, year, value int) string {
	return fmt.Sprintf("%s%02d%05d", prefix, year%100, value)
}
