package usecase

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		name   string
		prefix string
		year   int
		value  int
		want   string
	}{
		{"first request of 2025", PrefixQuoteRequest, 2025, 1, "DDV2500001"},
		{"last padded value", PrefixQuoteRequest, 2025, 99999, "DDV2599999"},
		{"field widens past padding", PrefixQuoteRequest, 2025, 100000, "DDV25100000"},
		{"quote prefix", PrefixIssuedQuote, 2025, 42, "DV2500042"},
		{"year wraps to two digits", PrefixQuoteRequest, 2031, 7, "DDV3100007"},
		{"single digit year component", PrefixIssuedQuote, 2203, 1, "DV0300001"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatNumber(tc.prefix, tc.year, tc.value); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestCounterKeys(t *testing.T) {
	if got := RequestCounterKey(2025); got != "demande:2025" {
		t.Fatalf("unexpected request counter key %s", got)
	}
	if got := QuoteCounterKey(2025); got != "devis:2025" {
		t.Fatalf("unexpected quote counter key %s", got)
	}
	if RequestCounterKey(2025) == RequestCounterKey(2026) {
		t.Fatal("expected distinct keys per year")
	}
}
