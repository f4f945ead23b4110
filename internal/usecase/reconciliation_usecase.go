package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase/interfaces"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var ErrPartialScan = errors.New("reconciliation scan incomplete")

// Scan limits for UI consumption.
const (
	DefaultScanLimit = 500
	MaxScanLimit     = 5000
)

// UnconvertedRequest is one scan result row.
type UnconvertedRequest struct {
	Number string
	Family entities.Family
}

// IReconciliationUseCase computes "quote requests that do not yet have a
// quote" across every family store.

type IReconciliationUseCase interface {
	FindUnconverted(ctx context.Context, pattern string, limit int) ([]UnconvertedRequest, error)
}

type ReconciliationUseCase struct {
	requests interfaces.IQuoteRequestRepository
	quotes   interfaces.IIssuedQuoteRepository
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(requests interfaces.IQuoteRequestRepository, quotes interfaces.IIssuedQuoteRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{requests: requests, quotes: quotes}
}

// FindUnconverted walks every family store, diffs the result against issued
// quotes and returns a deterministic, deduplicated, sorted list.
//
// The quote match is two-path (source request id OR denormalized request
// number) because historical quotes sometimes recorded only the number.
// Deduplication by number collapses requests that ended up in more than one
// family store during data migration; the first occurrence wins.
//
// Any family query failure aborts the whole scan: a partial list would show
// already-converted requests as still pending.
func (u *ReconciliationUseCase) FindUnconverted(ctx context.Context, pattern string, limit int) ([]UnconvertedRequest, error) {
	if limit <= 0 {
		limit = DefaultScanLimit
	}
	if limit > MaxScanLimit {
		limit = MaxScanLimit
	}
	pattern = strings.TrimSpace(pattern)

	var all []entities.NumberRef
	for _, family := range entities.Families {
		refs, err := u.requests.ListNumbers(ctx, family, pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: family %s: %v", ErrPartialScan, family, err)
		}
		all = append(all, refs...)
	}
	if len(all) == 0 {
		return []UnconvertedRequest{}, nil
	}

	ids := make([]string, 0, len(all))
	numbers := make([]string, 0, len(all))
	for _, r := range all {
		if r.ID != "" {
			ids = append(ids, r.ID)
		}
		if r.Number != "" {
			numbers = append(numbers, r.Number)
		}
	}

	conversions, err := u.quotes.ListConversions(ctx, ids, numbers)
	if err != nil {
		return nil, fmt.Errorf("%w: issued quotes: %v", ErrPartialScan, err)
	}

	doneIDs := make(map[string]struct{}, len(conversions))
	doneNumbers := make(map[string]struct{}, len(conversions))
	for _, c := range conversions {
		if c.SourceRequestID != "" {
			doneIDs[c.SourceRequestID] = struct{}{}
		}
		if c.SourceRequestNumber != "" {
			doneNumbers[c.SourceRequestNumber] = struct{}{}
		}
	}

	seen := make(map[string]struct{}, len(all))
	pending := make([]UnconvertedRequest, 0, len(all))
	for _, r := range all {
		if r.Number == "" {
			continue
		}
		if _, ok := doneIDs[r.ID]; ok {
			continue
		}
		if _, ok := doneNumbers[r.Number]; ok {
			continue
		}
		if _, ok := seen[r.Number]; ok {
			continue
		}
		seen[r.Number] = struct{}{}
		pending = append(pending, UnconvertedRequest{Number: r.Number, Family: r.Family})
	}

	// Locale-aware ordering, stable for UI pagination.
	coll := collate.New(language.French)
	coll.Sort(byNumber(pending))

	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

// byNumber adapts the result slice to the collator's sort interface.
type byNumber []UnconvertedRequest

func (s byNumber) Len() int           { return len(s) }
func (s byNumber) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s byNumber) Bytes(i int) []byte { return []byte(s[i].Number) }
