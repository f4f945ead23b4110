package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrIssuedQuoteNotFound = errors.New("issued quote not found")
	ErrArticleNotFound     = errors.New("article not found")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidRequestRef   = errors.New("invalid request reference")
)

// FODEC levy applied to every quote, in percent.
const defaultFodecPct = 1.0

// CreateQuoteCommand converts a quote request into a priced quote.
type CreateQuoteCommand struct {
	RequestID   string
	ArticleID   string
	Quantity    float64
	DiscountPct float64
	VATPct      float64
	SendEmail   bool
}

// CreateQuoteResult reports the created quote and whether the customer email
// went out (the quote itself is committed either way).
type CreateQuoteResult struct {
	Quote     entities.IssuedQuote
	EmailSent bool
}

// IIssuedQuoteUseCase exposes staff-side quote operations.

type IIssuedQuoteUseCase interface {
	CreateFromRequest(ctx context.Context, cmd CreateQuoteCommand) (CreateQuoteResult, error)
	GetBySource(ctx context.Context, requestID, requestNumber string) (entities.IssuedQuote, error)
	PreviewNextNumber(ctx context.Context) (string, error)
}

type IssuedQuoteUseCase struct {
	quotes   interfaces.IIssuedQuoteRepository
	requests interfaces.IQuoteRequestRepository
	articles interfaces.IArticleRepository
	users    interfaces.IUserRepository
	counters interfaces.ICounterRepository
	renderer interfaces.IDocumentRenderer
	notifier interfaces.INotifier

	settings IssuanceSettings
	log      *zap.Logger
	now      func() time.Time
}

var _ IIssuedQuoteUseCase = (*IssuedQuoteUseCase)(nil)

func NewIssuedQuoteUseCase(
	quotes interfaces.IIssuedQuoteRepository,
	requests interfaces.IQuoteRequestRepository,
	articles interfaces.IArticleRepository,
	users interfaces.IUserRepository,
	counters interfaces.ICounterRepository,
	renderer interfaces.IDocumentRenderer,
	notifier interfaces.INotifier,
	settings IssuanceSettings,
	log *zap.Logger,
) *IssuedQuoteUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &IssuedQuoteUseCase{
		quotes:   quotes,
		requests: requests,
		articles: articles,
		users:    users,
		counters: counters,
		renderer: renderer,
		notifier: notifier,
		settings: settings.withDefaults(),
		log:      log,
		now:      time.Now,
	}
}

// round3 rounds monetary amounts to the millime, the precision quotes are
// issued at.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// ComputeQuoteTotals derives the document totals from its lines: net HT
// after line discounts, VAT split by rate (only 7/13/19 are taxed), FODEC on
// the net, fiscal stamp, TTC.
func ComputeQuoteTotals(lines []entities.QuoteLine, fodecPct, stamp float64) entities.QuoteTotals {
	var totalHT, netHT, vat float64
	for _, l := range lines {
		gross := l.Quantity * l.UnitPriceHT
		net := gross * (1 - l.DiscountPct/100)
		totalHT += gross
		netHT += net
		switch l.VATPct {
		case 7, 13, 19:
			vat += net * l.VATPct / 100
		}
	}
	fodec := round3(netHT * fodecPct / 100)
	netHT = round3(netHT)
	vat = round3(vat)
	return entities.QuoteTotals{
		TotalHT:  round3(totalHT),
		NetHT:    netHT,
		VAT:      vat,
		FodecPct: fodecPct,
		Fodec:    fodec,
		Stamp:    stamp,
		TotalTTC: round3(netHT + vat + fodec + stamp),
	}
}

// CreateFromRequest probes every family table for the request, prices one
// line from the referenced article, allocates the next DV number and commits
// the quote. The PDF and the customer email happen on the request path here:
// this is a staff operation where the caller wants the document back.
func (u *IssuedQuoteUseCase) CreateFromRequest(ctx context.Context, cmd CreateQuoteCommand) (CreateQuoteResult, error) {
	requestID := strings.TrimSpace(cmd.RequestID)
	if requestID == "" {
		return CreateQuoteResult{}, ErrInvalidRequestRef
	}

	request, err := u.requests.FindAnyByID(ctx, requestID)
	if err != nil {
		return CreateQuoteResult{}, err
	}
	if request.ID == "" {
		return CreateQuoteResult{}, ErrQuoteRequestNotFound
	}

	article, err := u.articles.GetByID(ctx, strings.TrimSpace(cmd.ArticleID))
	if err != nil {
		return CreateQuoteResult{}, err
	}
	if article.ID == "" {
		return CreateQuoteResult{}, ErrArticleNotFound
	}

	qty := cmd.Quantity
	if qty <= 0 {
		return CreateQuoteResult{}, ErrInvalidQuantity
	}
	vatPct := cmd.VATPct
	if vatPct == 0 {
		vatPct = 19
	}

	owner, err := u.users.GetByID(ctx, request.OwnerID)
	if err != nil {
		u.log.Warn("quote owner lookup failed", zap.String("request_id", requestID), zap.Error(err))
	}

	unit := article.Unit
	if unit == "" {
		unit = "U"
	}
	line := entities.QuoteLine{
		Reference:   article.Reference,
		Designation: article.Designation,
		Unit:        unit,
		Quantity:    qty,
		UnitPriceHT: article.PriceHT,
		DiscountPct: cmd.DiscountPct,
		VATPct:      vatPct,
		TotalHT:     round3(qty * article.PriceHT * (1 - cmd.DiscountPct/100)),
	}
	lines := []entities.QuoteLine{line}

	now := u.now().UTC()
	year := now.Year()
	seq, err := u.counters.Next(ctx, QuoteCounterKey(year))
	if err != nil {
		return CreateQuoteResult{}, fmt.Errorf("%w: allocate sequence: %v", ErrStorageUnavailable, err)
	}

	q := entities.IssuedQuote{
		ID:                  uuid.NewString(),
		Number:              FormatNumber(PrefixIssuedQuote, year, seq),
		SourceRequestID:     request.ID,
		SourceRequestNumber: request.Number,
		SourceFamily:        request.Family,
		Client: entities.ClientSnapshot{
			UserID:  owner.ID,
			Name:    owner.FullName(),
			Email:   owner.Email,
			Address: owner.Address,
			Phone:   owner.Phone,
			TaxCode: owner.TaxCode,
		},
		Lines:     lines,
		Totals:    ComputeQuoteTotals(lines, defaultFodecPct, 0),
		CreatedAt: now,
	}

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return CreateQuoteResult{}, fmt.Errorf("%w: persist quote: %v", ErrStorageUnavailable, err)
	}

	pdf, err := u.renderer.RenderIssuedQuote(ctx, created)
	if err != nil {
		// The quote is committed; the caller can regenerate the document.
		u.log.Error("quote render failed", zap.String("numero", created.Number), zap.Error(err))
		return CreateQuoteResult{Quote: created}, nil
	}

	emailSent := false
	if cmd.SendEmail && created.Client.Email != "" {
		email := composeIssuedQuoteEmail(created, pdf, u.settings.FromAddress)
		if err := u.notifier.Send(ctx, email); err != nil {
			u.log.Error("quote email failed", zap.String("numero", created.Number), zap.Error(err))
		} else {
			emailSent = true
		}
	}

	return CreateQuoteResult{Quote: created, EmailSent: emailSent}, nil
}

// GetBySource finds the quote issued for a request, matching by id or by the
// denormalized request number (either may be missing on historical data).
func (u *IssuedQuoteUseCase) GetBySource(ctx context.Context, requestID, requestNumber string) (entities.IssuedQuote, error) {
	requestID = strings.TrimSpace(requestID)
	requestNumber = strings.ToUpper(strings.TrimSpace(requestNumber))
	if requestID == "" && requestNumber == "" {
		return entities.IssuedQuote{}, ErrInvalidRequestRef
	}

	q, err := u.quotes.FindBySource(ctx, requestID, requestNumber)
	if err != nil {
		return entities.IssuedQuote{}, err
	}
	if q.ID == "" {
		return entities.IssuedQuote{}, ErrIssuedQuoteNotFound
	}
	return q, nil
}

// PreviewNextNumber formats the number the next conversion would get,
// without consuming a sequence value.
func (u *IssuedQuoteUseCase) PreviewNextNumber(ctx context.Context) (string, error) {
	year := u.now().UTC().Year()
	current, err := u.counters.Current(ctx, QuoteCounterKey(year))
	if err != nil {
		return "", fmt.Errorf("%w: read counter: %v", ErrStorageUnavailable, err)
	}
	return FormatNumber(PrefixIssuedQuote, year, current+1), nil
}
