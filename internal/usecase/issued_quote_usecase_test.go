package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase/interfaces"
	mock_interfaces "mtr_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type issuedQuoteMocks struct {
	quotes   *mock_interfaces.MockIIssuedQuoteRepository
	requests *mock_interfaces.MockIQuoteRequestRepository
	articles *mock_interfaces.MockIArticleRepository
	users    *mock_interfaces.MockIUserRepository
	counters *mock_interfaces.MockICounterRepository
	renderer *mock_interfaces.MockIDocumentRenderer
	notifier *mock_interfaces.MockINotifier
}

func newIssuedQuoteUseCaseForTest(t *testing.T) (*IssuedQuoteUseCase, issuedQuoteMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := issuedQuoteMocks{
		quotes:   mock_interfaces.NewMockIIssuedQuoteRepository(ctrl),
		requests: mock_interfaces.NewMockIQuoteRequestRepository(ctrl),
		articles: mock_interfaces.NewMockIArticleRepository(ctrl),
		users:    mock_interfaces.NewMockIUserRepository(ctrl),
		counters: mock_interfaces.NewMockICounterRepository(ctrl),
		renderer: mock_interfaces.NewMockIDocumentRenderer(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	uc := NewIssuedQuoteUseCase(m.quotes, m.requests, m.articles, m.users, m.counters, m.renderer, m.notifier, IssuanceSettings{FromAddress: "devis@mtr.tn"}, nil)
	uc.now = func() time.Time { return time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC) }
	return uc, m
}

func TestComputeQuoteTotals(t *testing.T) {
	t.Run("single discounted line at 19 percent", func(t *testing.T) {
		lines := []entities.QuoteLine{
			{Quantity: 10, UnitPriceHT: 2.5, DiscountPct: 10, VATPct: 19},
		}
		totals := ComputeQuoteTotals(lines, 1, 0.6)

		if totals.TotalHT != 25 {
			t.Fatalf("expected total HT 25, got %v", totals.TotalHT)
		}
		if totals.NetHT != 22.5 {
			t.Fatalf("expected net HT 22.5, got %v", totals.NetHT)
		}
		if totals.VAT != 4.275 {
			t.Fatalf("expected VAT 4.275, got %v", totals.VAT)
		}
		if totals.Fodec != 0.225 {
			t.Fatalf("expected FODEC 0.225, got %v", totals.Fodec)
		}
		if totals.Stamp != 0.6 {
			t.Fatalf("expected stamp 0.6, got %v", totals.Stamp)
		}
		if totals.TotalTTC != 27.6 {
			t.Fatalf("expected TTC 27.6, got %v", totals.TotalTTC)
		}
	})

	t.Run("unknown vat rate is not taxed", func(t *testing.T) {
		lines := []entities.QuoteLine{
			{Quantity: 1, UnitPriceHT: 100, VATPct: 10},
		}
		totals := ComputeQuoteTotals(lines, 1, 0)
		if totals.VAT != 0 {
			t.Fatalf("expected no VAT for a 10%% line, got %v", totals.VAT)
		}
		if totals.TotalTTC != 101 {
			t.Fatalf("expected TTC 101, got %v", totals.TotalTTC)
		}
	})

	t.Run("amounts are rounded to the millime", func(t *testing.T) {
		lines := []entities.QuoteLine{
			{Quantity: 3, UnitPriceHT: 0.3333, VATPct: 19},
		}
		totals := ComputeQuoteTotals(lines, 1, 0)
		if totals.NetHT != 1 {
			t.Fatalf("expected net HT 1, got %v", totals.NetHT)
		}
		if totals.VAT != 0.19 {
			t.Fatalf("expected VAT 0.19, got %v", totals.VAT)
		}
	})
}

func TestIssuedQuoteUseCase_CreateFromRequest(t *testing.T) {
	validCmd := func() CreateQuoteCommand {
		return CreateQuoteCommand{RequestID: "req-1", ArticleID: "art-1", Quantity: 100}
	}
	requestFound := entities.QuoteRequest{
		ID:      "req-1",
		Family:  entities.FamilyCompression,
		Number:  "DDV2500004",
		OwnerID: "user-1",
	}
	articleFound := entities.Article{
		ID:          "art-1",
		Reference:   "RC-20-080",
		Designation: "Ressort de compression 20x80",
		Unit:        "U",
		PriceHT:     1.25,
	}

	t.Run("blank request reference", func(t *testing.T) {
		uc, _ := newIssuedQuoteUseCaseForTest(t)
		cmd := validCmd()
		cmd.RequestID = "  "
		if _, err := uc.CreateFromRequest(context.Background(), cmd); !errors.Is(err, ErrInvalidRequestRef) {
			t.Fatalf("expected ErrInvalidRequestRef, got %v", err)
		}
	})

	t.Run("request not found in any family", func(t *testing.T) {
		uc, m := newIssuedQuoteUseCaseForTest(t)
		m.requests.EXPECT().FindAnyByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{}, nil)
		if _, err := uc.CreateFromRequest(context.Background(), validCmd()); !errors.Is(err, ErrQuoteRequestNotFound) {
			t.Fatalf("expected ErrQuoteRequestNotFound, got %v", err)
		}
	})

	t.Run("article not found", func(t *testing.T) {
		uc, m := newIssuedQuoteUseCaseForTest(t)
		m.requests.EXPECT().FindAnyByID(gomock.Any(), "req-1").Return(requestFound, nil)
		m.articles.EXPECT().GetByID(gomock.Any(), "art-1").Return(entities.Article{}, nil)
		if _, err := uc.CreateFromRequest(context.Background(), validCmd()); !errors.Is(err, ErrArticleNotFound) {
			t.Fatalf("expected ErrArticleNotFound, got %v", err)
		}
	})

	t.Run("invalid quantity", func(t *testing.T) {
		uc, m := newIssuedQuoteUseCaseForTest(t)
		m.requests.EXPECT().FindAnyByID(gomock.Any(), "req-1").Return(requestFound, nil)
		m.articles.EXPECT().GetByID(gomock.Any(), "art-1").Return(articleFound, nil)
		cmd := validCmd()
		cmd.Quantity = 0
		if _, err := uc.CreateFromRequest(context.Background(), cmd); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("success with customer email", func(t *testing.T) {
		uc, m := newIssuedQuoteUseCaseForTest(t)
		m.requests.EXPECT().FindAnyByID(gomock.Any(), "req-1").Return(requestFound, nil)
		m.articles.EXPECT().GetByID(gomock.Any(), "art-1").Return(articleFound, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", FirstName: "Amine", LastName: "Ben Ali", Email: "amine@client.tn"}, nil)
		m.counters.EXPECT().Next(gomock.Any(), "devis:2025").Return(12, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.IssuedQuote) (entities.IssuedQuote, error) {
				if q.Number != "DV2500012" {
					t.Errorf("expected DV2500012, got %s", q.Number)
				}
				if q.SourceRequestID != "req-1" || q.SourceRequestNumber != "DDV2500004" {
					t.Errorf("unexpected source linkage: %+v", q)
				}
				if len(q.Lines) != 1 || q.Lines[0].VATPct != 19 {
					t.Errorf("expected one line at the default VAT rate, got %+v", q.Lines)
				}
				if q.Lines[0].TotalHT != 125 {
					t.Errorf("expected line total 125, got %v", q.Lines[0].TotalHT)
				}
				return q, nil
			},
		)
		m.renderer.EXPECT().RenderIssuedQuote(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, email interfaces.Email) error {
				if email.To != "amine@client.tn" {
					t.Errorf("expected customer recipient, got %s", email.To)
				}
				return nil
			},
		)

		cmd := validCmd()
		cmd.SendEmail = true
		result, err := uc.CreateFromRequest(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.EmailSent {
			t.Fatal("expected email_sent")
		}
		if result.Quote.Totals.TotalTTC == 0 {
			t.Fatalf("expected computed totals, got %+v", result.Quote.Totals)
		}
	})

	t.Run("render failure still returns the committed quote", func(t *testing.T) {
		uc, m := newIssuedQuoteUseCaseForTest(t)
		m.requests.EXPECT().FindAnyByID(gomock.Any(), "req-1").Return(requestFound, nil)
		m.articles.EXPECT().GetByID(gomock.Any(), "art-1").Return(articleFound, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Email: "amine@client.tn"}, nil)
		m.counters.EXPECT().Next(gomock.Any(), "devis:2025").Return(13, nil)
		m.quotes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.IssuedQuote) (entities.IssuedQuote, error) { return q, nil },
		)
		m.renderer.EXPECT().RenderIssuedQuote(gomock.Any(), gomock.Any()).Return(nil, errors.New("font missing"))

		cmd := validCmd()
		cmd.SendEmail = true
		result, err := uc.CreateFromRequest(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.EmailSent {
			t.Fatal("expected no email after a render failure")
		}
		if result.Quote.Number != "DV2500013" {
			t.Fatalf("expected the committed quote back, got %+v", result.Quote)
		}
	})

	t.Run("allocator failure", func(t *testing.T) {
		uc, m := newIssuedQuoteUseCaseForTest(t)
		m.requests.EXPECT().FindAnyByID(gomock.Any(), "req-1").Return(requestFound, nil)
		m.articles.EXPECT().GetByID(gomock.Any(), "art-1").Return(articleFound, nil)
		m.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, nil)
		m.counters.EXPECT().Next(gomock.Any(), "devis:2025").Return(0, errors.New("dynamodb down"))

		if _, err := uc.CreateFromRequest(context.Background(), validCmd()); !errors.Is(err, ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
	})
}

func TestIssuedQuoteUseCase_GetBySource(t *testing.T) {
	t.Run("both references empty", func(t *testing.T) {
		uc, _ := newIssuedQuoteUseCaseForTest(t)
		if _, err := uc.GetBySource(context.Background(), "  ", ""); !errors.Is(err, ErrInvalidRequestRef) {
			t.Fatalf("expected ErrInvalidRequestRef, got %v", err)
		}
	})

	t.Run("number is normalized before matching", func(t *testing.T) {
		uc, m := newIssuedQuoteUseCaseForTest(t)
		m.quotes.EXPECT().FindBySource(gomock.Any(), "", "DDV2500004").Return(entities.IssuedQuote{ID: "q-1"}, nil)
		q, err := uc.GetBySource(context.Background(), "", "  ddv2500004 ")
		if err != nil || q.ID != "q-1" {
			t.Fatalf("unexpected result: %+v, %v", q, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newIssuedQuoteUseCaseForTest(t)
		m.quotes.EXPECT().FindBySource(gomock.Any(), "req-9", "").Return(entities.IssuedQuote{}, nil)
		if _, err := uc.GetBySource(context.Background(), "req-9", ""); !errors.Is(err, ErrIssuedQuoteNotFound) {
			t.Fatalf("expected ErrIssuedQuoteNotFound, got %v", err)
		}
	})
}

func TestIssuedQuoteUseCase_PreviewNextNumber(t *testing.T) {
	t.Run("formats current plus one", func(t *testing.T) {
		uc, m := newIssuedQuoteUseCaseForTest(t)
		m.counters.EXPECT().Current(gomock.Any(), "devis:2025").Return(41, nil)
		number, err := uc.PreviewNextNumber(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if number != "DV2500042" {
			t.Fatalf("expected DV2500042, got %s", number)
		}
	})

	t.Run("fresh year previews the first value", func(t *testing.T) {
		uc, m := newIssuedQuoteUseCaseForTest(t)
		m.counters.EXPECT().Current(gomock.Any(), "devis:2025").Return(0, nil)
		number, err := uc.PreviewNextNumber(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if number != "DV2500001" {
			t.Fatalf("expected DV2500001, got %s", number)
		}
	})

	t.Run("counter read failure", func(t *testing.T) {
		uc, m := newIssuedQuoteUseCaseForTest(t)
		m.counters.EXPECT().Current(gomock.Any(), "devis:2025").Return(0, errors.New("dynamodb down"))
		if _, err := uc.PreviewNextNumber(context.Background()); !errors.Is(err, ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
	})
}
