package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase/interfaces"
	mock_interfaces "mtr_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type quoteRequestMocks struct {
	requests *mock_interfaces.MockIQuoteRequestRepository
	counters *mock_interfaces.MockICounterRepository
	users    *mock_interfaces.MockIUserRepository
	renderer *mock_interfaces.MockIDocumentRenderer
	notifier *mock_interfaces.MockINotifier
}

func newQuoteRequestUseCaseForTest(t *testing.T, settings IssuanceSettings) (*QuoteRequestUseCase, quoteRequestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := quoteRequestMocks{
		requests: mock_interfaces.NewMockIQuoteRequestRepository(ctrl),
		counters: mock_interfaces.NewMockICounterRepository(ctrl),
		users:    mock_interfaces.NewMockIUserRepository(ctrl),
		renderer: mock_interfaces.NewMockIDocumentRenderer(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	uc := NewQuoteRequestUseCase(m.requests, m.counters, m.users, m.renderer, m.notifier, settings, nil)
	uc.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	return uc, m
}

func validSubmitCommand() SubmitQuoteRequestCommand {
	return SubmitQuoteRequestCommand{
		Family:  entities.FamilyCompression,
		OwnerID: "user-1",
		Spec: entities.QuoteRequestSpec{
			Compression: &entities.CompressionSpec{
				WireDiameter:  2,
				OuterDiameter: 20,
				InnerDiameter: 16,
				FreeLength:    80,
				TotalCoils:    10,
				Quantity:      500,
				Material:      "acier inox",
			},
		},
	}
}

func TestQuoteRequestUseCase_Submit(t *testing.T) {
	t.Run("invalid family", func(t *testing.T) {
		uc, _ := newQuoteRequestUseCaseForTest(t, IssuanceSettings{})
		cmd := validSubmitCommand()
		cmd.Family = "piston"
		if _, err := uc.Submit(context.Background(), cmd); !errors.Is(err, ErrInvalidFamily) {
			t.Fatalf("expected ErrInvalidFamily, got %v", err)
		}
	})

	t.Run("spec does not match family", func(t *testing.T) {
		uc, _ := newQuoteRequestUseCaseForTest(t, IssuanceSettings{})
		cmd := validSubmitCommand()
		cmd.Family = entities.FamilyTorsion
		if _, err := uc.Submit(context.Background(), cmd); !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("expected ErrInvalidSpec, got %v", err)
		}
	})

	t.Run("missing owner", func(t *testing.T) {
		uc, _ := newQuoteRequestUseCaseForTest(t, IssuanceSettings{})
		cmd := validSubmitCommand()
		cmd.OwnerID = ""
		if _, err := uc.Submit(context.Background(), cmd); !errors.Is(err, ErrInvalidOwner) {
			t.Fatalf("expected ErrInvalidOwner, got %v", err)
		}
	})

	t.Run("allocator failure commits nothing", func(t *testing.T) {
		uc, m := newQuoteRequestUseCaseForTest(t, IssuanceSettings{})

		m.counters.EXPECT().Next(gomock.Any(), "demande:2025").Return(0, errors.New("dynamodb down"))
		// No Create expectation: a failed allocation must not persist anything.

		_, err := uc.Submit(context.Background(), validSubmitCommand())
		if !errors.Is(err, ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
		uc.Wait()
	})

	t.Run("commit failure surfaces and skips finalize", func(t *testing.T) {
		uc, m := newQuoteRequestUseCaseForTest(t, IssuanceSettings{})

		m.counters.EXPECT().Next(gomock.Any(), "demande:2025").Return(7, nil)
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, errors.New("conditional check failed"))

		_, err := uc.Submit(context.Background(), validSubmitCommand())
		if !errors.Is(err, ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
		uc.Wait()
	})

	t.Run("success runs finalize to completion", func(t *testing.T) {
		uc, m := newQuoteRequestUseCaseForTest(t, IssuanceSettings{
			AdminEmail:  "admin@mtr.tn",
			FromAddress: "devis@mtr.tn",
		})

		cmd := validSubmitCommand()
		cmd.Attachments = []entities.Attachment{
			{Filename: "plan.dxf", MimeType: "application/dxf", Size: 3, Data: []byte{1, 2, 3}},
		}

		var stored entities.QuoteRequest
		m.counters.EXPECT().Next(gomock.Any(), "demande:2025").Return(1, nil)
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error) {
				if qr.ID == "" {
					t.Errorf("expected generated id")
				}
				if qr.Number != "DDV2500001" {
					t.Errorf("expected DDV2500001, got %s", qr.Number)
				}
				stored = qr
				return qr, nil
			},
		)
		m.requests.EXPECT().GetByID(gomock.Any(), entities.FamilyCompression, gomock.Any()).DoAndReturn(
			func(context.Context, entities.Family, string) (entities.QuoteRequest, error) {
				return stored, nil
			},
		)
		m.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", FirstName: "Amine", Email: "amine@client.tn"}, nil)
		m.renderer.EXPECT().RenderQuoteRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		m.requests.EXPECT().SetRenderedDocument(gomock.Any(), entities.FamilyCompression, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Family, _ string, doc entities.RenderedDocument) error {
				if doc.ContentType != "application/pdf" || len(doc.Data) == 0 {
					t.Errorf("unexpected rendered document: %+v", doc)
				}
				return nil
			},
		)
		m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, email interfaces.Email) error {
				if email.To != "admin@mtr.tn" {
					t.Errorf("expected admin recipient, got %s", email.To)
				}
				if email.ReplyTo != "amine@client.tn" {
					t.Errorf("expected reply-to client, got %s", email.ReplyTo)
				}
				if len(email.Attachments) != 2 {
					t.Errorf("expected pdf plus client file, got %d attachments", len(email.Attachments))
				}
				if len(email.Attachments) > 0 && email.Attachments[0].MimeType != "application/pdf" {
					t.Errorf("expected generated pdf first, got %s", email.Attachments[0].Filename)
				}
				return nil
			},
		)

		receipt, err := uc.Submit(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if receipt.Number != "DDV2500001" || receipt.ID == "" {
			t.Fatalf("unexpected receipt: %+v", receipt)
		}
		uc.Wait()
	})

	t.Run("finalize render failure stays invisible to the caller", func(t *testing.T) {
		uc, m := newQuoteRequestUseCaseForTest(t, IssuanceSettings{})

		m.counters.EXPECT().Next(gomock.Any(), "demande:2025").Return(2, nil)
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error) { return qr, nil },
		)
		m.requests.EXPECT().GetByID(gomock.Any(), entities.FamilyCompression, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Family, id string) (entities.QuoteRequest, error) {
				return entities.QuoteRequest{ID: id, Family: entities.FamilyCompression, OwnerID: "user-1"}, nil
			},
		)
		m.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, errors.New("users table offline"))
		m.renderer.EXPECT().RenderQuoteRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("font missing"))
		// Neither SetRenderedDocument nor Send may run after a render failure.

		if _, err := uc.Submit(context.Background(), validSubmitCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc.Wait()
	})

	t.Run("concurrent submissions get distinct numbers", func(t *testing.T) {
		uc, m := newQuoteRequestUseCaseForTest(t, IssuanceSettings{})

		var mu sync.Mutex
		seq := 0
		m.counters.EXPECT().Next(gomock.Any(), "demande:2025").AnyTimes().DoAndReturn(
			func(context.Context, string) (int, error) {
				mu.Lock()
				defer mu.Unlock()
				seq++
				return seq, nil
			},
		)
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
			func(_ context.Context, qr entities.QuoteRequest) (entities.QuoteRequest, error) { return qr, nil },
		)
		m.requests.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
			func(_ context.Context, family entities.Family, id string) (entities.QuoteRequest, error) {
				return entities.QuoteRequest{ID: id, Family: family, OwnerID: "user-1"}, nil
			},
		)
		m.users.EXPECT().GetByID(gomock.Any(), gomock.Any()).AnyTimes().Return(entities.User{}, nil)
		m.renderer.EXPECT().RenderQuoteRequest(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return(nil, errors.New("skip finalize tail"))

		const n = 8
		numbers := make(chan string, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				receipt, err := uc.Submit(context.Background(), validSubmitCommand())
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					numbers <- ""
					return
				}
				numbers <- receipt.Number
			}()
		}
		wg.Wait()
		uc.Wait()
		close(numbers)

		seen := make(map[string]struct{}, n)
		for number := range numbers {
			if _, dup := seen[number]; dup {
				t.Fatalf("duplicate number %s", number)
			}
			seen[number] = struct{}{}
		}
		if len(seen) != n {
			t.Fatalf("expected %d distinct numbers, got %d", n, len(seen))
		}
	})
}

func TestQuoteRequestUseCase_GetByID(t *testing.T) {
	t.Run("invalid family", func(t *testing.T) {
		uc, _ := newQuoteRequestUseCaseForTest(t, IssuanceSettings{})
		if _, err := uc.GetByID(context.Background(), "piston", "id-1"); !errors.Is(err, ErrInvalidFamily) {
			t.Fatalf("expected ErrInvalidFamily, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newQuoteRequestUseCaseForTest(t, IssuanceSettings{})
		m.requests.EXPECT().GetByID(gomock.Any(), entities.FamilyTorsion, "missing").Return(entities.QuoteRequest{}, nil)
		if _, err := uc.GetByID(context.Background(), entities.FamilyTorsion, "missing"); !errors.Is(err, ErrQuoteRequestNotFound) {
			t.Fatalf("expected ErrQuoteRequestNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, m := newQuoteRequestUseCaseForTest(t, IssuanceSettings{})
		m.requests.EXPECT().GetByID(gomock.Any(), entities.FamilyTorsion, "id-1").Return(entities.QuoteRequest{ID: "id-1", Number: "DDV2500009"}, nil)
		qr, err := uc.GetByID(context.Background(), entities.FamilyTorsion, "id-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if qr.Number != "DDV2500009" {
			t.Fatalf("unexpected request: %+v", qr)
		}
	})
}
