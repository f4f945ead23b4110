package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase/interfaces"
	mock_interfaces "mtr_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type complaintMocks struct {
	complaints *mock_interfaces.MockIComplaintRepository
	users      *mock_interfaces.MockIUserRepository
	renderer   *mock_interfaces.MockIDocumentRenderer
	notifier   *mock_interfaces.MockINotifier
}

func newComplaintUseCaseForTest(t *testing.T, settings IssuanceSettings) (*ComplaintUseCase, complaintMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := complaintMocks{
		complaints: mock_interfaces.NewMockIComplaintRepository(ctrl),
		users:      mock_interfaces.NewMockIUserRepository(ctrl),
		renderer:   mock_interfaces.NewMockIDocumentRenderer(ctrl),
		notifier:   mock_interfaces.NewMockINotifier(ctrl),
	}
	uc := NewComplaintUseCase(m.complaints, m.users, m.renderer, m.notifier, settings, nil)
	uc.now = func() time.Time { return time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC) }
	return uc, m
}

func validComplaintCommand() SubmitComplaintCommand {
	return SubmitComplaintCommand{
		OwnerID: "user-1",
		Order: entities.OrderReference{
			DocType: entities.OrderDocDeliveryNote,
			Number:  "BL-2025-0117",
		},
		Nature:      entities.NatureQuantityError,
		Expectation: entities.ExpectReplacement,
		Description: "Il manque 200 pièces sur la livraison.",
	}
}

func TestComplaintUseCase_Submit(t *testing.T) {
	t.Run("missing owner", func(t *testing.T) {
		uc, _ := newComplaintUseCaseForTest(t, IssuanceSettings{})
		cmd := validComplaintCommand()
		cmd.OwnerID = ""
		if _, err := uc.Submit(context.Background(), cmd); !errors.Is(err, ErrInvalidOwner) {
			t.Fatalf("expected ErrInvalidOwner, got %v", err)
		}
	})

	t.Run("invalid order document", func(t *testing.T) {
		uc, _ := newComplaintUseCaseForTest(t, IssuanceSettings{})
		cmd := validComplaintCommand()
		cmd.Order.DocType = "ticket"
		if _, err := uc.Submit(context.Background(), cmd); !errors.Is(err, ErrInvalidOrderDoc) {
			t.Fatalf("expected ErrInvalidOrderDoc, got %v", err)
		}
	})

	t.Run("blank order number", func(t *testing.T) {
		uc, _ := newComplaintUseCaseForTest(t, IssuanceSettings{})
		cmd := validComplaintCommand()
		cmd.Order.Number = "   "
		if _, err := uc.Submit(context.Background(), cmd); !errors.Is(err, ErrInvalidOrderDoc) {
			t.Fatalf("expected ErrInvalidOrderDoc, got %v", err)
		}
	})

	t.Run("invalid nature", func(t *testing.T) {
		uc, _ := newComplaintUseCaseForTest(t, IssuanceSettings{})
		cmd := validComplaintCommand()
		cmd.Nature = "mauvaise humeur"
		if _, err := uc.Submit(context.Background(), cmd); !errors.Is(err, ErrInvalidNature) {
			t.Fatalf("expected ErrInvalidNature, got %v", err)
		}
	})

	t.Run("invalid expectation", func(t *testing.T) {
		uc, _ := newComplaintUseCaseForTest(t, IssuanceSettings{})
		cmd := validComplaintCommand()
		cmd.Expectation = "excuses"
		if _, err := uc.Submit(context.Background(), cmd); !errors.Is(err, ErrInvalidExpectation) {
			t.Fatalf("expected ErrInvalidExpectation, got %v", err)
		}
	})

	t.Run("too many attachments", func(t *testing.T) {
		uc, _ := newComplaintUseCaseForTest(t, IssuanceSettings{})
		cmd := validComplaintCommand()
		for i := 0; i < maxComplaintFiles+1; i++ {
			cmd.Attachments = append(cmd.Attachments, entities.Attachment{Filename: "photo.jpg", Data: []byte{1}})
		}
		if _, err := uc.Submit(context.Background(), cmd); !errors.Is(err, ErrTooManyAttachments) {
			t.Fatalf("expected ErrTooManyAttachments, got %v", err)
		}
	})

	t.Run("attachment over per-file limit", func(t *testing.T) {
		uc, _ := newComplaintUseCaseForTest(t, IssuanceSettings{})
		cmd := validComplaintCommand()
		cmd.Attachments = []entities.Attachment{
			{Filename: "video.mp4", Data: bytes.Repeat([]byte{0}, maxComplaintFileSize+1)},
		}
		if _, err := uc.Submit(context.Background(), cmd); !errors.Is(err, ErrAttachmentTooLarge) {
			t.Fatalf("expected ErrAttachmentTooLarge, got %v", err)
		}
	})

	t.Run("persist failure", func(t *testing.T) {
		uc, m := newComplaintUseCaseForTest(t, IssuanceSettings{})
		m.complaints.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Complaint{}, errors.New("table missing"))
		if _, err := uc.Submit(context.Background(), validComplaintCommand()); !errors.Is(err, ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
		uc.Wait()
	})

	t.Run("success runs finalize to completion", func(t *testing.T) {
		uc, m := newComplaintUseCaseForTest(t, IssuanceSettings{AdminEmail: "qualite@mtr.tn", FromAddress: "devis@mtr.tn"})

		var stored entities.Complaint
		m.complaints.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Complaint) (entities.Complaint, error) {
				if c.ID == "" {
					t.Errorf("expected generated id")
				}
				stored = c
				return c, nil
			},
		)
		m.complaints.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, string) (entities.Complaint, error) { return stored, nil },
		)
		m.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", LastName: "Trabelsi", Email: "t@client.tn"}, nil)
		m.renderer.EXPECT().RenderComplaint(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		m.complaints.EXPECT().SetRenderedDocument(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, email interfaces.Email) error {
				if email.To != "qualite@mtr.tn" {
					t.Errorf("expected quality inbox, got %s", email.To)
				}
				if len(email.Attachments) == 0 || email.Attachments[0].MimeType != "application/pdf" {
					t.Errorf("expected generated pdf first, got %+v", email.Attachments)
				}
				return nil
			},
		)

		created, err := uc.Submit(context.Background(), validComplaintCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || created.CreatedAt.IsZero() {
			t.Fatalf("unexpected complaint: %+v", created)
		}
		uc.Wait()
	})

	t.Run("notify failure stays invisible to the caller", func(t *testing.T) {
		uc, m := newComplaintUseCaseForTest(t, IssuanceSettings{})

		m.complaints.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Complaint) (entities.Complaint, error) { return c, nil },
		)
		m.complaints.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (entities.Complaint, error) {
				return entities.Complaint{ID: id, OwnerID: "user-1"}, nil
			},
		)
		m.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, nil)
		m.renderer.EXPECT().RenderComplaint(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		m.complaints.EXPECT().SetRenderedDocument(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp refused"))

		if _, err := uc.Submit(context.Background(), validComplaintCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc.Wait()
	})
}

func TestComplaintUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc, _ := newComplaintUseCaseForTest(t, IssuanceSettings{})
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrComplaintNotFound) {
			t.Fatalf("expected ErrComplaintNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newComplaintUseCaseForTest(t, IssuanceSettings{})
		m.complaints.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Complaint{}, nil)
		if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrComplaintNotFound) {
			t.Fatalf("expected ErrComplaintNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, m := newComplaintUseCaseForTest(t, IssuanceSettings{})
		m.complaints.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.Complaint{ID: "rec-1"}, nil)
		c, err := uc.GetByID(context.Background(), "rec-1")
		if err != nil || c.ID != "rec-1" {
			t.Fatalf("unexpected result: %+v, %v", c, err)
		}
	})
}
