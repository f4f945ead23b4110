package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrComplaintNotFound  = errors.New("complaint not found")
	ErrInvalidOrderDoc    = errors.New("invalid order document reference")
	ErrInvalidNature      = errors.New("invalid complaint nature")
	ErrInvalidExpectation = errors.New("invalid complaint expectation")
	ErrTooManyAttachments = errors.New("too many attachments")
	ErrAttachmentTooLarge = errors.New("attachment exceeds per-file limit")
)

// Upload hygiene, matching the submission form limits.
const (
	maxComplaintFiles    = 10
	maxComplaintFileSize = 5 << 20 // 5 MiB per file
)

// SubmitComplaintCommand is a normalized complaint submission.
type SubmitComplaintCommand struct {
	OwnerID     string
	Order       entities.OrderReference
	Nature      entities.ComplaintNature
	Expectation entities.ComplaintExpectation
	Description string
	Attachments []entities.Attachment
}

// IComplaintUseCase exposes complaint intake. Same two-phase shape as quote
// requests (synchronous commit, detached render+notify), without numbering.

type IComplaintUseCase interface {
	Submit(ctx context.Context, cmd SubmitComplaintCommand) (entities.Complaint, error)
	GetByID(ctx context.Context, id string) (entities.Complaint, error)
	Wait()
}

type ComplaintUseCase struct {
	complaints interfaces.IComplaintRepository
	users      interfaces.IUserRepository
	renderer   interfaces.IDocumentRenderer
	notifier   interfaces.INotifier

	settings IssuanceSettings
	log      *zap.Logger
	now      func() time.Time

	wg sync.WaitGroup
}

var _ IComplaintUseCase = (*ComplaintUseCase)(nil)

func NewComplaintUseCase(
	complaints interfaces.IComplaintRepository,
	users interfaces.IUserRepository,
	renderer interfaces.IDocumentRenderer,
	notifier interfaces.INotifier,
	settings IssuanceSettings,
	log *zap.Logger,
) *ComplaintUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ComplaintUseCase{
		complaints: complaints,
		users:      users,
		renderer:   renderer,
		notifier:   notifier,
		settings:   settings.withDefaults(),
		log:        log,
		now:        time.Now,
	}
}

func (u *ComplaintUseCase) Submit(ctx context.Context, cmd SubmitComplaintCommand) (entities.Complaint, error) {
	if cmd.OwnerID == "" {
		return entities.Complaint{}, ErrInvalidOwner
	}
	if !cmd.Order.DocType.Valid() || strings.TrimSpace(cmd.Order.Number) == "" {
		return entities.Complaint{}, ErrInvalidOrderDoc
	}
	if !cmd.Nature.Valid() {
		return entities.Complaint{}, ErrInvalidNature
	}
	if !cmd.Expectation.Valid() {
		return entities.Complaint{}, ErrInvalidExpectation
	}
	if len(cmd.Attachments) > maxComplaintFiles {
		return entities.Complaint{}, ErrTooManyAttachments
	}
	for _, a := range cmd.Attachments {
		if int64(len(a.Data)) > maxComplaintFileSize {
			return entities.Complaint{}, fmt.Errorf("%w: %s", ErrAttachmentTooLarge, a.Filename)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, u.settings.CommitTimeout)
	defer cancel()

	c := entities.Complaint{
		ID:          uuid.NewString(),
		OwnerID:     cmd.OwnerID,
		Order:       cmd.Order,
		Nature:      cmd.Nature,
		Expectation: cmd.Expectation,
		Description: cmd.Description,
		Attachments: cmd.Attachments,
		CreatedAt:   u.now().UTC(),
	}

	created, err := u.complaints.Create(ctx, c)
	if err != nil {
		return entities.Complaint{}, fmt.Errorf("%w: persist complaint: %v", ErrStorageUnavailable, err)
	}

	u.wg.Add(1)
	go u.finalize(created.ID)

	return created, nil
}

func (u *ComplaintUseCase) finalize(id string) {
	defer u.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			u.log.Error("complaint finalize panicked", zap.String("id", id), zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), u.settings.FinalizeTimeout)
	defer cancel()

	log := u.log.With(zap.String("id", id))

	full, err := u.complaints.GetByID(ctx, id)
	if err != nil {
		log.Error("complaint finalize read failed", zap.Error(err))
		return
	}
	if full.ID == "" {
		log.Error("complaint finalize read: complaint vanished")
		return
	}

	owner, err := u.users.GetByID(ctx, full.OwnerID)
	if err != nil {
		log.Warn("complaint finalize owner lookup failed", zap.Error(err))
	}

	pdf, err := u.renderer.RenderComplaint(ctx, full, owner)
	if err != nil {
		log.Error("complaint finalize render failed", zap.Error(err))
		return
	}

	doc := entities.RenderedDocument{Data: pdf, ContentType: "application/pdf", GeneratedAt: u.now().UTC()}
	if err := u.complaints.SetRenderedDocument(ctx, id, doc); err != nil {
		log.Error("complaint finalize persist document failed", zap.Error(err))
		return
	}

	primary := interfaces.EmailPart{
		Filename: fmt.Sprintf("reclamation-%s.pdf", id),
		MimeType: "application/pdf",
		Data:     pdf,
	}
	parts := SelectAttachments(primary, full.Attachments, u.settings.AttachmentBudget)

	email := composeComplaintEmail(full, owner, parts, u.settings.FromAddress, u.settings.AdminEmail)
	if err := u.notifier.Send(ctx, email); err != nil {
		log.Error("complaint finalize notify failed", zap.Error(err))
		return
	}

	log.Info("complaint finalize done", zap.Int("attachments", len(parts)))
}

func (u *ComplaintUseCase) GetByID(ctx context.Context, id string) (entities.Complaint, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Complaint{}, ErrComplaintNotFound
	}

	c, err := u.complaints.GetByID(ctx, id)
	if err != nil {
		return entities.Complaint{}, err
	}
	if c.ID == "" {
		return entities.Complaint{}, ErrComplaintNotFound
	}
	return c, nil
}

// Wait blocks until every scheduled finalize run has completed.
func (u *ComplaintUseCase) Wait() {
	u.wg.Wait()
}
