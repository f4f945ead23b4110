package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrStorageUnavailable   = errors.New("storage unavailable")
	ErrInvalidFamily        = errors.New("invalid family")
	ErrInvalidSpec          = errors.New("spec does not match family")
	ErrInvalidOwner         = errors.New("invalid owner id")
	ErrQuoteRequestNotFound = errors.New("quote request not found")
)

// IssuanceSettings tunes the two-phase issuance pipeline. Zero values fall
// back to production defaults.
type IssuanceSettings struct {
	// AdminEmail is the fixed operational recipient of new-submission mail.
	AdminEmail string
	// FromAddress is the envelope sender.
	FromAddress string
	// AttachmentBudget caps the total email size (default 15 MiB).
	AttachmentBudget int64
	// CommitTimeout bounds the synchronous allocate+commit phase.
	CommitTimeout time.Duration
	// FinalizeTimeout bounds one detached render+persist+notify run, so a
	// stuck entity cannot accumulate unbounded background work.
	FinalizeTimeout time.Duration
}

func (s IssuanceSettings) withDefaults() IssuanceSettings {
	if s.AttachmentBudget <= 0 {
		s.AttachmentBudget = DefaultAttachmentBudget
	}
	if s.CommitTimeout <= 0 {
		s.CommitTimeout = 5 * time.Second
	}
	if s.FinalizeTimeout <= 0 {
		s.FinalizeTimeout = 2 * time.Minute
	}
	return s
}

// SubmitQuoteRequestCommand is the normalized submission handed in by the
// HTTP layer. Attachments carry the raw uploaded buffers.
type SubmitQuoteRequestCommand struct {
	Family       entities.Family
	OwnerID      string
	Spec         entities.QuoteRequestSpec
	Requirements string
	Remarks      string
	Attachments  []entities.Attachment
}

// SubmitReceipt is what the caller gets back immediately: the entity id and
// the assigned number. Rendering and notification happen afterwards.
type SubmitReceipt struct {
	ID     string
	Number string
}

// IQuoteRequestUseCase exposes quote request issuance.
//
// Submit runs the synchronous Submitted→Committed phase and schedules the
// detached Committed→Finalized phase; Wait blocks until every scheduled
// finalize run has finished (graceful shutdown).

type IQuoteRequestUseCase interface {
	Submit(ctx context.Context, cmd SubmitQuoteRequestCommand) (SubmitReceipt, error)
	GetByID(ctx context.Context, family entities.Family, id string) (entities.QuoteRequest, error)
	Wait()
}

type QuoteRequestUseCase struct {
	requests interfaces.IQuoteRequestRepository
	counters interfaces.ICounterRepository
	users    interfaces.IUserRepository
	renderer interfaces.IDocumentRenderer
	notifier interfaces.INotifier

	settings IssuanceSettings
	log      *zap.Logger
	now      func() time.Time

	wg sync.WaitGroup
}

var _ IQuoteRequestUseCase = (*QuoteRequestUseCase)(nil)

func NewQuoteRequestUseCase(
	requests interfaces.IQuoteRequestRepository,
	counters interfaces.ICounterRepository,
	users interfaces.IUserRepository,
	renderer interfaces.IDocumentRenderer,
	notifier interfaces.INotifier,
	settings IssuanceSettings,
	log *zap.Logger,
) *QuoteRequestUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteRequestUseCase{
		requests: requests,
		counters: counters,
		users:    users,
		renderer: renderer,
		notifier: notifier,
		settings: settings.withDefaults(),
		log:      log,
		now:      time.Now,
	}
}

// Submit allocates the next yearly DDV number, persists the request with
// that number, and returns. The counter increment is the single
// serialization point; there is no rollback of a consumed value on a failed
// commit, so the sequence may have gaps but never duplicates. Either the
// entity exists with its number, or nothing was persisted.
func (u *QuoteRequestUseCase) Submit(ctx context.Context, cmd SubmitQuoteRequestCommand) (SubmitReceipt, error) {
	if !cmd.Family.Valid() {
		return SubmitReceipt{}, ErrInvalidFamily
	}
	if !cmd.Spec.Matches(cmd.Family) {
		return SubmitReceipt{}, ErrInvalidSpec
	}
	if cmd.OwnerID == "" {
		return SubmitReceipt{}, ErrInvalidOwner
	}

	ctx, cancel := context.WithTimeout(ctx, u.settings.CommitTimeout)
	defer cancel()

	now := u.now().UTC()
	year := now.Year()

	seq, err := u.counters.Next(ctx, RequestCounterKey(year))
	if err != nil {
		return SubmitReceipt{}, fmt.Errorf("%w: allocate sequence: %v", ErrStorageUnavailable, err)
	}
	number := FormatNumber(PrefixQuoteRequest, year, seq)

	qr := entities.QuoteRequest{
		ID:           uuid.NewString(),
		Family:       cmd.Family,
		Number:       number,
		OwnerID:      cmd.OwnerID,
		Spec:         cmd.Spec,
		Requirements: cmd.Requirements,
		Remarks:      cmd.Remarks,
		Attachments:  cmd.Attachments,
		CreatedAt:    now,
	}

	created, err := u.requests.Create(ctx, qr)
	if err != nil {
		return SubmitReceipt{}, fmt.Errorf("%w: persist request: %v", ErrStorageUnavailable, err)
	}

	// Committed. The finalize run is scheduled exactly once per creation
	// event and detached from the request context; its failures are never
	// visible to the caller. A process crash before it runs loses the PDF
	// and the notification, not the request itself.
	u.wg.Add(1)
	go u.finalize(created.Family, created.ID, created.Number)

	return SubmitReceipt{ID: created.ID, Number: created.Number}, nil
}

func (u *QuoteRequestUseCase) finalize(family entities.Family, id, number string) {
	defer u.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			u.log.Error("finalize panicked", zap.String("id", id), zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), u.settings.FinalizeTimeout)
	defer cancel()

	log := u.log.With(zap.String("family", string(family)), zap.String("id", id), zap.String("numero", number))

	full, err := u.requests.GetByID(ctx, family, id)
	if err != nil {
		log.Error("finalize read failed", zap.Error(err))
		return
	}
	if full.ID == "" {
		log.Error("finalize read: request vanished")
		return
	}

	owner, err := u.users.GetByID(ctx, full.OwnerID)
	if err != nil {
		// Degrade rather than abort: the document and email still carry the
		// request data, just without resolved contact details.
		log.Warn("finalize owner lookup failed", zap.Error(err))
	}

	pdf, err := u.renderer.RenderQuoteRequest(ctx, full, owner)
	if err != nil {
		log.Error("finalize render failed", zap.Error(err))
		return
	}

	doc := entities.RenderedDocument{Data: pdf, ContentType: "application/pdf", GeneratedAt: u.now().UTC()}
	if err := u.requests.SetRenderedDocument(ctx, family, id, doc); err != nil {
		log.Error("finalize persist document failed", zap.Error(err))
		return
	}

	primary := interfaces.EmailPart{
		Filename: fmt.Sprintf("demande-%s-%s.pdf", family, id),
		MimeType: "application/pdf",
		Data:     pdf,
	}
	parts := SelectAttachments(primary, full.Attachments, u.settings.AttachmentBudget)

	email := composeQuoteRequestEmail(full, owner, parts, u.settings.FromAddress, u.settings.AdminEmail)
	if err := u.notifier.Send(ctx, email); err != nil {
		log.Error("finalize notify failed", zap.Error(err))
		return
	}

	log.Info("finalize done", zap.Int("attachments", len(parts)))
}

func (u *QuoteRequestUseCase) GetByID(ctx context.Context, family entities.Family, id string) (entities.QuoteRequest, error) {
	if !family.Valid() {
		return entities.QuoteRequest{}, ErrInvalidFamily
	}
	if id == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}

	qr, err := u.requests.GetByID(ctx, family, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if qr.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	return qr, nil
}

// Wait blocks until every scheduled finalize run has completed.
func (u *QuoteRequestUseCase) Wait() {
	u.wg.Wait()
}
