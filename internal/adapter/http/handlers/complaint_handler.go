package handlers

import (
	"errors"
	"net/http"

	request "mtr_backend/internal/adapter/http/dto/request"
	response "mtr_backend/internal/adapter/http/dto/response"
	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase"
	"mtr_backend/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidComplaintPayload = pkg.NewDomainErrorSimple("INVALID_COMPLAINT_INPUT", "Invalid complaint payload", http.StatusBadRequest)
)

// ComplaintHandler handles customer complaint intake.

type ComplaintHandler struct {
	usecase usecase.IComplaintUseCase
}

func NewComplaintHandler(uc usecase.IComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{usecase: uc}
}

func (h *ComplaintHandler) SubmitComplaint(c *gin.Context) {
	var payload request.ComplaintRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComplaintPayload.HTTPStatus, errInvalidComplaintPayload.ToHTTPError())
		return
	}

	complaint, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitComplaintCommand{
		OwnerID:     payload.OwnerID,
		Order:       payload.ResolveOrder(),
		Nature:      entities.ComplaintNature(payload.Nature),
		Expectation: entities.ComplaintExpectation(payload.Expectation),
		Description: payload.Description,
		Attachments: payload.ResolveAttachments(),
	})
	if err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromComplaint(complaint))
}

func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	complaint, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComplaint(complaint))
}

func mapComplaintError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwner):
		return pkg.NewDomainErrorSimple("INVALID_OWNER", "Invalid owner id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderDoc):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_REFERENCE", "Invalid order document reference", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidNature):
		return pkg.NewDomainErrorSimple("INVALID_NATURE", "Invalid complaint nature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidExpectation):
		return pkg.NewDomainErrorSimple("INVALID_EXPECTATION", "Invalid complaint expectation", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTooManyAttachments):
		return pkg.NewDomainErrorSimple("TOO_MANY_ATTACHMENTS", "Too many attachments", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAttachmentTooLarge):
		return pkg.NewDomainErrorSimple("ATTACHMENT_TOO_LARGE", "Attachment exceeds the per-file limit", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrComplaintNotFound):
		return pkg.NewDomainErrorSimple("COMPLAINT_NOT_FOUND", "Complaint not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
