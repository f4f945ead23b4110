package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "mtr_backend/internal/adapter/http/dto/request"
	response "mtr_backend/internal/adapter/http/dto/response"
	"mtr_backend/internal/domain/entities"
	"mtr_backend/internal/usecase"
	"mtr_backend/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuoteRequestPayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_REQUEST_INPUT", "Invalid quote request payload", http.StatusBadRequest)
)

// QuoteRequestHandler handles customer quote request intake and the
// unconverted-requests scan.

type QuoteRequestHandler struct {
	usecase usecase.IQuoteRequestUseCase
	scanner usecase.IReconciliationUseCase
}

func NewQuoteRequestHandler(uc usecase.IQuoteRequestUseCase, scanner usecase.IReconciliationUseCase) *QuoteRequestHandler {
	return &QuoteRequestHandler{usecase: uc, scanner: scanner}
}

// SubmitQuoteRequest commits a new quote request and answers with its id and
// assigned number. The PDF and the notification email are produced after the
// response, so a success here only guarantees the committed record.
func (h *QuoteRequestHandler) SubmitQuoteRequest(c *gin.Context) {
	family := entities.Family(c.Param("family"))

	var payload request.QuoteRequestSubmission
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuoteRequestPayload.HTTPStatus, errInvalidQuoteRequestPayload.ToHTTPError())
		return
	}

	receipt, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitQuoteRequestCommand{
		Family:       family,
		OwnerID:      payload.OwnerID,
		Spec:         payload.ResolveSpec(),
		Requirements: payload.Requirements,
		Remarks:      payload.Remarks,
		Attachments:  payload.ResolveAttachments(),
	})
	if err != nil {
		appErr := mapQuoteRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SubmitReceiptResponse{ID: receipt.ID, Number: receipt.Number})
}

func (h *QuoteRequestHandler) GetQuoteRequest(c *gin.Context) {
	family := entities.Family(c.Param("family"))
	id := c.Param("id")

	qr, err := h.usecase.GetByID(c.Request.Context(), family, id)
	if err != nil {
		appErr := mapQuoteRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteRequest(qr))
}

// ListUnconverted returns the numbers of quote requests that have no issued
// quote yet, across every family. With with_family=true each row also names
// the family the request came from.
func (h *QuoteRequestHandler) ListUnconverted(c *gin.Context) {
	pattern := c.Query("q")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_LIMIT", "Invalid limit", http.StatusBadRequest).ToHTTPError())
			return
		}
		limit = parsed
	}

	rows, err := h.scanner.FindUnconverted(c.Request.Context(), pattern, limit)
	if err != nil {
		appErr := mapQuoteRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if c.Query("with_family") == "true" {
		out := make([]response.UnconvertedRowResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, response.UnconvertedRowResponse{Number: row.Number, Family: string(row.Family)})
		}
		c.JSON(http.StatusOK, out)
		return
	}

	numbers := make([]string, 0, len(rows))
	for _, row := range rows {
		numbers = append(numbers, row.Number)
	}
	c.JSON(http.StatusOK, response.FromUnconvertedNumbers(numbers))
}

func mapQuoteRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFamily):
		return pkg.NewDomainErrorSimple("INVALID_FAMILY", "Unknown quote request family", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSpec):
		return pkg.NewDomainErrorSimple("INVALID_SPEC", "Spec does not match the requested family", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOwner):
		return pkg.NewDomainErrorSimple("INVALID_OWNER", "Invalid owner id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPartialScan):
		return pkg.NewDomainError("SCAN_FAILED", "Reconciliation scan could not complete", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
