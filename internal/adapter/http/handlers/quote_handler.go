package handlers

import (
	"errors"
	"net/http"

	request "mtr_backend/internal/adapter/http/dto/request"
	response "mtr_backend/internal/adapter/http/dto/response"
	"mtr_backend/internal/usecase"
	"mtr_backend/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles staff-side issued quote operations.

type QuoteHandler struct {
	usecase usecase.IIssuedQuoteUseCase
}

func NewQuoteHandler(uc usecase.IIssuedQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote converts a quote request into a priced quote. The quote is
// committed synchronously; email_sent reports whether the customer copy went
// out.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CreateFromRequest(c.Request.Context(), usecase.CreateQuoteCommand{
		RequestID:   c.Param("request_id"),
		ArticleID:   payload.ArticleID,
		Quantity:    payload.Quantity,
		DiscountPct: payload.DiscountPct,
		VATPct:      payload.VATPct,
		SendEmail:   payload.SendEmail,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromIssuedQuote(result.Quote, result.EmailSent))
}

// GetQuoteBySource finds the quote issued for a given request, matching on
// request id or, via ?numero=, on the request number.
func (h *QuoteHandler) GetQuoteBySource(c *gin.Context) {
	quote, err := h.usecase.GetBySource(c.Request.Context(), c.Param("request_id"), c.Query("numero"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIssuedQuote(quote, false))
}

func (h *QuoteHandler) GetNextNumber(c *gin.Context) {
	number, err := h.usecase.PreviewNextNumber(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NextNumberResponse{Number: number})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestRef):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST_REFERENCE", "Invalid quote request reference", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Invalid quantity", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrArticleNotFound):
		return pkg.NewDomainErrorSimple("ARTICLE_NOT_FOUND", "Article not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIssuedQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
