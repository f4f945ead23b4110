package routes

import (
	"mtr_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuoteRequests = "/quote-requests"
	PathComplaints    = "/complaints"
	PathQuotes        = "/quotes"
)

func addQuotingRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.QuoteRequestHandler,
	complaintHandler *handlers.ComplaintHandler,
	quoteHandler *handlers.QuoteHandler,
) {
	requests := rg.Group(PathQuoteRequests)
	{
		// The static route coexists with the :family routes; gin resolves
		// static segments first.
		requests.GET("/unconverted", requestHandler.ListUnconverted)
		requests.POST("/:family", requestHandler.SubmitQuoteRequest)
		requests.GET("/:family/:id", requestHandler.GetQuoteRequest)
	}

	complaints := rg.Group(PathComplaints)
	{
		complaints.POST("", complaintHandler.SubmitComplaint)
		complaints.GET("/:id", complaintHandler.GetComplaint)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/from-request/:request_id", quoteHandler.CreateQuote)
		quotes.GET("/by-request/:request_id", quoteHandler.GetQuoteBySource)
		quotes.GET("/next-number", quoteHandler.GetNextNumber)
	}
}
