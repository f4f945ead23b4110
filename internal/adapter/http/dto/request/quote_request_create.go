package request

// CreateQuoteRequest is the staff payload converting a quote request into a
// priced quote. VATPct defaults server-side when omitted.
type CreateQuoteRequest struct {
	ArticleID   string  `json:"article_id" binding:"required"`
	Quantity    float64 `json:"quantite" binding:"required,gt=0"`
	DiscountPct float64 `json:"remise_pct" binding:"gte=0,lte=100"`
	VATPct      float64 `json:"tva_pct"`
	SendEmail   bool    `json:"envoyer_email"`
}
