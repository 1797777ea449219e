package handlers

import (
	"net/http"

	"github.com/boxpack/boxpack/internal/api/middleware"
	"github.com/boxpack/boxpack/internal/metrics"
	"github.com/boxpack/boxpack/internal/models"
	service "github.com/boxpack/boxpack/internal/services"
	"github.com/boxpack/boxpack/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type QuoteHandler struct {
	quoteService service.QuoteService
	validator    *validator.Validate
}

func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService, validator: validator.New()}
}

// Price returns the live breakdown for a quote being edited. The storefront
// calls this on every dimension or option change.
func (h *QuoteHandler) Price() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PriceQuoteRequest
		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		resp, err := h.quoteService.PriceQuote(r.Context(), &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Quote pricing failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		metrics.QuotePriced()
		response.Success(w, http.StatusOK, resp)
	}
}
