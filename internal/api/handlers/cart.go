package handlers

import (
	"net/http"

	"github.com/boxpack/boxpack/internal/api/middleware"
	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/models"
	service "github.com/boxpack/boxpack/internal/services"
	"github.com/boxpack/boxpack/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrFail(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) AddLine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrFail(w, r)
		if !ok {
			return
		}

		var req models.AddCartLineRequest
		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddLine(r.Context(), claims.UserID, &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Add to cart failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, cart)
	}
}

func (h *CartHandler) UpdateLineQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrFail(w, r)
		if !ok {
			return
		}

		var req models.UpdateLineQuantityRequest
		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		cart, err := h.cartService.UpdateLineQuantity(r.Context(), claims.UserID, &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) RemoveLine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrFail(w, r)
		if !ok {
			return
		}

		lineID, err := uuid.Parse(r.PathValue("lineId"))
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid cart line id"))

			return
		}

		cart, err := h.cartService.RemoveLine(r.Context(), claims.UserID, lineID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrFail(w, r)
		if !ok {
			return
		}

		if err := h.cartService.ClearCart(r.Context(), claims.UserID); err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}
