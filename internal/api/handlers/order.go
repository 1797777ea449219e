package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/boxpack/boxpack/internal/api/middleware"
	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/metrics"
	"github.com/boxpack/boxpack/internal/models"
	service "github.com/boxpack/boxpack/internal/services"
	"github.com/boxpack/boxpack/internal/utils/response"
	stripeClient "github.com/boxpack/boxpack/pkg/stripe"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
)

type OrderHandler struct {
	orderService service.OrderService
	payments     stripeClient.Client
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService, payments stripeClient.Client) *OrderHandler {
	return &OrderHandler{orderService: orderService, payments: payments, validator: validator.New()}
}

func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrFail(w, r)
		if !ok {
			return
		}

		var req models.CreateOrderRequest
		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		order, err := h.orderService.CreateOrder(r.Context(), claims.UserID, claims.Subject, &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Checkout failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Order placed", "order_id", order.ID.String())
		metrics.OrderPlaced()
		response.Success(w, http.StatusCreated, order)
	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrFail(w, r)
		if !ok {
			return
		}

		orderID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid order id"))

			return
		}

		order, err := h.orderService.GetOrder(r.Context(), claims.UserID, orderID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrFail(w, r)
		if !ok {
			return
		}

		page := queryInt(r, "page", 1)
		size := queryInt(r, "size", 20)

		history, err := h.orderService.ListOrders(r.Context(), claims.UserID, page, size)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, history)
	}
}

func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid order id"))

			return
		}

		var req models.UpdateOrderStatusRequest
		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateOrderStatus(r.Context(), orderID, req.Status)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// StripeWebhook handles payment lifecycle callbacks. The signature check
// happens before any parsing of the payload.
func (h *OrderHandler) StripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Failed to read webhook payload").WithError(err))

			return
		}

		event, err := h.payments.VerifyWebhookSignature(payload, r.Header.Get("Stripe-Signature"))
		if err != nil {
			response.Error(w, appErrors.UnauthorizedError("Invalid webhook signature").WithError(err))

			return
		}

		logger := middleware.LoggerFromContext(r.Context())

		switch event.Type {
		case "payment_intent.succeeded", "payment_intent.payment_failed":
			var intent stripe.PaymentIntent
			if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
				response.Error(w, appErrors.BadRequestError("Malformed webhook event").WithError(err))

				return
			}

			if event.Type == "payment_intent.succeeded" {
				err = h.orderService.HandlePaymentSucceeded(r.Context(), intent.ID)
			} else {
				err = h.orderService.HandlePaymentFailed(r.Context(), intent.ID)
			}

			if err != nil {
				logger.Error("Webhook processing failed", "event", string(event.Type), "error", err.Error())
				response.Error(w, err)

				return
			}
		default:
			logger.Info("Ignoring webhook event", "event", string(event.Type))
		}

		response.Success(w, http.StatusOK, map[string]string{"received": "true"})
	}
}
