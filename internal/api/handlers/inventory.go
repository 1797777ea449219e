package handlers

import (
	"net/http"

	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/models"
	service "github.com/boxpack/boxpack/internal/services"
	"github.com/boxpack/boxpack/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
	validator        *validator.Validate
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService, validator: validator.New()}
}

func (h *InventoryHandler) RecordMovement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateStockMovementRequest
		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		movement, err := h.inventoryService.RecordMovement(r.Context(), &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, movement)
	}
}

func (h *InventoryHandler) ListMovements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		materialID, err := pathID(r, "id")
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid material id"))

			return
		}

		page := queryInt(r, "page", 1)
		size := queryInt(r, "size", 20)

		history, err := h.inventoryService.ListMovements(r.Context(), materialID, page, size)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, history)
	}
}
