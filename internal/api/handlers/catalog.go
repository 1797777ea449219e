package handlers

import (
	"net/http"

	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/models"
	service "github.com/boxpack/boxpack/internal/services"
	"github.com/boxpack/boxpack/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: validator.New()}
}

func (h *CatalogHandler) ListMaterials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly := r.URL.Query().Get("include_inactive") != "true"

		materials, err := h.catalogService.ListMaterials(r.Context(), activeOnly)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, materials)
	}
}

func (h *CatalogHandler) GetMaterial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid material id"))

			return
		}

		material, err := h.catalogService.GetMaterial(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, material)
	}
}

func (h *CatalogHandler) CreateMaterial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateMaterialRequest
		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		material, err := h.catalogService.CreateMaterial(r.Context(), &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, material)
	}
}

func (h *CatalogHandler) UpdateMaterial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid material id"))

			return
		}

		var req models.UpdateMaterialRequest
		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		material, err := h.catalogService.UpdateMaterial(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, material)
	}
}

func (h *CatalogHandler) ListThicknesses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		materialID, err := pathID(r, "id")
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid material id"))

			return
		}

		thicknesses, err := h.catalogService.ListThicknesses(r.Context(), materialID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, thicknesses)
	}
}

func (h *CatalogHandler) CreateThickness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		materialID, err := pathID(r, "id")
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid material id"))

			return
		}

		var req models.CreateThicknessRequest
		req.MaterialID = materialID

		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		thickness, err := h.catalogService.CreateThickness(r.Context(), materialID, &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, thickness)
	}
}

func (h *CatalogHandler) UpdateThickness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid thickness id"))

			return
		}

		var req models.UpdateThicknessRequest
		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		thickness, err := h.catalogService.UpdateThickness(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, thickness)
	}
}

func (h *CatalogHandler) ListOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly := r.URL.Query().Get("include_inactive") != "true"

		options, err := h.catalogService.ListOptions(r.Context(), activeOnly)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, options)
	}
}

func (h *CatalogHandler) GetOption() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid option id"))

			return
		}

		option, err := h.catalogService.GetOption(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, option)
	}
}

func (h *CatalogHandler) CreateOption() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateOptionRequest
		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		option, err := h.catalogService.CreateOption(r.Context(), &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, option)
	}
}

func (h *CatalogHandler) UpdateOption() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid option id"))

			return
		}

		var req models.UpdateOptionRequest
		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		option, err := h.catalogService.UpdateOption(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, option)
	}
}
