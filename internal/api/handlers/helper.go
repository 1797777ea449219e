package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/boxpack/boxpack/internal/api/middleware"
	appErrors "github.com/boxpack/boxpack/internal/errors"
	"github.com/boxpack/boxpack/internal/models"
	"github.com/boxpack/boxpack/internal/utils"
	"github.com/boxpack/boxpack/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// parseAndValidate decodes the body into dest and runs struct validation,
// writing the error response itself. Returns false when the handler should
// bail out.
func parseAndValidate(w http.ResponseWriter, r *http.Request, dest any, validate *validator.Validate) bool {
	if err := utils.DecodeJSONBody(r, dest); err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithError(err))

		return false
	}

	if err := utils.ValidateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
		} else {
			response.Error(w, appErrors.BadRequestError("Invalid request body").WithError(err))
		}

		return false
	}

	return true
}

func claimsOrFail(w http.ResponseWriter, r *http.Request) (*models.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, appErrors.UnauthorizedError("Authentication required"))

		return nil, false
	}

	return claims, true
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
