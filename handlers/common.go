package handlers

import (
	"HRAS/middlewares"
	"HRAS/models"
	"HRAS/services"
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
)

// currentActor rebuilds the acting user from the request context populated by
// the token middleware. A false return means the response is already written.
func currentActor(c *gin.Context) (models.Actor, bool) {
	ctx := c.Request.Context()

	idStr, err := middlewares.ExtractUserIDFromContext(ctx)
	if err != nil {
		middlewares.HttpError(c, "Unauthorized", http.StatusUnauthorized, err)
		return models.Actor{}, false
	}
	role, err := middlewares.ExtractUserRoleFromContext(ctx)
	if err != nil {
		middlewares.HttpError(c, "Unauthorized", http.StatusUnauthorized, err)
		return models.Actor{}, false
	}
	hospitalID, err := middlewares.ExtractHospitalIDFromContext(ctx)
	if err != nil {
		middlewares.HttpError(c, "Unauthorized", http.StatusUnauthorized, err)
		return models.Actor{}, false
	}

	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		middlewares.HttpError(c, "Unauthorized", http.StatusUnauthorized, err)
		return models.Actor{}, false
	}
	return models.Actor{UserID: userID, Role: role, HospitalID: hospitalID}, true
}

// serviceError translates service errors into HTTP responses.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		middlewares.HttpError(c, "Record not found", http.StatusNotFound, err)
	case errors.Is(err, services.ErrForbidden), errors.Is(err, services.ErrNotAssigned):
		middlewares.HttpError(c, err.Error(), http.StatusForbidden, err)
	default:
		var validationErrs validation.Errors
		if errors.As(err, &validationErrs) {
			middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
			return
		}
		middlewares.HttpError(c, err.Error(), http.StatusInternalServerError, err)
	}
}

// pathID parses a numeric path parameter. A false return means the response
// is already written.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		middlewares.HttpError(c, "Invalid "+name, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}
