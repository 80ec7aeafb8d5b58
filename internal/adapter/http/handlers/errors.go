package handlers

import (
	"errors"
	"net/http"

	"solar_pipeline/internal/domain/pipeline"
	"solar_pipeline/internal/infrastructure/logging"
	"solar_pipeline/internal/usecase"
	"solar_pipeline/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func mapError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", verr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidProductID):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrDuplicateClientID):
		return pkg.NewDomainErrorSimple("CLIENT_ALREADY_EXISTS", "A client with this id already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, pipeline.ErrTransitionNotAllowed):
		return pkg.NewDomainErrorSimple("TRANSITION_NOT_ALLOWED", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// abortWithError writes the mapped error. Internal errors are logged with
// the request path; the cause never reaches the response body.
func abortWithError(c *gin.Context, handler string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logging.LogError(logging.GetLogger(), "handlers", handler, c.Request.Method+" "+c.FullPath(), c.Params, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
