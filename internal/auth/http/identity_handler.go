package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gharrison91/camp-connect-sub002/internal/auth/http/dto"
	apperrors "github.com/gharrison91/camp-connect-sub002/internal/errors"
	"github.com/gharrison91/camp-connect-sub002/internal/httputil"
)

// IdentityHandler handles identity introspection requests.
type IdentityHandler struct {
	logger *slog.Logger
}

// NewIdentityHandler creates a new identity handler.
func NewIdentityHandler(logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		logger: logger,
	}
}

// MeHandler returns the resolved identity for the current request.
// GET /v1/me (staff) and GET /v1/portal/me (guardians) both route here; the
// authentication middleware on each group determines the resolution path.
func (h *IdentityHandler) MeHandler(c *gin.Context) {
	identity, ok := GetIdentity(c.Request.Context())
	if !ok || identity == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthenticated, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewIdentityResponse(identity))
}
