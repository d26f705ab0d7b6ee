package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/gharrison91/camp-connect-sub002/internal/auth/domain"
	"github.com/gharrison91/camp-connect-sub002/internal/auth/http/dto"
)

// PermissionHandler handles permission catalog requests.
type PermissionHandler struct {
	logger *slog.Logger
}

// NewPermissionHandler creates a new permission handler.
func NewPermissionHandler(logger *slog.Logger) *PermissionHandler {
	return &PermissionHandler{
		logger: logger,
	}
}

// ListHandler returns the permission catalog grouped by module and resource.
// GET /v1/permissions - the catalog is process-wide and identical for every
// tenant, so the response carries no tenant data.
func (h *PermissionHandler) ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PermissionCatalogResponse{
		Permissions: authDomain.GroupedPermissions(),
	})
}
