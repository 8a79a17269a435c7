package handlers

import (
	"net/http"
	"time"

	"subscription-tracker/internal/errors"
	"subscription-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthResponse is the body of a passing health check. Status is
// "degraded" when the database answers but the directory cannot be read.
type HealthResponse struct {
	Status           string `json:"status"`
	Database         string `json:"database"`
	Directory        string `json:"directory"`
	DirectoryOptions int    `json:"directoryOptions"`
	Time             string `json:"time"`
}

// HealthCheckHandler reports whether the API can serve requests
type HealthCheckHandler struct {
	db        *gorm.DB
	directory services.DirectoryServiceInterface
}

func NewHealthCheckHandler(db *gorm.DB, directory services.DirectoryServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, directory: directory}
}

// HealthCheck pings the database and loads the directory
// @Summary Health check
// @Description Database connectivity decides the status code; an unreadable directory only degrades the report
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Healthy or degraded"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Database unreachable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx := c.Request().Context()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	resp := HealthResponse{
		Status:    "healthy",
		Database:  "up",
		Directory: "up",
		Time:      time.Now().UTC().Format(time.RFC3339),
	}

	snapshot, err := h.directory.GetSnapshot(ctx)
	if err != nil {
		resp.Status = "degraded"
		resp.Directory = "unavailable"
	} else {
		resp.DirectoryOptions = len(snapshot.Options)
	}

	return c.JSON(http.StatusOK, resp)
}
