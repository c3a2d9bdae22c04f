package controllers

import (
	"bytes"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/mxchen/qrpanel/services"
)

// StatsController serves aggregate statistics and the audit CSV export
type StatsController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewStatsController creates a new stats controller
func NewStatsController(services *services.Services, logger *zap.Logger) *StatsController {
	return &StatsController{
		services: services,
		logger:   logger,
	}
}

// Index handles GET /stats
func (c *StatsController) Index(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, c.services.Audit.Snapshot())
}

// Export handles GET /logs/export
func (c *StatsController) Export(w http.ResponseWriter, r *http.Request) {
	// Buffer first so a store failure can still produce a clean 500
	var buf bytes.Buffer
	if err := c.services.Audit.ExportCSV(&buf); err != nil {
		c.logger.Error("failed to export audit log", zap.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": "failed to export logs"})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="logs.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
