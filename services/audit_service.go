package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mxchen/qrpanel/models"
	"github.com/mxchen/qrpanel/repositories"
)

// csvHeader is the fixed first row of every export.
var csvHeader = []string{"ID", "IP", "Timestamp", "Action", "Details"}

// AuditService records request outcomes and aggregates them. Logging
// is best-effort: a failing store must never fail the request that
// triggered the write.
type AuditService interface {
	Log(ip, action, details string)
	Snapshot() models.StatsSnapshot
	ExportCSV(w io.Writer) error
}

type auditService struct {
	repo   repositories.AuditRepository
	logger *zap.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditRepository, logger *zap.Logger) AuditService {
	return &auditService{repo: repo, logger: logger}
}

// Log appends an audit record. Persistence failures are logged and
// swallowed so the primary operation's response is never blocked.
func (s *auditService) Log(ip, action, details string) {
	record := &models.AuditRecord{
		IP:      ip,
		Action:  action,
		Details: details,
	}

	if err := s.repo.Append(record); err != nil {
		s.logger.Error("failed to append audit record",
			zap.String("ip", ip),
			zap.String("action", action),
			zap.Error(err))
	}
}

// Snapshot aggregates counts by action plus the distinct-IP count. A
// failing store yields all zeros rather than an error.
func (s *auditService) Snapshot() models.StatsSnapshot {
	var snapshot models.StatsSnapshot
	var err error

	if snapshot.Generations, err = s.repo.CountByAction(models.ActionGenerate); err != nil {
		s.logger.Error("failed to compute stats", zap.Error(err))
		return models.StatsSnapshot{}
	}
	if snapshot.Decodings, err = s.repo.CountByAction(models.ActionDecode); err != nil {
		s.logger.Error("failed to compute stats", zap.Error(err))
		return models.StatsSnapshot{}
	}
	if snapshot.OCRExtractions, err = s.repo.CountByAction(models.ActionOCR); err != nil {
		s.logger.Error("failed to compute stats", zap.Error(err))
		return models.StatsSnapshot{}
	}
	if snapshot.UniqueUsers, err = s.repo.DistinctIPCount(); err != nil {
		s.logger.Error("failed to compute stats", zap.Error(err))
		return models.StatsSnapshot{}
	}

	return snapshot
}

// ExportCSV writes every audit record, oldest first, preceded by the
// fixed header row.
func (s *auditService) ExportCSV(w io.Writer) error {
	records, err := s.repo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load audit records: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.FormatInt(record.ID, 10),
			record.IP,
			record.Timestamp.Format(time.RFC3339),
			record.Action,
			record.Details,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
