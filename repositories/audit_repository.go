package repositories

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/mxchen/qrpanel/models"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Append(record *models.AuditRecord) error
	CountByAction(action string) (int, error)
	DistinctIPCount() (int, error)
	GetAll() ([]models.AuditRecord, error)
}

// sqliteAuditRepository implements AuditRepository over the single
// shared database handle. The mutex serializes all access so that
// concurrent handlers cannot interleave writes on the handle.
type sqliteAuditRepository struct {
	db *sql.DB
	mu sync.Mutex
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Append inserts a new audit record and fills in its ID and timestamp
func (r *sqliteAuditRepository) Append(record *models.AuditRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	query := `
		INSERT INTO audit_log (ip, timestamp, action, details)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query, record.IP, record.Timestamp, record.Action, record.Details)
	if err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get audit record id: %w", err)
	}
	record.ID = id

	return nil
}

// CountByAction returns the number of records with the given action
func (r *sqliteAuditRepository) CountByAction(action string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM audit_log WHERE action = ?", action).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count audit records: %w", err)
	}

	return count, nil
}

// DistinctIPCount returns the number of distinct client IPs seen
func (r *sqliteAuditRepository) DistinctIPCount() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int
	err := r.db.QueryRow("SELECT COUNT(DISTINCT ip) FROM audit_log").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count distinct ips: %w", err)
	}

	return count, nil
}

// GetAll returns every audit record, oldest first
func (r *sqliteAuditRepository) GetAll() ([]models.AuditRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`
		SELECT id, ip, timestamp, action, details
		FROM audit_log
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit records: %w", err)
	}
	defer rows.Close()

	var records []models.AuditRecord
	for rows.Next() {
		var record models.AuditRecord
		if err := rows.Scan(&record.ID, &record.IP, &record.Timestamp, &record.Action, &record.Details); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
