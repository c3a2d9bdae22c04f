package models

import "time"

// Action vocabulary for audit records. Every processed request writes
// exactly one of these; rate-limited rejections write none.
const (
	ActionGenerate      = "generate"
	ActionGenerateError = "generate_error"
	ActionDecode        = "decode"
	ActionDecodeError   = "decode_error"
	ActionOCR           = "ocr"
	ActionOCRError      = "ocr_error"
	ActionAccess        = "access"
)

// AuditRecord represents one immutable row of the request audit trail
type AuditRecord struct {
	ID        int64
	IP        string
	Timestamp time.Time
	Action    string
	Details   string
}

// StatsSnapshot holds aggregate counts derived from the audit trail.
// It is always recomputed on demand, never persisted.
type StatsSnapshot struct {
	Generations    int `json:"generations"`
	Decodings      int `json:"decodings"`
	OCRExtractions int `json:"ocr_extractions"`
	UniqueUsers    int `json:"unique_users"`
}
