package models

import (
	"time"
)

// AuditEvent is an append-only record of a data-mutating action. ClientName
// is a snapshot of the client's name at event time and is never updated
// retroactively, so events remain readable after the client is deleted.
type AuditEvent struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp"`
	User       string    `gorm:"size:255;not null" json:"user"`
	Action     string    `gorm:"size:20;not null" json:"action"`
	ClientID   string    `gorm:"size:36;index" json:"client_id"`
	ClientName string    `gorm:"size:255" json:"client_name"`
	Details    string    `gorm:"type:text" json:"details"`
}

// TableName specifies the table name for AuditEvent
func (AuditEvent) TableName() string {
	return "audit_events"
}

// Audit action constants
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)
