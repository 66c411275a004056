package db

import (
	"context"

	"github.com/alwitt/qrbook/models"
	"gorm.io/gorm"
)

// DefineTables prepare a database with the library tables; existing tables are migrated
func DefineTables(_ context.Context, db *gorm.DB) error {
	return db.AutoMigrate(
		SystemEventAuditDBEntry{},
		QRRecordDBEntry{},
		ScanEventDBEntry{},
		FolderDBEntry{},
	)
}

// --------------------------------------------------------------------------------------
// System audit events

// SystemEventAuditDBEntry system audit event DB entry
type SystemEventAuditDBEntry struct {
	models.SystemEventAudit
}

// TableName hard code table name
func (SystemEventAuditDBEntry) TableName() string {
	return "system_audit_events"
}

// --------------------------------------------------------------------------------------
// QR records

// QRRecordDBEntry QR record DB entry
type QRRecordDBEntry struct {
	models.QRRecord
}

// TableName hard code table name
func (QRRecordDBEntry) TableName() string {
	return "qr_records"
}

// ScanEventDBEntry scan event DB entry
type ScanEventDBEntry struct {
	models.ScanEvent
	Record QRRecordDBEntry `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecordID" validate:"-"`
}

// TableName hard code table name
func (ScanEventDBEntry) TableName() string {
	return "scan_events"
}

// --------------------------------------------------------------------------------------
// Folders

// FolderDBEntry folder DB entry
type FolderDBEntry struct {
	models.Folder
}

// TableName hard code table name
func (FolderDBEntry) TableName() string {
	return "folders"
}
