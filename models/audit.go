package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// SystemEventTypeENUMType system event type ENUM value type
type SystemEventTypeENUMType string

const (
	// SystemEventTypeAddNewRecord new QR record is added
	SystemEventTypeAddNewRecord SystemEventTypeENUMType = "ADD_NEW_RECORD"

	// SystemEventTypeUpdateRecord QR record is edited
	SystemEventTypeUpdateRecord SystemEventTypeENUMType = "UPDATE_RECORD"

	// SystemEventTypeDeleteRecord QR record is deleted
	SystemEventTypeDeleteRecord SystemEventTypeENUMType = "DELETE_RECORD"

	// SystemEventTypeBulkImport a batch of QR records is imported
	SystemEventTypeBulkImport SystemEventTypeENUMType = "BULK_IMPORT"

	// SystemEventTypeAddNewFolder new folder is added
	SystemEventTypeAddNewFolder SystemEventTypeENUMType = "ADD_NEW_FOLDER"

	// SystemEventTypeDeleteFolder folder is deleted
	SystemEventTypeDeleteFolder SystemEventTypeENUMType = "DELETE_FOLDER"
)

// SystemEventAudit recording of events occurring at the system level
type SystemEventAudit struct {
	// ID audit entry ID
	ID string `json:"id" gorm:"column:id;primaryKey;unique" validate:"required"`
	// EventType system event type
	EventType SystemEventTypeENUMType `json:"type" gorm:"column:type;not null" validate:"required,system_event_type"`
	// Metadata a metadata relating to the event
	Metadata datatypes.JSON `json:"metadata,omitempty" gorm:"column:metadata;default:null"`
	// CreatedAt entry creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt entry update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}

// ParseMetadata parse the metadata based on the event type
func (a SystemEventAudit) ParseMetadata(validator *validator.Validate) (interface{}, error) {
	switch a.EventType {
	// Record related system audit events
	case SystemEventTypeAddNewRecord:
		fallthrough
	case SystemEventTypeUpdateRecord:
		fallthrough
	case SystemEventTypeDeleteRecord:
		var parsed SystemEventRecordRelated
		if err := json.Unmarshal(a.Metadata, &parsed); err != nil {
			return nil, fmt.Errorf("system event '%s' metadata parse failed [%w]", a.EventType, err)
		}
		return parsed, validator.Struct(&parsed)

	case SystemEventTypeBulkImport:
		var parsed SystemEventBulkImportRelated
		if err := json.Unmarshal(a.Metadata, &parsed); err != nil {
			return nil, fmt.Errorf("system event '%s' metadata parse failed [%w]", a.EventType, err)
		}
		return parsed, validator.Struct(&parsed)

	// Folder related system audit events
	case SystemEventTypeAddNewFolder:
		fallthrough
	case SystemEventTypeDeleteFolder:
		var parsed SystemEventFolderRelated
		if err := json.Unmarshal(a.Metadata, &parsed); err != nil {
			return nil, fmt.Errorf("system event '%s' metadata parse failed [%w]", a.EventType, err)
		}
		return parsed, validator.Struct(&parsed)
	}
	return nil, nil
}

// SystemEventRecordRelated system event metadata related to a QR record
type SystemEventRecordRelated struct {
	// RecordID the record ID
	RecordID string `json:"record_id" validate:"required,uuid_rfc4122"`
	// RecordTitle the record title
	RecordTitle string `json:"record_title" validate:"required"`
	// Kind the record kind
	Kind KindENUMType `json:"kind" validate:"required,qr_kind"`
}

// SystemEventBulkImportRelated system event metadata related to a bulk import
type SystemEventBulkImportRelated struct {
	// RecordIDs the records committed by the import
	RecordIDs []string `json:"record_ids" validate:"required,min=1,dive,uuid_rfc4122"`
}

// SystemEventFolderRelated system event metadata related to a folder
type SystemEventFolderRelated struct {
	// FolderID the folder ID
	FolderID string `json:"folder_id" validate:"required,uuid_rfc4122"`
	// FolderName the folder name
	FolderName string `json:"folder_name" validate:"required"`
}
