package models

import (
	"strings"
	"time"
)

// ErrorCorrectionENUMType QR symbol error correction level ENUM value type
type ErrorCorrectionENUMType string

const (
	// ErrorCorrectionLow recovers 7% of the symbol
	ErrorCorrectionLow ErrorCorrectionENUMType = "L"
	// ErrorCorrectionMedium recovers 15% of the symbol
	ErrorCorrectionMedium ErrorCorrectionENUMType = "M"
	// ErrorCorrectionQuartile recovers 25% of the symbol
	ErrorCorrectionQuartile ErrorCorrectionENUMType = "Q"
	// ErrorCorrectionHigh recovers 30% of the symbol
	ErrorCorrectionHigh ErrorCorrectionENUMType = "H"
)

// DefaultErrorCorrection level used when none, or an unrecognized one, is given
const DefaultErrorCorrection = ErrorCorrectionMedium

// Label human readable name of the level
func (e ErrorCorrectionENUMType) Label() string {
	switch e {
	case ErrorCorrectionLow:
		return "Low (7%)"
	case ErrorCorrectionMedium:
		return "Medium (15%)"
	case ErrorCorrectionQuartile:
		return "Quartile (25%)"
	case ErrorCorrectionHigh:
		return "High (30%)"
	}
	return string(e)
}

// IsValid whether the level is one of L, M, Q, H
func (e ErrorCorrectionENUMType) IsValid() bool {
	switch e {
	case ErrorCorrectionLow, ErrorCorrectionMedium, ErrorCorrectionQuartile, ErrorCorrectionHigh:
		return true
	}
	return false
}

// ParseErrorCorrection parse a level, case-insensitive. Unrecognized values fall back to M.
func ParseErrorCorrection(raw string) ErrorCorrectionENUMType {
	level := ErrorCorrectionENUMType(strings.ToUpper(strings.TrimSpace(raw)))
	if level.IsValid() {
		return level
	}
	return DefaultErrorCorrection
}

// QRRecord one saved QR code
type QRRecord struct {
	// ID record ID
	ID string `json:"id" gorm:"column:id;primaryKey;unique" validate:"required,uuid_rfc4122"`

	// Title display title
	Title string `json:"title" gorm:"column:title;not null" validate:"required,max=200"`

	// Payload the exact string embedded in the QR symbol
	Payload string `json:"data" gorm:"column:data;not null" validate:"required"`

	// Kind how the payload is interpreted
	Kind KindENUMType `json:"type" gorm:"column:type;not null;index" validate:"required,qr_kind"`

	// Tags ordered set of tags
	Tags []string `json:"tags" gorm:"column:tags;serializer:json" validate:"omitempty,unique,dive,qr_tag"`

	// IsFavorite whether the record is a favorite
	IsFavorite bool `json:"is_favorite" gorm:"column:is_favorite;not null;default:false"`

	// ErrorCorrection error correction level used by the renderer
	ErrorCorrection ErrorCorrectionENUMType `json:"error_correction" gorm:"column:error_correction;not null" validate:"required,error_correction"`

	// SizePx rendered image size in pixels
	SizePx int `json:"size_px" gorm:"column:size_px;not null" validate:"gt=0"`

	// OneTimeUse whether the code is meant to be used only once
	OneTimeUse bool `json:"one_time_use" gorm:"column:one_time_use;not null;default:false"`

	// ExpiresAt optional expiration timestamp
	ExpiresAt *time.Time `json:"expires_at,omitempty" gorm:"column:expires_at;default:null"`

	// ScanCount number of recorded scans / displays
	ScanCount int `json:"scan_count" gorm:"column:scan_count;not null;default:0" validate:"gte=0"`

	// LastUsedAt last time the record was scanned / displayed
	LastUsedAt *time.Time `json:"last_used_at,omitempty" gorm:"column:last_used_at;default:null"`

	// FolderName the folder the record is placed in; empty if none
	FolderName string `json:"folder_name" gorm:"column:folder_name;not null;default:'';index"`

	// ForegroundHex optional foreground color, 6 hex digits
	ForegroundHex string `json:"foreground_hex,omitempty" gorm:"column:foreground_hex" validate:"omitempty,hexadecimal,len=6"`

	// BackgroundHex optional background color, 6 hex digits
	BackgroundHex string `json:"background_hex,omitempty" gorm:"column:background_hex" validate:"omitempty,hexadecimal,len=6"`

	// LogoImage optional logo composited over the symbol by the renderer
	LogoImage []byte `json:"logo_image,omitempty" gorm:"column:logo_image;default:null"`

	// CreatedAt entry creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt entry update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}

// HasTag whether the record carries the tag
func (r QRRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsExpired whether the record has an expiration before the given time
func (r QRRecord) IsExpired(now time.Time) bool {
	return r.ExpiresAt != nil && r.ExpiresAt.Before(now)
}

// IsConsumed whether a one time use record has been used
func (r QRRecord) IsConsumed() bool {
	return r.OneTimeUse && r.ScanCount > 0
}

// ScanEvent one recorded scan / display of a record
type ScanEvent struct {
	// ID event ID
	ID string `json:"id" gorm:"column:id;primaryKey;unique" validate:"required"`

	// RecordID the record scanned
	RecordID string `json:"record_id" gorm:"column:record_id;not null;index" validate:"required,uuid_rfc4122"`

	// Timestamp when the scan happened
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp;not null" validate:"required"`

	// CreatedAt entry creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt entry update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	// DefaultFolderIcon icon of a new folder
	DefaultFolderIcon = "folder.fill"
	// DefaultFolderColor color of a new folder
	DefaultFolderColor = "7C3AED"
)

// Folder a named grouping of records
type Folder struct {
	// ID folder ID
	ID string `json:"id" gorm:"column:id;primaryKey;unique" validate:"required,uuid_rfc4122"`

	// Name folder name, referenced by QRRecord.FolderName
	Name string `json:"name" gorm:"column:name;not null;unique" validate:"required,max=200"`

	// IconName display icon
	IconName string `json:"icon_name" gorm:"column:icon_name;not null" validate:"required"`

	// ColorHex display color, 6 hex digits
	ColorHex string `json:"color_hex" gorm:"column:color_hex;not null" validate:"required,hexadecimal,len=6"`

	// SortOrder display position
	SortOrder int `json:"sort_order" gorm:"column:sort_order;not null;default:0" validate:"gte=0"`

	// CreatedAt entry creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt entry update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}
