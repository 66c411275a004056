// Package db - persistence layer
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/alwitt/goutils"
	"github.com/alwitt/qrbook/models"
	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CommonListEntryQueryFilter common query filter when listing data entries
type CommonListEntryQueryFilter struct {
	Limit  *int
	Offset *int
}

// SystemEventQueryFilter audit event query filter conditions
type SystemEventQueryFilter struct {
	CommonListEntryQueryFilter
	// EventTypes the specific event types to query for
	EventTypes []models.SystemEventTypeENUMType
	// EventsAfter filter for events after this timestamp
	EventsAfter *time.Time
	// EventsBefore filter for events before this timestamp
	EventsBefore *time.Time
}

// RecordQueryFilter QR record query filter conditions
type RecordQueryFilter struct {
	CommonListEntryQueryFilter
	// Kinds fetch only records of these kinds
	Kinds []models.KindENUMType
	// FolderName fetch only records in this folder
	FolderName *string
	// FavoritesOnly fetch only favorited records
	FavoritesOnly bool
}

// ScanEventQueryFilter scan event query filter conditions
type ScanEventQueryFilter struct {
	CommonListEntryQueryFilter
	// RecordID fetch only scans of this record
	RecordID *string
}

// Database the database handle to interacting with the data base
type Database interface {
	// ------------------------------------------------------------------------------------
	// System audit events

	/*
		ListSystemEvents list captured system events

			@param ctx context.Context - execution context
			@param filters SystemEventQueryFilter - entry listing filter
			@return list of system events
	*/
	ListSystemEvents(
		ctx context.Context, filters SystemEventQueryFilter,
	) ([]models.SystemEventAudit, error)

	// ------------------------------------------------------------------------------------
	// QR records

	/*
		DefineNewRecord insert one new QR record

			@param ctx context.Context - execution context
			@param record models.QRRecord - the record
			@returns the stored record
	*/
	DefineNewRecord(ctx context.Context, record models.QRRecord) (models.QRRecord, error)

	/*
		DefineNewRecords insert a batch of new QR records

			@param ctx context.Context - execution context
			@param records []models.QRRecord - the records
			@returns the stored records
	*/
	DefineNewRecords(ctx context.Context, records []models.QRRecord) ([]models.QRRecord, error)

	/*
		GetRecord fetch a QR record by ID

			@param ctx context.Context - execution context
			@param recordID string - record ID
			@returns record entry
	*/
	GetRecord(ctx context.Context, recordID string) (models.QRRecord, error)

	/*
		ListRecords list QR records, newest first

			@param ctx context.Context - execution context
			@param filters RecordQueryFilter - entry listing filter
			@return list of records
	*/
	ListRecords(ctx context.Context, filters RecordQueryFilter) ([]models.QRRecord, error)

	/*
		UpdateRecord overwrite a stored QR record

			@param ctx context.Context - execution context
			@param record models.QRRecord - the new content of the record
	*/
	UpdateRecord(ctx context.Context, record models.QRRecord) error

	/*
		DeleteRecord delete a QR record and its scan history

			@param ctx context.Context - execution context
			@param recordID string - record ID
	*/
	DeleteRecord(ctx context.Context, recordID string) error

	// ------------------------------------------------------------------------------------
	// Scan events

	/*
		RecordScanEvent record one scan of a QR record. The record's scan count is incremented
		and its last-used timestamp set.

			@param ctx context.Context - execution context
			@param recordID string - record ID
			@param timestamp time.Time - when the scan happened
			@returns the scan event
	*/
	RecordScanEvent(
		ctx context.Context, recordID string, timestamp time.Time,
	) (models.ScanEvent, error)

	/*
		ListScanEvents list scan events, newest first

			@param ctx context.Context - execution context
			@param filters ScanEventQueryFilter - entry listing filter
			@return list of scan events
	*/
	ListScanEvents(ctx context.Context, filters ScanEventQueryFilter) ([]models.ScanEvent, error)

	// ------------------------------------------------------------------------------------
	// Folders

	/*
		DefineNewFolder define a new folder, placed after the existing folders

			@param ctx context.Context - execution context
			@param name string - folder name
			@param iconName string - display icon; empty for the default
			@param colorHex string - display color; empty for the default
			@returns folder entry
	*/
	DefineNewFolder(
		ctx context.Context, name string, iconName string, colorHex string,
	) (models.Folder, error)

	/*
		GetFolderByName fetch a folder by name

			@param ctx context.Context - execution context
			@param name string - folder name
			@returns folder entry
	*/
	GetFolderByName(ctx context.Context, name string) (models.Folder, error)

	/*
		ListFolders list folders by sort order

			@param ctx context.Context - execution context
			@return list of folders
	*/
	ListFolders(ctx context.Context) ([]models.Folder, error)

	/*
		DeleteFolder delete a folder. Records in the folder are kept and moved out of it.

			@param ctx context.Context - execution context
			@param folderID string - folder ID
	*/
	DeleteFolder(ctx context.Context, folderID string) error
}

// databaseImpl implements Database
type databaseImpl struct {
	goutils.Component
	db        *gorm.DB
	validator *validator.Validate
}

// newDatabase define a new database client
func newDatabase(_ context.Context, sqlClient *gorm.DB) (Database, error) {
	logTags := log.Fields{"package": "qrbook", "module": "db", "component": "db-client"}

	validate, err := models.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to install custom validation macros [%w]", err)
	}

	instance := &databaseImpl{
		Component: goutils.Component{
			LogTags: logTags,
			LogTagModifiers: []goutils.LogMetadataModifier{
				goutils.ModifyLogMetadataByRestRequestParam,
			},
		},
		db:        sqlClient,
		validator: validate,
	}

	return instance, nil
}

// applyPaging apply the common list filters to a query
func applyPaging(query *gorm.DB, filters CommonListEntryQueryFilter) *gorm.DB {
	if filters.Limit != nil {
		query = query.Limit(*filters.Limit)
	}
	if filters.Offset != nil {
		query = query.Offset(*filters.Offset)
	}
	return query
}
