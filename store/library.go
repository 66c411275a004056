// Package store - QR library controllers
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alwitt/goutils"
	"github.com/alwitt/qrbook/bulkimport"
	"github.com/alwitt/qrbook/creation"
	"github.com/alwitt/qrbook/db"
	"github.com/alwitt/qrbook/export"
	"github.com/alwitt/qrbook/models"
	"github.com/alwitt/qrbook/query"
	"github.com/apex/log"
	"golang.org/x/text/language"
)

// ErrRecordExpired the record is past its expiration
var ErrRecordExpired = errors.New("QR code has expired")

// ErrRecordConsumed the one time use record was already used
var ErrRecordConsumed = errors.New("one time QR code was already used")

// Library the saved QR code library
type Library interface {
	bulkimport.BatchWriter

	/*
		Import run a bulk import document through the import pipeline

			@param ctx context.Context - execution context
			@param raw []byte - the document
			@returns the import result
	*/
	Import(ctx context.Context, raw []byte) (bulkimport.Result, error)

	/*
		Query compute a library view over the stored records

			@param ctx context.Context - execution context
			@param mode query.ViewModeENUMType - library view
			@param state query.State - search, filter, and sort selection
			@returns the records in display order
	*/
	Query(
		ctx context.Context, mode query.ViewModeENUMType, state query.State,
	) ([]models.QRRecord, error)

	/*
		AllTags list the distinct tags across the library, sorted

			@param ctx context.Context - execution context
			@returns the tags
	*/
	AllTags(ctx context.Context) ([]string, error)

	/*
		GetRecord fetch one record

			@param ctx context.Context - execution context
			@param recordID string - record ID
			@returns the record
	*/
	GetRecord(ctx context.Context, recordID string) (models.QRRecord, error)

	// NewForm start a create session with the library defaults
	NewForm() creation.Form

	/*
		EditForm start an edit session for a stored record

			@param ctx context.Context - execution context
			@param recordID string - record ID
			@returns the populated form
	*/
	EditForm(ctx context.Context, recordID string) (creation.Form, error)

	/*
		SaveRecord save a create or edit session. A folder named by the form which does not
		exist yet is defined.

			@param ctx context.Context - execution context
			@param recordID string - the record being edited; empty to create a new record
			@param form creation.Form - the session
			@returns the stored record
	*/
	SaveRecord(ctx context.Context, recordID string, form creation.Form) (models.QRRecord, error)

	/*
		DeleteRecord delete a record and its scan history

			@param ctx context.Context - execution context
			@param recordID string - record ID
	*/
	DeleteRecord(ctx context.Context, recordID string) error

	/*
		ToggleFavorite flip the favorite flag of a record

			@param ctx context.Context - execution context
			@param recordID string - record ID
			@returns the updated record
	*/
	ToggleFavorite(ctx context.Context, recordID string) (models.QRRecord, error)

	/*
		MoveToFolder place a record into a folder, defining the folder if needed

			@param ctx context.Context - execution context
			@param recordID string - record ID
			@param folderName string - the folder; empty to remove the record from its folder
			@returns the updated record
	*/
	MoveToFolder(ctx context.Context, recordID string, folderName string) (models.QRRecord, error)

	/*
		RecordScan record one scan / display of a record. Expired records and used one time
		records are refused.

			@param ctx context.Context - execution context
			@param recordID string - record ID
			@returns the scan event
	*/
	RecordScan(ctx context.Context, recordID string) (models.ScanEvent, error)

	/*
		ScanHistory list the scans of a record, newest first

			@param ctx context.Context - execution context
			@param recordID string - record ID
			@returns the scan events
	*/
	ScanHistory(ctx context.Context, recordID string) ([]models.ScanEvent, error)

	/*
		Export produce the export document of the entire library

			@param ctx context.Context - execution context
			@returns the JSON document
	*/
	Export(ctx context.Context) ([]byte, error)

	/*
		Favorites produce the favorites feed consumed by widgets

			@param ctx context.Context - execution context
			@returns the feed entries
	*/
	Favorites(ctx context.Context) ([]export.FavoriteEntry, error)

	/*
		DefineFolder define a new folder

			@param ctx context.Context - execution context
			@param name string - folder name
			@param iconName string - display icon; empty for the default
			@param colorHex string - display color; empty for the default
			@returns the folder
	*/
	DefineFolder(
		ctx context.Context, name string, iconName string, colorHex string,
	) (models.Folder, error)

	// ListFolders list folders by display order
	ListFolders(ctx context.Context) ([]models.Folder, error)

	/*
		DeleteFolder delete a folder; its records are kept

			@param ctx context.Context - execution context
			@param folderID string - folder ID
	*/
	DeleteFolder(ctx context.Context, folderID string) error

	/*
		AuditTrail list the library's audit events

			@param ctx context.Context - execution context
			@param filters db.SystemEventQueryFilter - event filter
			@returns the audit events
	*/
	AuditTrail(
		ctx context.Context, filters db.SystemEventQueryFilter,
	) ([]models.SystemEventAudit, error)
}

// LibraryParams library settings
type LibraryParams struct {
	// Persistence persistence layer client
	Persistence db.Client `validate:"required"`
	// DefaultSizePx rendered size of new records
	DefaultSizePx int `validate:"gt=0"`
	// DefaultErrorCorrection error correction of new records
	DefaultErrorCorrection models.ErrorCorrectionENUMType `validate:"required,error_correction"`
	// RecentLimit records shown by the recent view
	RecentLimit int `validate:"gt=0"`
	// Collation language used to order titles
	Collation language.Tag `validate:"-"`
	// CalendarLocation location of calendar wall-clock values
	CalendarLocation *time.Location `validate:"-"`
	// Clock time source; time.Now when not set
	Clock func() time.Time `validate:"-"`
}

// libraryImpl implements Library
type libraryImpl struct {
	goutils.Component

	persistence            db.Client
	importer               bulkimport.Importer
	engine                 query.Engine
	defaultSizePx          int
	defaultErrorCorrection models.ErrorCorrectionENUMType
	calendarLocation       *time.Location
	clock                  func() time.Time
}

/*
NewLibrary define a new QR library

	@param ctx context.Context - execution context
	@param params LibraryParams - library settings
	@returns library instance
*/
func NewLibrary(_ context.Context, params LibraryParams) (Library, error) {
	validate, err := models.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(&params); err != nil {
		return nil, fmt.Errorf("invalid library parameters [%w]", err)
	}

	if params.Clock == nil {
		params.Clock = time.Now
	}
	if params.CalendarLocation == nil {
		params.CalendarLocation = time.Local
	}

	logTags := log.Fields{"module": "store", "component": "library"}

	instance := &libraryImpl{
		Component: goutils.Component{
			LogTags: logTags,
			LogTagModifiers: []goutils.LogMetadataModifier{
				goutils.ModifyLogMetadataByRestRequestParam,
			},
		},
		persistence:            params.Persistence,
		defaultSizePx:          params.DefaultSizePx,
		defaultErrorCorrection: params.DefaultErrorCorrection,
		calendarLocation:       params.CalendarLocation,
		clock:                  params.Clock,
	}

	instance.importer, err = bulkimport.NewImporter(bulkimport.ImporterParams{
		DefaultSizePx:    params.DefaultSizePx,
		CalendarLocation: params.CalendarLocation,
		Clock:            params.Clock,
	}, instance)
	if err != nil {
		return nil, fmt.Errorf("failed to define bulk importer [%w]", err)
	}

	instance.engine, err = query.NewEngine(query.EngineParams{
		RecentLimit: params.RecentLimit, Collation: params.Collation,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to define query engine [%w]", err)
	}

	return instance, nil
}

// ====================================================================================
// Records

func (l *libraryImpl) CommitBatch(ctx context.Context, records []models.QRRecord) error {
	logTags := l.GetLogTagsForContext(ctx)
	return l.persistence.UseDatabaseInTransaction(
		ctx, func(ctx context.Context, dbClient db.Database) error {
			if _, err := dbClient.DefineNewRecords(ctx, records); err != nil {
				log.WithError(err).WithFields(logTags).Error("Failed to commit import batch")
				return err
			}
			log.WithFields(logTags).WithField("count", len(records)).Info("Committed import batch")
			return nil
		},
	)
}

func (l *libraryImpl) Import(ctx context.Context, raw []byte) (bulkimport.Result, error) {
	return l.importer.Import(ctx, raw)
}

// listAll snapshot of the entire library
func (l *libraryImpl) listAll(ctx context.Context) ([]models.QRRecord, error) {
	var records []models.QRRecord
	if err := l.persistence.UseDatabase(
		ctx, func(ctx context.Context, dbClient db.Database) error {
			var err error
			records, err = dbClient.ListRecords(ctx, db.RecordQueryFilter{})
			return err
		},
	); err != nil {
		return nil, fmt.Errorf("failed to list library records [%w]", err)
	}
	return records, nil
}

func (l *libraryImpl) Query(
	ctx context.Context, mode query.ViewModeENUMType, state query.State,
) ([]models.QRRecord, error) {
	records, err := l.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return l.engine.Apply(records, mode, state), nil
}

func (l *libraryImpl) AllTags(ctx context.Context) ([]string, error) {
	records, err := l.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.AllTags(records), nil
}

func (l *libraryImpl) GetRecord(ctx context.Context, recordID string) (models.QRRecord, error) {
	var record models.QRRecord
	err := l.persistence.UseDatabase(
		ctx, func(ctx context.Context, dbClient db.Database) error {
			var err error
			record, err = dbClient.GetRecord(ctx, recordID)
			return err
		},
	)
	return record, err
}

func (l *libraryImpl) NewForm() creation.Form {
	return creation.NewForm(l.defaultSizePx, l.defaultErrorCorrection)
}

func (l *libraryImpl) EditForm(ctx context.Context, recordID string) (creation.Form, error) {
	record, err := l.GetRecord(ctx, recordID)
	if err != nil {
		return creation.Form{}, err
	}
	return creation.FromRecord(record, l.calendarLocation), nil
}

/*
ensureFolder define a folder if it does not exist yet

	@param ctx context.Context - execution context
	@param folderName string - folder name; empty names are ignored
	@param activeDBClient Database - existing database transaction
*/
func (l *libraryImpl) ensureFolder(
	ctx context.Context, folderName string, activeDBClient db.Database,
) error {
	if folderName == "" {
		return nil
	}
	return db.ActiveSessionWrapper(
		ctx, activeDBClient, l.persistence, func(ctx context.Context, dbClient db.Database) error {
			if _, err := dbClient.GetFolderByName(ctx, folderName); err == nil {
				return nil
			}
			_, err := dbClient.DefineNewFolder(ctx, folderName, "", "")
			return err
		},
	)
}

func (l *libraryImpl) SaveRecord(
	ctx context.Context, recordID string, form creation.Form,
) (models.QRRecord, error) {
	logTags := l.GetLogTagsForContext(ctx)

	if err := form.Validate(); err != nil {
		return models.QRRecord{}, err
	}
	form.FolderName = strings.TrimSpace(form.FolderName)

	var stored models.QRRecord
	if err := l.persistence.UseDatabaseInTransaction(
		ctx, func(ctx context.Context, dbClient db.Database) error {
			if err := l.ensureFolder(ctx, form.FolderName, dbClient); err != nil {
				return fmt.Errorf("failed to prepare folder '%s' [%w]", form.FolderName, err)
			}

			if recordID == "" {
				var record models.QRRecord
				form.Apply(&record, l.clock())
				var err error
				stored, err = dbClient.DefineNewRecord(ctx, record)
				return err
			}

			record, err := dbClient.GetRecord(ctx, recordID)
			if err != nil {
				return err
			}
			form.Apply(&record, l.clock())
			if err := dbClient.UpdateRecord(ctx, record); err != nil {
				return err
			}
			stored = record
			return nil
		},
	); err != nil {
		log.WithError(err).WithFields(logTags).Error("Failed to save QR record")
		return models.QRRecord{}, err
	}

	log.WithFields(logTags).WithField("record-id", stored.ID).Debug("Saved QR record")
	return stored, nil
}

func (l *libraryImpl) DeleteRecord(ctx context.Context, recordID string) error {
	return l.persistence.UseDatabaseInTransaction(
		ctx, func(ctx context.Context, dbClient db.Database) error {
			return dbClient.DeleteRecord(ctx, recordID)
		},
	)
}

// modifyRecord read, modify, and write back one record in a transaction
func (l *libraryImpl) modifyRecord(
	ctx context.Context,
	recordID string,
	modify func(ctx context.Context, record *models.QRRecord, dbClient db.Database) error,
) (models.QRRecord, error) {
	var record models.QRRecord
	err := l.persistence.UseDatabaseInTransaction(
		ctx, func(ctx context.Context, dbClient db.Database) error {
			var err error
			if record, err = dbClient.GetRecord(ctx, recordID); err != nil {
				return err
			}
			if err := modify(ctx, &record, dbClient); err != nil {
				return err
			}
			record.UpdatedAt = l.clock()
			return dbClient.UpdateRecord(ctx, record)
		},
	)
	if err != nil {
		return models.QRRecord{}, err
	}
	return record, nil
}

func (l *libraryImpl) ToggleFavorite(
	ctx context.Context, recordID string,
) (models.QRRecord, error) {
	return l.modifyRecord(
		ctx, recordID, func(_ context.Context, record *models.QRRecord, _ db.Database) error {
			record.IsFavorite = !record.IsFavorite
			return nil
		},
	)
}

func (l *libraryImpl) MoveToFolder(
	ctx context.Context, recordID string, folderName string,
) (models.QRRecord, error) {
	folderName = strings.TrimSpace(folderName)
	return l.modifyRecord(
		ctx,
		recordID,
		func(ctx context.Context, record *models.QRRecord, dbClient db.Database) error {
			if err := l.ensureFolder(ctx, folderName, dbClient); err != nil {
				return fmt.Errorf("failed to prepare folder '%s' [%w]", folderName, err)
			}
			record.FolderName = folderName
			return nil
		},
	)
}

// ====================================================================================
// Scans

func (l *libraryImpl) RecordScan(ctx context.Context, recordID string) (models.ScanEvent, error) {
	logTags := l.GetLogTagsForContext(ctx)

	var event models.ScanEvent
	if err := l.persistence.UseDatabaseInTransaction(
		ctx, func(ctx context.Context, dbClient db.Database) error {
			record, err := dbClient.GetRecord(ctx, recordID)
			if err != nil {
				return err
			}
			now := l.clock()
			if record.IsExpired(now) {
				return ErrRecordExpired
			}
			if record.IsConsumed() {
				return ErrRecordConsumed
			}
			event, err = dbClient.RecordScanEvent(ctx, recordID, now)
			return err
		},
	); err != nil {
		log.WithError(err).WithFields(logTags).WithField("record-id", recordID).Error("Scan refused")
		return models.ScanEvent{}, err
	}

	log.WithFields(logTags).WithField("record-id", recordID).Debug("Recorded scan")
	return event, nil
}

func (l *libraryImpl) ScanHistory(
	ctx context.Context, recordID string,
) ([]models.ScanEvent, error) {
	var events []models.ScanEvent
	err := l.persistence.UseDatabase(
		ctx, func(ctx context.Context, dbClient db.Database) error {
			var err error
			events, err = dbClient.ListScanEvents(ctx, db.ScanEventQueryFilter{RecordID: &recordID})
			return err
		},
	)
	return events, err
}

// ====================================================================================
// Export

func (l *libraryImpl) Export(ctx context.Context) ([]byte, error) {
	records, err := l.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return export.MarshalDocument(records)
}

func (l *libraryImpl) Favorites(ctx context.Context) ([]export.FavoriteEntry, error) {
	var records []models.QRRecord
	if err := l.persistence.UseDatabase(
		ctx, func(ctx context.Context, dbClient db.Database) error {
			var err error
			records, err = dbClient.ListRecords(ctx, db.RecordQueryFilter{FavoritesOnly: true})
			return err
		},
	); err != nil {
		return nil, fmt.Errorf("failed to list favorite records [%w]", err)
	}
	return export.BuildFavoritesFeed(records), nil
}

// ====================================================================================
// Folders

func (l *libraryImpl) DefineFolder(
	ctx context.Context, name string, iconName string, colorHex string,
) (models.Folder, error) {
	var folder models.Folder
	err := l.persistence.UseDatabaseInTransaction(
		ctx, func(ctx context.Context, dbClient db.Database) error {
			var err error
			folder, err = dbClient.DefineNewFolder(ctx, strings.TrimSpace(name), iconName, colorHex)
			return err
		},
	)
	return folder, err
}

func (l *libraryImpl) ListFolders(ctx context.Context) ([]models.Folder, error) {
	var folders []models.Folder
	err := l.persistence.UseDatabase(
		ctx, func(ctx context.Context, dbClient db.Database) error {
			var err error
			folders, err = dbClient.ListFolders(ctx)
			return err
		},
	)
	return folders, err
}

func (l *libraryImpl) DeleteFolder(ctx context.Context, folderID string) error {
	return l.persistence.UseDatabaseInTransaction(
		ctx, func(ctx context.Context, dbClient db.Database) error {
			return dbClient.DeleteFolder(ctx, folderID)
		},
	)
}

// ====================================================================================
// Audit

func (l *libraryImpl) AuditTrail(
	ctx context.Context, filters db.SystemEventQueryFilter,
) ([]models.SystemEventAudit, error) {
	var events []models.SystemEventAudit
	err := l.persistence.UseDatabase(
		ctx, func(ctx context.Context, dbClient db.Database) error {
			var err error
			events, err = dbClient.ListSystemEvents(ctx, filters)
			return err
		},
	)
	return events, err
}
