package db

import (
	"context"
	"fmt"

	"github.com/alwitt/qrbook/models"
	"github.com/apex/log"
)

// recordAuditMetadata audit metadata of a QR record event
func recordAuditMetadata(record models.QRRecord) models.SystemEventRecordRelated {
	return models.SystemEventRecordRelated{
		RecordID: record.ID, RecordTitle: record.Title, Kind: record.Kind,
	}
}

func (d *databaseImpl) DefineNewRecord(
	_ context.Context, record models.QRRecord,
) (models.QRRecord, error) {
	newEntry := QRRecordDBEntry{QRRecord: record}

	if err := d.validator.Struct(&newEntry); err != nil {
		return models.QRRecord{}, fmt.Errorf("new record '%s' is not valid [%w]", record.Title, err)
	}

	if tmp := d.db.Create(&newEntry); tmp.Error != nil {
		return models.QRRecord{}, fmt.Errorf(
			"new record '%s' failed insert [%w]", record.Title, tmp.Error,
		)
	}

	// Record this event
	if _, err := d.defineNewSystemEvent(
		models.SystemEventTypeAddNewRecord, recordAuditMetadata(newEntry.QRRecord),
	); err != nil {
		return models.QRRecord{}, fmt.Errorf(
			"failed to log add new record '%s' audit event [%w]", record.Title, err,
		)
	}

	return newEntry.QRRecord, nil
}

func (d *databaseImpl) DefineNewRecords(
	ctx context.Context, records []models.QRRecord,
) ([]models.QRRecord, error) {
	if len(records) == 0 {
		return []models.QRRecord{}, nil
	}

	entries := make([]QRRecordDBEntry, 0, len(records))
	recordIDs := make([]string, 0, len(records))
	for idx, record := range records {
		entry := QRRecordDBEntry{QRRecord: record}
		if err := d.validator.Struct(&entry); err != nil {
			return nil, fmt.Errorf("batch record %d '%s' is not valid [%w]", idx, record.Title, err)
		}
		entries = append(entries, entry)
		recordIDs = append(recordIDs, record.ID)
	}

	if tmp := d.db.Create(&entries); tmp.Error != nil {
		return nil, fmt.Errorf("batch of %d records failed insert [%w]", len(entries), tmp.Error)
	}

	// Record this event
	if _, err := d.defineNewSystemEvent(
		models.SystemEventTypeBulkImport,
		models.SystemEventBulkImportRelated{RecordIDs: recordIDs},
	); err != nil {
		return nil, fmt.Errorf("failed to log bulk import audit event [%w]", err)
	}

	log.
		WithFields(d.GetLogTagsForContext(ctx)).
		WithField("count", len(entries)).
		Debug("Inserted record batch")

	result := make([]models.QRRecord, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.QRRecord)
	}
	return result, nil
}

// getRecordEntry find a QR record by ID
func (d *databaseImpl) getRecordEntry(recordID string) (QRRecordDBEntry, error) {
	var entry QRRecordDBEntry
	err := d.db.Where("id = ?", recordID).First(&entry).Error
	return entry, err
}

func (d *databaseImpl) GetRecord(_ context.Context, recordID string) (models.QRRecord, error) {
	entry, err := d.getRecordEntry(recordID)
	if err != nil {
		return models.QRRecord{}, fmt.Errorf("failed to fetch record %s [%w]", recordID, err)
	}

	return entry.QRRecord, nil
}

func (d *databaseImpl) ListRecords(
	_ context.Context, filters RecordQueryFilter,
) ([]models.QRRecord, error) {
	query := d.db.Model(&QRRecordDBEntry{})

	if len(filters.Kinds) > 0 {
		query = query.Where("type in ?", filters.Kinds)
	}
	if filters.FolderName != nil {
		query = query.Where("folder_name = ?", *filters.FolderName)
	}
	if filters.FavoritesOnly {
		query = query.Where("is_favorite = ?", true)
	}

	query = applyPaging(query, filters.CommonListEntryQueryFilter)

	query = query.Order("created_at desc")

	var entries []QRRecordDBEntry
	if tmp := query.Find(&entries); tmp.Error != nil {
		return nil, fmt.Errorf("failed to list QR records [%w]", tmp.Error)
	}

	result := []models.QRRecord{}
	for _, entry := range entries {
		result = append(result, entry.QRRecord)
	}

	return result, nil
}

func (d *databaseImpl) UpdateRecord(_ context.Context, record models.QRRecord) error {
	existing, err := d.getRecordEntry(record.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch record %s [%w]", record.ID, err)
	}

	updated := QRRecordDBEntry{QRRecord: record}
	updated.CreatedAt = existing.CreatedAt
	if err := d.validator.Struct(&updated); err != nil {
		return fmt.Errorf("updated record %s is not valid [%w]", record.ID, err)
	}

	if tmp := d.db.Save(&updated); tmp.Error != nil {
		return fmt.Errorf("failed to update record %s [%w]", record.ID, tmp.Error)
	}

	// Record this event
	if _, err := d.defineNewSystemEvent(
		models.SystemEventTypeUpdateRecord, recordAuditMetadata(updated.QRRecord),
	); err != nil {
		return fmt.Errorf("failed to log update record %s audit event [%w]", record.ID, err)
	}

	return nil
}

func (d *databaseImpl) DeleteRecord(_ context.Context, recordID string) error {
	entry, err := d.getRecordEntry(recordID)
	if err != nil {
		return fmt.Errorf("failed to fetch record %s [%w]", recordID, err)
	}

	if tmp := d.db.Delete(&entry); tmp.Error != nil {
		return fmt.Errorf("failed to delete record %s [%w]", recordID, tmp.Error)
	}

	// Record this event
	if _, err := d.defineNewSystemEvent(
		models.SystemEventTypeDeleteRecord, recordAuditMetadata(entry.QRRecord),
	); err != nil {
		return fmt.Errorf("failed to log delete record %s audit event [%w]", recordID, err)
	}

	return nil
}
