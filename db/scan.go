package db

import (
	"context"
	"fmt"
	"time"

	"github.com/alwitt/qrbook/models"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

func (d *databaseImpl) RecordScanEvent(
	_ context.Context, recordID string, timestamp time.Time,
) (models.ScanEvent, error) {
	record, err := d.getRecordEntry(recordID)
	if err != nil {
		return models.ScanEvent{}, fmt.Errorf("failed to fetch record %s [%w]", recordID, err)
	}

	newEntry := ScanEventDBEntry{
		ScanEvent: models.ScanEvent{
			ID: ulid.Make().String(), RecordID: record.ID, Timestamp: timestamp,
		},
	}

	if err := d.validator.Struct(&newEntry); err != nil {
		return models.ScanEvent{}, fmt.Errorf("new scan event is not valid [%w]", err)
	}

	if tmp := d.db.Create(&newEntry); tmp.Error != nil {
		return models.ScanEvent{}, fmt.Errorf(
			"scan event of record %s failed insert [%w]", recordID, tmp.Error,
		)
	}

	if tmp := d.db.Model(&record).Updates(map[string]interface{}{
		"scan_count":   gorm.Expr("scan_count + ?", 1),
		"last_used_at": timestamp,
	}); tmp.Error != nil {
		return models.ScanEvent{}, fmt.Errorf(
			"failed to update usage of record %s [%w]", recordID, tmp.Error,
		)
	}

	return newEntry.ScanEvent, nil
}

func (d *databaseImpl) ListScanEvents(
	_ context.Context, filters ScanEventQueryFilter,
) ([]models.ScanEvent, error) {
	query := d.db.Model(&ScanEventDBEntry{})

	if filters.RecordID != nil {
		query = query.Where("record_id = ?", *filters.RecordID)
	}

	query = applyPaging(query, filters.CommonListEntryQueryFilter)

	query = query.Order("timestamp desc")

	var entries []ScanEventDBEntry
	if tmp := query.Find(&entries); tmp.Error != nil {
		return nil, fmt.Errorf("failed to list scan events [%w]", tmp.Error)
	}

	result := []models.ScanEvent{}
	for _, entry := range entries {
		result = append(result, entry.ScanEvent)
	}

	return result, nil
}
