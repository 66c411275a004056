package db

import (
	"context"
	"fmt"

	"github.com/alwitt/qrbook/models"
	"github.com/google/uuid"
)

func folderAuditMetadata(folder models.Folder) models.SystemEventFolderRelated {
	return models.SystemEventFolderRelated{FolderID: folder.ID, FolderName: folder.Name}
}

func (d *databaseImpl) DefineNewFolder(
	_ context.Context, name string, iconName string, colorHex string,
) (models.Folder, error) {
	if iconName == "" {
		iconName = models.DefaultFolderIcon
	}
	if colorHex == "" {
		colorHex = models.DefaultFolderColor
	}

	var existing int64
	if tmp := d.db.Model(&FolderDBEntry{}).Count(&existing); tmp.Error != nil {
		return models.Folder{}, fmt.Errorf("failed to count folders [%w]", tmp.Error)
	}

	newEntry := FolderDBEntry{
		Folder: models.Folder{
			ID:        uuid.NewString(),
			Name:      name,
			IconName:  iconName,
			ColorHex:  colorHex,
			SortOrder: int(existing),
		},
	}

	if err := d.validator.Struct(&newEntry); err != nil {
		return models.Folder{}, fmt.Errorf("new folder '%s' is not valid [%w]", name, err)
	}

	if tmp := d.db.Create(&newEntry); tmp.Error != nil {
		return models.Folder{}, fmt.Errorf("new folder '%s' failed insert [%w]", name, tmp.Error)
	}

	// Record this event
	if _, err := d.defineNewSystemEvent(
		models.SystemEventTypeAddNewFolder, folderAuditMetadata(newEntry.Folder),
	); err != nil {
		return models.Folder{}, fmt.Errorf(
			"failed to log add new folder '%s' audit event [%w]", name, err,
		)
	}

	return newEntry.Folder, nil
}

func (d *databaseImpl) GetFolderByName(_ context.Context, name string) (models.Folder, error) {
	var entry FolderDBEntry
	if tmp := d.db.Where("name = ?", name).First(&entry); tmp.Error != nil {
		return models.Folder{}, fmt.Errorf("failed to fetch folder '%s' [%w]", name, tmp.Error)
	}
	return entry.Folder, nil
}

func (d *databaseImpl) ListFolders(_ context.Context) ([]models.Folder, error) {
	var entries []FolderDBEntry
	if tmp := d.db.Order("sort_order").Order("name").Find(&entries); tmp.Error != nil {
		return nil, fmt.Errorf("failed to list folders [%w]", tmp.Error)
	}

	result := []models.Folder{}
	for _, entry := range entries {
		result = append(result, entry.Folder)
	}
	return result, nil
}

func (d *databaseImpl) DeleteFolder(_ context.Context, folderID string) error {
	var entry FolderDBEntry
	if tmp := d.db.Where("id = ?", folderID).First(&entry); tmp.Error != nil {
		return fmt.Errorf("failed to fetch folder %s [%w]", folderID, tmp.Error)
	}

	if tmp := d.db.
		Model(&QRRecordDBEntry{}).
		Where("folder_name = ?", entry.Name).
		Update("folder_name", ""); tmp.Error != nil {
		return fmt.Errorf("failed to clear records of folder '%s' [%w]", entry.Name, tmp.Error)
	}

	if tmp := d.db.Delete(&entry); tmp.Error != nil {
		return fmt.Errorf("failed to delete folder %s [%w]", folderID, tmp.Error)
	}

	// Record this event
	if _, err := d.defineNewSystemEvent(
		models.SystemEventTypeDeleteFolder, folderAuditMetadata(entry.Folder),
	); err != nil {
		return fmt.Errorf("failed to log delete folder %s audit event [%w]", folderID, err)
	}

	return nil
}
