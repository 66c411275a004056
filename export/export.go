// Package export - one-way JSON snapshots of the library
package export

import (
	"encoding/json"
	"time"

	"github.com/alwitt/qrbook/models"
)

// Entry one exported record
type Entry struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Data       string   `json:"data"`
	Type       string   `json:"type"`
	Tags       []string `json:"tags"`
	IsFavorite bool     `json:"isFavorite"`
	ScanCount  int      `json:"scanCount"`
	// CreatedAt RFC 3339
	CreatedAt string `json:"createdAt"`
}

// FavoriteEntry one entry of the favorites feed read by companion surfaces
type FavoriteEntry struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Data          string `json:"data"`
	Type          string `json:"type"`
	ForegroundHex string `json:"foregroundHex,omitempty"`
	BackgroundHex string `json:"backgroundHex,omitempty"`
}

/*
BuildDocument convert records into the export document, preserving their order

	@param records []models.QRRecord - the records
	@returns the export entries
*/
func BuildDocument(records []models.QRRecord) []Entry {
	result := make([]Entry, 0, len(records))
	for _, record := range records {
		tags := record.Tags
		if tags == nil {
			tags = []string{}
		}
		result = append(result, Entry{
			ID:         record.ID,
			Title:      record.Title,
			Data:       record.Payload,
			Type:       string(record.Kind),
			Tags:       tags,
			IsFavorite: record.IsFavorite,
			ScanCount:  record.ScanCount,
			CreatedAt:  record.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return result
}

/*
MarshalDocument render records as an indented export document

	@param records []models.QRRecord - the records
	@returns the JSON document
*/
func MarshalDocument(records []models.QRRecord) ([]byte, error) {
	return json.MarshalIndent(BuildDocument(records), "", "  ")
}

/*
BuildFavoritesFeed convert the favorited records into the favorites feed

	@param records []models.QRRecord - the records; non-favorites are skipped
	@returns the feed entries
*/
func BuildFavoritesFeed(records []models.QRRecord) []FavoriteEntry {
	result := []FavoriteEntry{}
	for _, record := range records {
		if !record.IsFavorite {
			continue
		}
		result = append(result, FavoriteEntry{
			ID:            record.ID,
			Title:         record.Title,
			Data:          record.Payload,
			Type:          string(record.Kind),
			ForegroundHex: record.ForegroundHex,
			BackgroundHex: record.BackgroundHex,
		})
	}
	return result
}
