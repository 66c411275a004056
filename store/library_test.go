package store_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alwitt/qrbook/db"
	mockdb "github.com/alwitt/qrbook/mocks/db"
	"github.com/alwitt/qrbook/models"
	"github.com/alwitt/qrbook/query"
	"github.com/alwitt/qrbook/store"
	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/text/language"
)

var testNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// passThroughSession make the mock client run the DB callbacks against the mock database
func passThroughSession(mockDBClient *mockdb.Client, mockDatabase *mockdb.Database) {
	runner := func(ctx context.Context, coreLogic func(context.Context, db.Database) error) error {
		return coreLogic(ctx, mockDatabase)
	}
	mockDBClient.On(
		"UseDatabaseInTransaction", mock.AnythingOfType("context.backgroundCtx"), mock.Anything,
	).Return(runner).Maybe()
	mockDBClient.On(
		"UseDatabase", mock.AnythingOfType("context.backgroundCtx"), mock.Anything,
	).Return(runner).Maybe()
}

func defineTestLibrary(t *testing.T) (store.Library, *mockdb.Database) {
	mockDBClient := mockdb.NewClient(t)
	mockDatabase := mockdb.NewDatabase(t)
	passThroughSession(mockDBClient, mockDatabase)

	uut, err := store.NewLibrary(context.Background(), store.LibraryParams{
		Persistence:            mockDBClient,
		DefaultSizePx:          512,
		DefaultErrorCorrection: models.ErrorCorrectionMedium,
		RecentLimit:            10,
		Collation:              language.English,
		CalendarLocation:       time.UTC,
		Clock:                  func() time.Time { return testNow },
	})
	assert.Nil(t, err)
	return uut, mockDatabase
}

func storedRecord(title string, kind models.KindENUMType, payload string) models.QRRecord {
	return models.QRRecord{
		ID:              uuid.NewString(),
		Title:           title,
		Payload:         payload,
		Kind:            kind,
		Tags:            []string{},
		ErrorCorrection: models.ErrorCorrectionMedium,
		SizePx:          512,
		CreatedAt:       testNow.Add(-time.Hour),
		UpdatedAt:       testNow.Add(-time.Hour),
	}
}

func TestLibraryInit(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	// Case 0: no persistence
	{
		_, err := store.NewLibrary(utCtx, store.LibraryParams{
			DefaultSizePx:          512,
			DefaultErrorCorrection: models.ErrorCorrectionMedium,
			RecentLimit:            10,
		})
		assert.NotNil(err)
	}

	mockDBClient := mockdb.NewClient(t)

	// Case 1: invalid error correction
	{
		_, err := store.NewLibrary(utCtx, store.LibraryParams{
			Persistence:            mockDBClient,
			DefaultSizePx:          512,
			DefaultErrorCorrection: "Z",
			RecentLimit:            10,
		})
		assert.NotNil(err)
	}

	// Case 2: invalid size
	{
		_, err := store.NewLibrary(utCtx, store.LibraryParams{
			Persistence:            mockDBClient,
			DefaultErrorCorrection: models.ErrorCorrectionMedium,
			RecentLimit:            10,
		})
		assert.NotNil(err)
	}

	// Case 3: valid
	{
		uut, err := store.NewLibrary(utCtx, store.LibraryParams{
			Persistence:            mockDBClient,
			DefaultSizePx:          256,
			DefaultErrorCorrection: models.ErrorCorrectionHigh,
			RecentLimit:            10,
		})
		assert.Nil(err)
		form := uut.NewForm()
		assert.Equal(models.KindURL, form.Kind)
		assert.Equal(256, form.SizePx)
		assert.Equal(models.ErrorCorrectionHigh, form.ErrorCorrection)
	}
}

func TestLibraryImport(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	uut, mockDatabase := defineTestLibrary(t)

	document := []byte(`{"qr_codes": [
		{"title": "Site", "type": "url", "data": "example.com", "tags": ["web"]},
		{"title": "", "type": "url", "data": "example.com"},
		{"title": "Home", "type": "wifi", "wifi_ssid": "HomeNet", "wifi_password": "pw"}
	]}`)

	// Case 0: successful commit
	{
		mockDatabase.On(
			"DefineNewRecords",
			mock.AnythingOfType("context.backgroundCtx"),
			mock.MatchedBy(func(records []models.QRRecord) bool {
				return len(records) == 2 &&
					records[0].Payload == "https://example.com" &&
					records[1].Payload == "WIFI:T:WPA;S:HomeNet;P:pw;H:false;;"
			}),
		).Return(func(_ context.Context, records []models.QRRecord) ([]models.QRRecord, error) {
			return records, nil
		}).Once()

		result, err := uut.Import(utCtx, document)
		assert.Nil(err)
		assert.Equal(2, result.SuccessCount)
		assert.Len(result.Errors, 1)
		assert.Equal(2, result.Errors[0].Index)
	}

	// Case 1: commit failure
	{
		mockDatabase.On(
			"DefineNewRecords", mock.AnythingOfType("context.backgroundCtx"), mock.Anything,
		).Return(nil, fmt.Errorf("dummy error")).Once()

		_, err := uut.Import(utCtx, document)
		assert.NotNil(err)
	}

	// Case 2: nothing to commit
	{
		result, err := uut.Import(utCtx, []byte(`{"qr_codes": []}`))
		assert.Nil(err)
		assert.Equal(0, result.SuccessCount)
		assert.Len(result.Errors, 1)
	}
}

func TestLibrarySaveRecord(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	uut, mockDatabase := defineTestLibrary(t)

	// Case 0: invalid form never reaches the database
	{
		form := uut.NewForm()
		form.Title = "  "
		form.Data = "example.com"
		_, err := uut.SaveRecord(utCtx, "", form)
		assert.NotNil(err)
	}

	// Case 1: new record in a new folder
	{
		form := uut.NewForm()
		form.Title = "Docs"
		form.Data = "example.com/docs"
		form.FolderName = " Work "
		assert.True(form.AddTag("web"))

		mockDatabase.On(
			"GetFolderByName", mock.AnythingOfType("context.backgroundCtx"), "Work",
		).Return(models.Folder{}, fmt.Errorf("record not found")).Once()
		mockDatabase.On(
			"DefineNewFolder", mock.AnythingOfType("context.backgroundCtx"), "Work", "", "",
		).Return(models.Folder{ID: uuid.NewString(), Name: "Work"}, nil).Once()
		mockDatabase.On(
			"DefineNewRecord",
			mock.AnythingOfType("context.backgroundCtx"),
			mock.AnythingOfType("models.QRRecord"),
		).Return(func(_ context.Context, record models.QRRecord) (models.QRRecord, error) {
			return record, nil
		}).Once()

		record, err := uut.SaveRecord(utCtx, "", form)
		assert.Nil(err)
		assert.NotEmpty(record.ID)
		assert.Equal("Docs", record.Title)
		assert.Equal("https://example.com/docs", record.Payload)
		assert.Equal("Work", record.FolderName)
		assert.Equal([]string{"web"}, record.Tags)
		assert.Equal(testNow, record.CreatedAt)
	}

	// Case 2: edit existing record in an existing folder
	{
		existing := storedRecord("Old", models.KindText, "old text")
		existing.FolderName = "Work"

		mockDatabase.On(
			"GetRecord", mock.AnythingOfType("context.backgroundCtx"), existing.ID,
		).Return(existing, nil).Twice()
		mockDatabase.On(
			"GetFolderByName", mock.AnythingOfType("context.backgroundCtx"), "Work",
		).Return(models.Folder{ID: uuid.NewString(), Name: "Work"}, nil).Once()
		mockDatabase.On(
			"UpdateRecord",
			mock.AnythingOfType("context.backgroundCtx"),
			mock.MatchedBy(func(record models.QRRecord) bool {
				return record.ID == existing.ID && record.Payload == "new text"
			}),
		).Return(nil).Once()

		form, err := uut.EditForm(utCtx, existing.ID)
		assert.Nil(err)
		assert.Equal("old text", form.Data)
		form.Title = "New"
		form.Data = "new text"

		record, err := uut.SaveRecord(utCtx, existing.ID, form)
		assert.Nil(err)
		assert.Equal(existing.ID, record.ID)
		assert.Equal("New", record.Title)
		assert.Equal(existing.CreatedAt, record.CreatedAt)
		assert.Equal(testNow, record.UpdatedAt)
	}

	// Case 3: edit unknown record
	{
		missingID := uuid.NewString()
		mockDatabase.On(
			"GetRecord", mock.AnythingOfType("context.backgroundCtx"), missingID,
		).Return(models.QRRecord{}, fmt.Errorf("record not found")).Once()

		form := uut.NewForm()
		form.Title = "Missing"
		form.Data = "example.com"
		_, err := uut.SaveRecord(utCtx, missingID, form)
		assert.NotNil(err)
	}
}

func TestLibraryModifyRecord(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	uut, mockDatabase := defineTestLibrary(t)

	existing := storedRecord("Site", models.KindURL, "https://example.com")

	// Case 0: toggle favorite
	{
		mockDatabase.On(
			"GetRecord", mock.AnythingOfType("context.backgroundCtx"), existing.ID,
		).Return(existing, nil).Once()
		mockDatabase.On(
			"UpdateRecord",
			mock.AnythingOfType("context.backgroundCtx"),
			mock.MatchedBy(func(record models.QRRecord) bool { return record.IsFavorite }),
		).Return(nil).Once()

		record, err := uut.ToggleFavorite(utCtx, existing.ID)
		assert.Nil(err)
		assert.True(record.IsFavorite)
	}

	// Case 1: move out of folder
	{
		inFolder := existing
		inFolder.FolderName = "Work"
		mockDatabase.On(
			"GetRecord", mock.AnythingOfType("context.backgroundCtx"), existing.ID,
		).Return(inFolder, nil).Once()
		mockDatabase.On(
			"UpdateRecord",
			mock.AnythingOfType("context.backgroundCtx"),
			mock.MatchedBy(func(record models.QRRecord) bool { return record.FolderName == "" }),
		).Return(nil).Once()

		record, err := uut.MoveToFolder(utCtx, existing.ID, "")
		assert.Nil(err)
		assert.Equal("", record.FolderName)
	}

	// Case 2: update failure
	{
		mockDatabase.On(
			"GetRecord", mock.AnythingOfType("context.backgroundCtx"), existing.ID,
		).Return(existing, nil).Once()
		mockDatabase.On(
			"UpdateRecord", mock.AnythingOfType("context.backgroundCtx"), mock.Anything,
		).Return(fmt.Errorf("dummy error")).Once()

		_, err := uut.ToggleFavorite(utCtx, existing.ID)
		assert.NotNil(err)
	}

	// Case 3: delete
	{
		mockDatabase.On(
			"DeleteRecord", mock.AnythingOfType("context.backgroundCtx"), existing.ID,
		).Return(nil).Once()
		assert.Nil(uut.DeleteRecord(utCtx, existing.ID))
	}
}

func TestLibraryRecordScan(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	uut, mockDatabase := defineTestLibrary(t)

	// Case 0: normal scan
	{
		record := storedRecord("Site", models.KindURL, "https://example.com")
		mockDatabase.On(
			"GetRecord", mock.AnythingOfType("context.backgroundCtx"), record.ID,
		).Return(record, nil).Once()
		mockDatabase.On(
			"RecordScanEvent", mock.AnythingOfType("context.backgroundCtx"), record.ID, testNow,
		).Return(models.ScanEvent{ID: "scan-0", RecordID: record.ID, Timestamp: testNow}, nil).Once()

		event, err := uut.RecordScan(utCtx, record.ID)
		assert.Nil(err)
		assert.Equal(record.ID, event.RecordID)
		assert.Equal(testNow, event.Timestamp)
	}

	// Case 1: expired
	{
		record := storedRecord("Site", models.KindURL, "https://example.com")
		expiry := testNow.Add(-time.Minute)
		record.ExpiresAt = &expiry
		mockDatabase.On(
			"GetRecord", mock.AnythingOfType("context.backgroundCtx"), record.ID,
		).Return(record, nil).Once()

		_, err := uut.RecordScan(utCtx, record.ID)
		assert.ErrorIs(err, store.ErrRecordExpired)
	}

	// Case 2: not yet expired
	{
		record := storedRecord("Site", models.KindURL, "https://example.com")
		expiry := testNow.Add(time.Minute)
		record.ExpiresAt = &expiry
		mockDatabase.On(
			"GetRecord", mock.AnythingOfType("context.backgroundCtx"), record.ID,
		).Return(record, nil).Once()
		mockDatabase.On(
			"RecordScanEvent", mock.AnythingOfType("context.backgroundCtx"), record.ID, testNow,
		).Return(models.ScanEvent{ID: "scan-2", RecordID: record.ID, Timestamp: testNow}, nil).Once()

		_, err := uut.RecordScan(utCtx, record.ID)
		assert.Nil(err)
	}

	// Case 3: used one time record
	{
		record := storedRecord("Ticket", models.KindText, "ticket 1")
		record.OneTimeUse = true
		record.ScanCount = 1
		mockDatabase.On(
			"GetRecord", mock.AnythingOfType("context.backgroundCtx"), record.ID,
		).Return(record, nil).Once()

		_, err := uut.RecordScan(utCtx, record.ID)
		assert.ErrorIs(err, store.ErrRecordConsumed)
	}

	// Case 4: history
	{
		recordID := uuid.NewString()
		mockDatabase.On(
			"ListScanEvents",
			mock.AnythingOfType("context.backgroundCtx"),
			db.ScanEventQueryFilter{RecordID: &recordID},
		).Return([]models.ScanEvent{{ID: "scan-9", RecordID: recordID}}, nil).Once()

		events, err := uut.ScanHistory(utCtx, recordID)
		assert.Nil(err)
		assert.Len(events, 1)
	}
}

func TestLibraryQuery(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	uut, mockDatabase := defineTestLibrary(t)

	alpha := storedRecord("Alpha", models.KindURL, "https://alpha.com")
	alpha.Tags = []string{"work"}
	alpha.IsFavorite = true
	beta := storedRecord("Beta", models.KindText, "beta text")
	beta.Tags = []string{"personal", "work"}
	gamma := storedRecord("Gamma", models.KindURL, "https://gamma.com")

	mockDatabase.On(
		"ListRecords", mock.AnythingOfType("context.backgroundCtx"), db.RecordQueryFilter{},
	).Return([]models.QRRecord{gamma, beta, alpha}, nil)

	// Case 0: name sort with tag filter
	{
		state := query.NewState()
		state.Sort = query.SortNameAZ
		state.ToggleTag("work")
		records, err := uut.Query(utCtx, query.ViewAll, state)
		assert.Nil(err)
		assert.Len(records, 2)
		assert.Equal("Alpha", records[0].Title)
		assert.Equal("Beta", records[1].Title)
	}

	// Case 1: search
	{
		state := query.NewState()
		state.SearchText = "GAMMA"
		records, err := uut.Query(utCtx, query.ViewAll, state)
		assert.Nil(err)
		assert.Len(records, 1)
		assert.Equal(gamma.ID, records[0].ID)
	}

	// Case 2: all tags
	{
		tags, err := uut.AllTags(utCtx)
		assert.Nil(err)
		assert.Equal([]string{"personal", "work"}, tags)
	}

	// Case 3: export
	{
		raw, err := uut.Export(utCtx)
		assert.Nil(err)
		var parsed []map[string]interface{}
		assert.Nil(json.Unmarshal(raw, &parsed))
		assert.Len(parsed, 3)
		assert.Equal("Gamma", parsed[0]["title"])
	}

	// Case 4: favorites feed
	{
		mockDatabase.On(
			"ListRecords",
			mock.AnythingOfType("context.backgroundCtx"),
			db.RecordQueryFilter{FavoritesOnly: true},
		).Return([]models.QRRecord{alpha}, nil).Once()

		feed, err := uut.Favorites(utCtx)
		assert.Nil(err)
		assert.Len(feed, 1)
		assert.Equal(alpha.ID, feed[0].ID)
	}
}

func TestLibraryFolders(t *testing.T) {
	assert := assert.New(t)
	log.SetLevel(log.DebugLevel)

	utCtx := context.Background()

	uut, mockDatabase := defineTestLibrary(t)

	folder := models.Folder{
		ID:       uuid.NewString(),
		Name:     "Travel",
		IconName: models.DefaultFolderIcon,
		ColorHex: models.DefaultFolderColor,
	}

	mockDatabase.On(
		"DefineNewFolder", mock.AnythingOfType("context.backgroundCtx"), "Travel", "", "",
	).Return(folder, nil).Once()
	created, err := uut.DefineFolder(utCtx, " Travel ", "", "")
	assert.Nil(err)
	assert.Equal(folder, created)

	mockDatabase.On(
		"ListFolders", mock.AnythingOfType("context.backgroundCtx"),
	).Return([]models.Folder{folder}, nil).Once()
	folders, err := uut.ListFolders(utCtx)
	assert.Nil(err)
	assert.Equal([]models.Folder{folder}, folders)

	mockDatabase.On(
		"DeleteFolder", mock.AnythingOfType("context.backgroundCtx"), folder.ID,
	).Return(nil).Once()
	assert.Nil(uut.DeleteFolder(utCtx, folder.ID))

	mockDatabase.On(
		"ListSystemEvents",
		mock.AnythingOfType("context.backgroundCtx"),
		db.SystemEventQueryFilter{},
	).Return([]models.SystemEventAudit{{ID: "audit-0"}}, nil).Once()
	events, err := uut.AuditTrail(utCtx, db.SystemEventQueryFilter{})
	assert.Nil(err)
	assert.Len(events, 1)
}
