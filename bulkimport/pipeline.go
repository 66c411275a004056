package bulkimport

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alwitt/goutils"
	"github.com/alwitt/qrbook/codec"
	"github.com/alwitt/qrbook/models"
	"github.com/alwitt/qrbook/validation"
	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	importDateLayout = "2006-01-02"
	importTimeLayout = "15:04"
)

// BatchWriter commits the records of one import together
type BatchWriter interface {
	/*
		CommitBatch persist a batch of new records in one unit of work

			@param ctx context.Context - execution context
			@param records []models.QRRecord - the new records
	*/
	CommitBatch(ctx context.Context, records []models.QRRecord) error
}

// Importer bulk import pipeline
type Importer interface {
	/*
		Import decode a bulk import document, process every entry, and commit the successful
		entries together

			@param ctx context.Context - execution context
			@param raw []byte - the document
			@returns the import result. An error is returned only when the commit itself fails.
	*/
	Import(ctx context.Context, raw []byte) (Result, error)

	/*
		ProcessItem validate and encode one document entry

			@param index int - 1-based position of the entry
			@param item Item - the entry
			@returns the new record, or the reason the entry was rejected
	*/
	ProcessItem(index int, item Item) (models.QRRecord, *ImportError)
}

// ImporterParams importer settings
type ImporterParams struct {
	// DefaultSizePx size of entries without a size
	DefaultSizePx int `validate:"gt=0"`
	// CalendarLocation location of calendar dates and times; nil means time.Local
	CalendarLocation *time.Location `validate:"-"`
	// Clock source of "now"; nil means time.Now
	Clock func() time.Time `validate:"-"`
}

// importerImpl implements Importer
type importerImpl struct {
	goutils.Component

	writer    BatchWriter
	validator *validator.Validate

	defaultSizePx int
	loc           *time.Location
	clock         func() time.Time
}

/*
NewImporter define a new bulk importer

	@param params ImporterParams - importer settings
	@param writer BatchWriter - destination of the imported records
	@returns importer
*/
func NewImporter(params ImporterParams, writer BatchWriter) (Importer, error) {
	validate, err := models.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to define validator [%w]", err)
	}
	if err := validate.Struct(&params); err != nil {
		return nil, fmt.Errorf("invalid importer parameters [%w]", err)
	}

	instance := &importerImpl{
		Component: goutils.Component{
			LogTags: log.Fields{"module": "bulkimport", "component": "importer"},
			LogTagModifiers: []goutils.LogMetadataModifier{
				goutils.ModifyLogMetadataByRestRequestParam,
			},
		},
		writer:        writer,
		validator:     validate,
		defaultSizePx: params.DefaultSizePx,
		loc:           params.CalendarLocation,
		clock:         params.Clock,
	}
	if instance.loc == nil {
		instance.loc = time.Local
	}
	if instance.clock == nil {
		instance.clock = time.Now
	}
	return instance, nil
}

func documentFailure(message string) Result {
	return Result{Errors: []ImportError{{Index: 0, Message: message}}}
}

func (i *importerImpl) Import(ctx context.Context, raw []byte) (Result, error) {
	logtags := i.GetLogTagsForContext(ctx)

	if !utf8.Valid(raw) {
		return documentFailure("Could not read the JSON text. Make sure it's valid UTF-8."), nil
	}

	var document Document
	if err := json.Unmarshal(raw, &document); err != nil {
		log.WithError(err).WithFields(logtags).Debug("Undecodable bulk import document")
		return documentFailure(fmt.Sprintf("Invalid JSON format: %s", err.Error())), nil
	}

	if len(document.QRCodes) == 0 {
		return documentFailure(
			"The qr_codes array is empty. Add at least one QR code entry.",
		), nil
	}

	result := Result{Errors: []ImportError{}}
	records := []models.QRRecord{}
	for idx, item := range document.QRCodes {
		record, failure := i.ProcessItem(idx+1, item)
		if failure != nil {
			log.
				WithFields(logtags).
				WithField("index", failure.Index).
				Debugf("Rejected bulk import entry: %s", failure.Message)
			result.Errors = append(result.Errors, *failure)
			continue
		}
		records = append(records, record)
	}

	if len(records) > 0 {
		if err := i.writer.CommitBatch(ctx, records); err != nil {
			log.WithError(err).WithFields(logtags).Error("Failed to commit bulk import")
			return Result{}, fmt.Errorf("failed to commit %d imported records [%w]", len(records), err)
		}
	}
	result.SuccessCount = len(records)

	log.
		WithFields(logtags).
		Infof("Bulk import complete: %d imported, %d rejected", result.SuccessCount, len(result.Errors))

	return result, nil
}

// isBlank whether an optional string is absent or only whitespace
func isBlank(value *string) bool {
	return value == nil || strings.TrimSpace(*value) == ""
}

// valueOr the optional string, or the fallback when absent
func valueOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

func (i *importerImpl) ProcessItem(index int, item Item) (models.QRRecord, *ImportError) {
	fail := func(title *string, message string) (models.QRRecord, *ImportError) {
		return models.QRRecord{}, &ImportError{Index: index, Title: title, Message: message}
	}

	if isBlank(item.Title) {
		return fail(item.Title, "Missing required field: title")
	}
	title := item.Title
	if err := validation.ValidateTitle(*title); err != nil {
		return fail(title, err.Error())
	}

	if item.Type == nil {
		return fail(title, invalidTypeMessage())
	}
	kind, ok := models.LookupKind(*item.Type)
	if !ok {
		return fail(title, invalidTypeMessage())
	}

	payload, err := i.encodeItem(item, kind)
	if err != nil {
		return fail(title, err.Error())
	}

	errorCorrection := models.DefaultErrorCorrection
	if item.ErrorCorrection != nil {
		errorCorrection = models.ParseErrorCorrection(*item.ErrorCorrection)
	}

	sizePx := i.defaultSizePx
	if item.Size != nil {
		if *item.Size <= 0 {
			return fail(title, fmt.Sprintf("Invalid size %d. Use a positive pixel size (e.g. 512)", *item.Size))
		}
		sizePx = *item.Size
	}

	tags := []string{}
	for _, tag := range item.Tags {
		if err := validation.ValidateTag(tag); err != nil {
			return fail(title, fmt.Sprintf("Invalid tag '%s': %s", tag, err.Error()))
		}
		trimmed := strings.TrimSpace(tag)
		duplicate := false
		for _, existing := range tags {
			if existing == trimmed {
				duplicate = true
				break
			}
		}
		if !duplicate {
			tags = append(tags, trimmed)
		}
	}

	isFavorite := false
	if item.IsFavorite != nil {
		isFavorite = *item.IsFavorite
	}

	now := i.clock()
	record := models.QRRecord{
		ID:              uuid.NewString(),
		Title:           strings.TrimSpace(*title),
		Payload:         payload,
		Kind:            kind,
		Tags:            tags,
		IsFavorite:      isFavorite,
		ErrorCorrection: errorCorrection,
		SizePx:          sizePx,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := i.validator.Struct(&record); err != nil {
		return fail(title, fmt.Sprintf("Invalid entry: %s", err.Error()))
	}

	return record, nil
}

func invalidTypeMessage() string {
	return fmt.Sprintf(
		"Invalid or missing type. Valid types: %s", strings.Join(models.KindIdentifiers(), ", "),
	)
}

// missingData the failure of an entry without its data field
func missingData(hint string) error {
	return fmt.Errorf("Missing required field: data (%s)", hint)
}

// encodeItem validate the kind specific fields of an entry and build its payload
func (i *importerImpl) encodeItem(item Item, kind models.KindENUMType) (string, error) {
	switch kind {
	case models.KindURL:
		if isBlank(item.Data) {
			return "", missingData("URL")
		}
		if err := validation.ValidateURL(*item.Data); err != nil {
			return "", err
		}
		return validation.NormalizeURL(*item.Data), nil

	case models.KindFile:
		if isBlank(item.Data) {
			return "", missingData("file URL")
		}
		return validation.NormalizeURL(*item.Data), nil

	case models.KindText:
		if isBlank(item.Data) {
			return "", missingData("text content")
		}
		if err := validation.ValidateText(*item.Data); err != nil {
			return "", err
		}
		return strings.TrimSpace(*item.Data), nil

	case models.KindWiFi:
		if isBlank(item.WiFiSSID) {
			return "", fmt.Errorf("Missing required field: wifi_ssid")
		}
		wifi := models.WiFiData{
			SSID:     *item.WiFiSSID,
			Password: valueOr(item.WiFiPassword, ""),
			Security: models.ParseWiFiSecurity(valueOr(item.WiFiSecurity, "")),
		}
		if item.WiFiHidden != nil {
			wifi.Hidden = *item.WiFiHidden
		}
		return codec.EncodeWiFi(wifi), nil

	case models.KindContact:
		if isBlank(item.ContactName) {
			return "", fmt.Errorf("Missing required field: contact_name")
		}
		return codec.EncodeContact(models.ContactData{
			Name:         *item.ContactName,
			Phone:        valueOr(item.ContactPhone, ""),
			Email:        valueOr(item.ContactEmail, ""),
			Organization: valueOr(item.ContactOrganization, ""),
			URL:          valueOr(item.ContactURL, ""),
		}), nil

	case models.KindCalendar:
		event, err := i.buildCalendarEvent(item)
		if err != nil {
			return "", err
		}
		return codec.EncodeCalendarEvent(event), nil

	case models.KindVenmo:
		if isBlank(item.Data) {
			return "", missingData("Venmo username")
		}
		return codec.EncodeVenmo(*item.Data), nil

	case models.KindPayPal:
		if isBlank(item.Data) {
			return "", missingData("PayPal username or email")
		}
		return codec.EncodePayPal(*item.Data), nil

	case models.KindCashApp:
		if isBlank(item.Data) {
			return "", missingData("Cash App $cashtag")
		}
		return codec.EncodeCashApp(*item.Data), nil

	case models.KindZelle:
		if isBlank(item.Data) {
			return "", missingData("Zelle email or phone")
		}
		return codec.EncodeZelle(*item.Data), nil

	case models.KindCrypto:
		if isBlank(item.Data) {
			return "", missingData("wallet address")
		}
		return codec.EncodeCrypto(*item.Data), nil
	}

	return "", fmt.Errorf("unsupported kind '%s'", kind)
}

// buildCalendarEvent parse the event fields of an entry
func (i *importerImpl) buildCalendarEvent(item Item) (models.CalendarEventData, error) {
	if isBlank(item.EventTitle) {
		return models.CalendarEventData{}, fmt.Errorf("Missing required field: event_title")
	}
	if item.EventStartDate == nil || *item.EventStartDate == "" {
		return models.CalendarEventData{}, fmt.Errorf(
			"Missing required field: event_start_date (format: YYYY-MM-DD)",
		)
	}

	startDate, err := time.ParseInLocation(importDateLayout, *item.EventStartDate, i.loc)
	if err != nil {
		return models.CalendarEventData{}, fmt.Errorf(
			"Invalid event_start_date format. Use YYYY-MM-DD (e.g. 2025-03-15)",
		)
	}

	endDate := startDate
	if item.EventEndDate != nil && *item.EventEndDate != "" {
		endDate, err = time.ParseInLocation(importDateLayout, *item.EventEndDate, i.loc)
		if err != nil {
			return models.CalendarEventData{}, fmt.Errorf(
				"Invalid event_end_date format. Use YYYY-MM-DD (e.g. 2025-03-15)",
			)
		}
	}

	// Without an explicit flag, an event without a start time is all-day
	allDay := item.EventStartTime == nil
	if item.EventAllDay != nil {
		allDay = *item.EventAllDay
	}

	startTime := i.clock().In(i.loc)
	if item.EventStartTime != nil && *item.EventStartTime != "" {
		startTime, err = time.ParseInLocation(importTimeLayout, *item.EventStartTime, i.loc)
		if err != nil {
			return models.CalendarEventData{}, fmt.Errorf(
				"Invalid event_start_time format. Use HH:MM 24-hour (e.g. 09:00)",
			)
		}
	}

	endTime := startTime
	if item.EventEndTime != nil && *item.EventEndTime != "" {
		endTime, err = time.ParseInLocation(importTimeLayout, *item.EventEndTime, i.loc)
		if err != nil {
			return models.CalendarEventData{}, fmt.Errorf(
				"Invalid event_end_time format. Use HH:MM 24-hour (e.g. 17:00)",
			)
		}
	}

	return models.CalendarEventData{
		Title:       *item.EventTitle,
		StartDate:   startDate,
		EndDate:     endDate,
		StartTime:   startTime,
		EndTime:     endTime,
		Location:    valueOr(item.EventLocation, ""),
		Description: valueOr(item.EventDescription, ""),
		AllDay:      allDay,
	}, nil
}
