// Package creation - QR record create / edit form session
package creation

import (
	"strings"
	"time"

	"github.com/alwitt/qrbook/codec"
	"github.com/alwitt/qrbook/models"
	"github.com/alwitt/qrbook/validation"
	"github.com/google/uuid"
)

// Form the state of one create / edit session
type Form struct {
	Kind            models.KindENUMType
	Title           string
	Data            string
	Tags            []string
	IsFavorite      bool
	ErrorCorrection models.ErrorCorrectionENUMType
	SizePx          int
	OneTimeUse      bool
	ExpiresAt       *time.Time
	FolderName      string
	ForegroundHex   string
	BackgroundHex   string
	LogoImage       []byte

	// Structured kind fields
	WiFi     models.WiFiData
	Contact  models.ContactData
	Calendar models.CalendarEventData
}

/*
NewForm define a blank form

	@param defaultSizePx int - initial rendered size
	@param defaultErrorCorrection models.ErrorCorrectionENUMType - initial error correction
	@returns the form
*/
func NewForm(defaultSizePx int, defaultErrorCorrection models.ErrorCorrectionENUMType) Form {
	return Form{
		Kind:            models.KindURL,
		ErrorCorrection: defaultErrorCorrection,
		SizePx:          defaultSizePx,
		WiFi:            models.NewWiFiData(),
	}
}

/*
FromRecord populate a form from a stored record, decoding the payload back into its
editable fields.

	@param record models.QRRecord - the record
	@param loc *time.Location - location for calendar wall-clock values
	@returns the form
*/
func FromRecord(record models.QRRecord, loc *time.Location) Form {
	form := Form{
		Kind:            record.Kind,
		Title:           record.Title,
		Tags:            append([]string{}, record.Tags...),
		IsFavorite:      record.IsFavorite,
		ErrorCorrection: record.ErrorCorrection,
		SizePx:          record.SizePx,
		OneTimeUse:      record.OneTimeUse,
		ExpiresAt:       record.ExpiresAt,
		FolderName:      record.FolderName,
		ForegroundHex:   record.ForegroundHex,
		BackgroundHex:   record.BackgroundHex,
		LogoImage:       record.LogoImage,
	}

	// A payload not matching its grammar leaves the structured fields at their defaults
	decoded, _ := codec.DecodeForEdit(record.Payload, record.Kind, loc)
	form.Data = decoded.Data
	form.WiFi = decoded.WiFi
	form.Contact = decoded.Contact
	form.Calendar = decoded.Calendar

	return form
}

// Validate check the form is complete enough to save
func (f Form) Validate() error {
	if err := validation.ValidateTitle(f.Title); err != nil {
		return err
	}

	switch f.Kind {
	case models.KindURL, models.KindFile:
		return validation.ValidateURL(f.Data)
	case models.KindText:
		return validation.ValidateText(f.Data)
	case models.KindWiFi:
		return validation.ValidateRequired(f.WiFi.SSID, "Network name")
	case models.KindContact:
		return validation.ValidateRequired(f.Contact.Name, "Contact name")
	case models.KindCalendar:
		return validation.ValidateRequired(f.Calendar.Title, "Event title")
	}
	return validation.ValidateRequired(f.Data, f.Kind.Label())
}

// Payload the payload for the form's current kind
func (f Form) Payload() string {
	switch f.Kind {
	case models.KindWiFi:
		return codec.EncodeWiFi(f.WiFi)
	case models.KindContact:
		return codec.EncodeContact(f.Contact)
	case models.KindCalendar:
		return codec.EncodeCalendarEvent(f.Calendar)
	case models.KindURL, models.KindFile:
		return validation.NormalizeURL(f.Data)
	}
	return codec.EncodeData(f.Kind, f.Data)
}

/*
AddTag add a tag to the form

	@param tag string - the new tag
	@returns whether the tag was added; invalid and duplicate tags are not
*/
func (f *Form) AddTag(tag string) bool {
	trimmed := strings.TrimSpace(tag)
	if validation.ValidateTag(trimmed) != nil {
		return false
	}
	for _, existing := range f.Tags {
		if existing == trimmed {
			return false
		}
	}
	f.Tags = append(f.Tags, trimmed)
	return true
}

// RemoveTag remove a tag from the form
func (f *Form) RemoveTag(tag string) {
	kept := f.Tags[:0]
	for _, existing := range f.Tags {
		if existing != tag {
			kept = append(kept, existing)
		}
	}
	f.Tags = kept
}

/*
Apply write the form onto a record. A record without an ID is treated as new and is given
an ID and creation timestamp.

	@param record *models.QRRecord - the record to update
	@param now time.Time - the edit timestamp
*/
func (f Form) Apply(record *models.QRRecord, now time.Time) {
	if record.ID == "" {
		record.ID = uuid.NewString()
		record.CreatedAt = now
	}
	record.Kind = f.Kind
	record.Title = strings.TrimSpace(f.Title)
	record.Payload = f.Payload()
	record.Tags = append([]string{}, f.Tags...)
	record.IsFavorite = f.IsFavorite
	record.ErrorCorrection = f.ErrorCorrection
	record.SizePx = f.SizePx
	record.OneTimeUse = f.OneTimeUse
	record.ExpiresAt = f.ExpiresAt
	record.FolderName = f.FolderName
	record.ForegroundHex = f.ForegroundHex
	record.BackgroundHex = f.BackgroundHex
	record.LogoImage = f.LogoImage
	record.UpdatedAt = now
}
