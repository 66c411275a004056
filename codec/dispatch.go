package codec

import (
	"strings"
	"time"

	"github.com/alwitt/qrbook/models"
)

// Decoded editable form of a stored payload
//
// Exactly one of the fields is meaningful, selected by Kind: WiFi, Contact, Calendar for the
// structured kinds, Data for every other kind.
type Decoded struct {
	Kind     models.KindENUMType
	Data     string
	WiFi     models.WiFiData
	Contact  models.ContactData
	Calendar models.CalendarEventData
}

/*
DecodeForEdit decode a stored payload into its editable form

	@param payload string - the stored payload
	@param kind models.KindENUMType - the record kind
	@param loc *time.Location - location for calendar wall-clock values; nil means time.Local
	@returns the editable form, and whether a structured payload matched its grammar. For
	    non-structured kinds this is always true.
*/
func DecodeForEdit(
	payload string, kind models.KindENUMType, loc *time.Location,
) (Decoded, bool) {
	result := Decoded{Kind: kind, WiFi: models.NewWiFiData()}
	switch kind {
	case models.KindWiFi:
		wifi, ok := DecodeWiFi(payload)
		if ok {
			result.WiFi = wifi
		}
		return result, ok

	case models.KindContact:
		contact, ok := DecodeContact(payload)
		if ok {
			result.Contact = contact
		}
		return result, ok

	case models.KindCalendar:
		event, ok := DecodeCalendarEvent(payload, loc)
		if ok {
			result.Calendar = event
		}
		return result, ok

	case models.KindVenmo, models.KindPayPal, models.KindCashApp, models.KindZelle:
		result.Data = DecodePayment(payload, kind)
		return result, true
	}

	// URL, text, file, crypto
	result.Data = payload
	return result, true
}

/*
EncodeData encode a single data field for the non-structured kinds

	@param kind models.KindENUMType - the record kind
	@param data string - the user entered value
	@returns the payload
*/
func EncodeData(kind models.KindENUMType, data string) string {
	switch kind {
	case models.KindVenmo:
		return EncodeVenmo(data)
	case models.KindPayPal:
		return EncodePayPal(data)
	case models.KindCashApp:
		return EncodeCashApp(data)
	case models.KindZelle:
		return EncodeZelle(data)
	case models.KindCrypto:
		return EncodeCrypto(data)
	}
	return data
}

// DetectKind guess the kind of a scanned payload
func DetectKind(scanned string) models.KindENUMType {
	switch {
	case strings.HasPrefix(scanned, WiFiPrefix):
		return models.KindWiFi
	case strings.Contains(scanned, vCardBegin):
		return models.KindContact
	case strings.Contains(scanned, "BEGIN:VCALENDAR"):
		return models.KindCalendar
	case strings.HasPrefix(scanned, "http://"), strings.HasPrefix(scanned, "https://"):
		return models.KindURL
	}
	return models.KindText
}
