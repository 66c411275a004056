package models

import "time"

// WiFiSecurityENUMType Wi-Fi network security ENUM value type
type WiFiSecurityENUMType string

const (
	// WiFiSecurityWPA WPA / WPA2
	WiFiSecurityWPA WiFiSecurityENUMType = "WPA"
	// WiFiSecurityWEP WEP
	WiFiSecurityWEP WiFiSecurityENUMType = "WEP"
	// WiFiSecurityNone open network
	WiFiSecurityNone WiFiSecurityENUMType = "nopass"
)

// DefaultWiFiSecurity security used when none, or an unrecognized one, is given
const DefaultWiFiSecurity = WiFiSecurityWPA

// Label human readable name of the security type
func (s WiFiSecurityENUMType) Label() string {
	switch s {
	case WiFiSecurityWPA:
		return "WPA/WPA2"
	case WiFiSecurityWEP:
		return "WEP"
	case WiFiSecurityNone:
		return "No Password"
	}
	return string(s)
}

// IsValid whether the security type is recognized
func (s WiFiSecurityENUMType) IsValid() bool {
	switch s {
	case WiFiSecurityWPA, WiFiSecurityWEP, WiFiSecurityNone:
		return true
	}
	return false
}

// ParseWiFiSecurity parse a security type. Matching is exact; unrecognized values fall
// back to WPA.
func ParseWiFiSecurity(raw string) WiFiSecurityENUMType {
	security := WiFiSecurityENUMType(raw)
	if security.IsValid() {
		return security
	}
	return DefaultWiFiSecurity
}

// WiFiData Wi-Fi network credentials
type WiFiData struct {
	SSID     string               `json:"ssid"`
	Password string               `json:"password"`
	Security WiFiSecurityENUMType `json:"security" validate:"required,wifi_security"`
	Hidden   bool                 `json:"hidden"`
}

// NewWiFiData Wi-Fi credentials with default settings
func NewWiFiData() WiFiData {
	return WiFiData{Security: DefaultWiFiSecurity}
}

// ContactData contact card fields
type ContactData struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	URL          string `json:"url"`
}

// CalendarEventData calendar event fields
//
// The date and time-of-day of each end of the event are edited separately; they are only
// merged when the event is encoded.
type CalendarEventData struct {
	Title       string    `json:"title"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	AllDay      bool      `json:"all_day"`
}
