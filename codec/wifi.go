// Package codec - QR payload encoders and decoders
//
// Each structured kind has a small explicit grammar with a paired encoder and decoder. Field
// values are written verbatim: none of the grammars escape their own delimiters, so a value
// containing ';', ':' or a newline will not survive a round trip.
package codec

import (
	"fmt"
	"strings"

	"github.com/alwitt/qrbook/models"
)

// WiFiPrefix payload prefix of a Wi-Fi network payload
const WiFiPrefix = "WIFI:"

/*
EncodeWiFi encode Wi-Fi credentials

	@param wifi models.WiFiData - the network credentials
	@returns payload in the form "WIFI:T:<security>;S:<ssid>;P:<password>;H:<hidden>;;"
*/
func EncodeWiFi(wifi models.WiFiData) string {
	return fmt.Sprintf(
		"%sT:%s;S:%s;P:%s;H:%t;;", WiFiPrefix, wifi.Security, wifi.SSID, wifi.Password, wifi.Hidden,
	)
}

/*
DecodeWiFi decode a Wi-Fi network payload

Segments which are missing or unrecognized keep their defaults: empty SSID and password,
WPA security, not hidden.

	@param data string - the payload
	@returns the credentials, and whether the payload is a Wi-Fi payload
*/
func DecodeWiFi(data string) (models.WiFiData, bool) {
	if !strings.HasPrefix(data, WiFiPrefix) {
		return models.WiFiData{}, false
	}

	result := models.NewWiFiData()
	for _, segment := range strings.Split(strings.TrimPrefix(data, WiFiPrefix), ";") {
		switch {
		case strings.HasPrefix(segment, "T:"):
			result.Security = models.ParseWiFiSecurity(segment[2:])
		case strings.HasPrefix(segment, "S:"):
			result.SSID = segment[2:]
		case strings.HasPrefix(segment, "P:"):
			result.Password = segment[2:]
		case strings.HasPrefix(segment, "H:"):
			result.Hidden = strings.EqualFold(segment[2:], "true")
		}
	}
	return result, true
}
