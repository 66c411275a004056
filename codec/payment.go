package codec

import (
	"strings"

	"github.com/alwitt/qrbook/models"
)

const (
	// VenmoPrefix Venmo profile link prefix
	VenmoPrefix = "https://venmo.com/"
	// PayPalPrefix PayPal.me link prefix
	PayPalPrefix = "https://www.paypal.com/paypalme/"
	// CashAppPrefix Cash App link prefix
	CashAppPrefix = "https://cash.app/$"
	// ZellePrefix Zelle payload prefix
	ZellePrefix = "Zelle: "
)

// stripLeading trim whitespace and any leading marker characters
func stripLeading(handle string, marker string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(handle), marker))
}

// EncodeVenmo build a Venmo link from a username, with or without the leading "@"
func EncodeVenmo(username string) string {
	return VenmoPrefix + stripLeading(username, "@")
}

// EncodePayPal build a PayPal.me link from a username or email.
//
// Emails are not distinguished from usernames; both are placed in the link path as-is.
func EncodePayPal(handle string) string {
	return PayPalPrefix + strings.TrimSpace(handle)
}

// EncodeCashApp build a Cash App link from a cashtag, with or without the leading "$"
func EncodeCashApp(cashtag string) string {
	return CashAppPrefix + stripLeading(cashtag, "$")
}

// EncodeZelle build a Zelle payload from an email or phone number
func EncodeZelle(contact string) string {
	return ZellePrefix + strings.TrimSpace(contact)
}

// EncodeCrypto the wallet address or payment URI is the payload
func EncodeCrypto(address string) string {
	return strings.TrimSpace(address)
}

/*
DecodePayment recover the handle from a payment payload

	@param data string - the payload
	@param kind models.KindENUMType - the payload kind
	@returns the handle; for non-payment kinds the payload unchanged
*/
func DecodePayment(data string, kind models.KindENUMType) string {
	switch kind {
	case models.KindVenmo:
		return strings.TrimPrefix(data, VenmoPrefix)
	case models.KindPayPal:
		return strings.TrimPrefix(data, PayPalPrefix)
	case models.KindCashApp:
		return strings.TrimPrefix(data, CashAppPrefix)
	case models.KindZelle:
		return strings.TrimPrefix(data, ZellePrefix)
	}
	return data
}
