package codec_test

import (
	"testing"
	"time"

	"github.com/alwitt/qrbook/codec"
	"github.com/alwitt/qrbook/models"
	"github.com/stretchr/testify/assert"
)

func TestPaymentEncode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("https://venmo.com/john", codec.EncodeVenmo("@john"))
	assert.Equal("https://venmo.com/john", codec.EncodeVenmo("  john "))
	assert.Equal("https://venmo.com/john", codec.EncodeVenmo(" @john"))

	assert.Equal("https://www.paypal.com/paypalme/myusername", codec.EncodePayPal("myusername"))
	assert.Equal(
		"https://www.paypal.com/paypalme/me@example.com", codec.EncodePayPal(" me@example.com "),
	)

	assert.Equal("https://cash.app/$mycashtag", codec.EncodeCashApp("$mycashtag"))
	assert.Equal("https://cash.app/$mycashtag", codec.EncodeCashApp(" mycashtag"))

	assert.Equal("Zelle: email@example.com", codec.EncodeZelle(" email@example.com "))

	assert.Equal(
		"bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
		codec.EncodeCrypto(" bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh\n"),
	)
}

func TestPaymentDecode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("john", codec.DecodePayment("https://venmo.com/john", models.KindVenmo))
	assert.Equal(
		"me@example.com",
		codec.DecodePayment("https://www.paypal.com/paypalme/me@example.com", models.KindPayPal),
	)
	assert.Equal("tag", codec.DecodePayment("https://cash.app/$tag", models.KindCashApp))
	assert.Equal("555-0100", codec.DecodePayment("Zelle: 555-0100", models.KindZelle))

	// Kinds without a prefix are returned unchanged
	assert.Equal("bc1q", codec.DecodePayment("bc1q", models.KindCrypto))
	assert.Equal("https://venmo.com/john", codec.DecodePayment("https://venmo.com/john", models.KindURL))

	// Each inverse recovers the cleaned handle
	for _, tc := range []struct {
		kind    models.KindENUMType
		encoded string
		handle  string
	}{
		{kind: models.KindVenmo, encoded: codec.EncodeVenmo("@alice"), handle: "alice"},
		{kind: models.KindPayPal, encoded: codec.EncodePayPal("alice"), handle: "alice"},
		{kind: models.KindCashApp, encoded: codec.EncodeCashApp("$alice"), handle: "alice"},
		{kind: models.KindZelle, encoded: codec.EncodeZelle("alice@example.com"), handle: "alice@example.com"},
	} {
		assert.Equal(tc.handle, codec.DecodePayment(tc.encoded, tc.kind))
	}
}

func TestDecodeForEdit(t *testing.T) {
	assert := assert.New(t)

	// Case 0: structured kinds
	{
		wifi := models.WiFiData{SSID: "Home", Password: "pw", Security: models.WiFiSecurityWEP}
		decoded, ok := codec.DecodeForEdit(codec.EncodeWiFi(wifi), models.KindWiFi, time.UTC)
		assert.True(ok)
		assert.Equal(wifi, decoded.WiFi)

		contact := models.ContactData{Name: "John Doe", Email: "john@example.com"}
		decoded, ok = codec.DecodeForEdit(codec.EncodeContact(contact), models.KindContact, time.UTC)
		assert.True(ok)
		assert.Equal(contact, decoded.Contact)

		decoded, ok = codec.DecodeForEdit(
			"BEGIN:VEVENT\nSUMMARY:Party\nEND:VEVENT", models.KindCalendar, time.UTC,
		)
		assert.True(ok)
		assert.Equal("Party", decoded.Calendar.Title)
	}

	// Case 1: structured payload not matching its grammar
	{
		decoded, ok := codec.DecodeForEdit("garbage", models.KindWiFi, time.UTC)
		assert.False(ok)
		assert.Equal(models.NewWiFiData(), decoded.WiFi)

		_, ok = codec.DecodeForEdit("garbage", models.KindContact, nil)
		assert.False(ok)

		_, ok = codec.DecodeForEdit("garbage", models.KindCalendar, nil)
		assert.False(ok)
	}

	// Case 2: payment kinds
	{
		decoded, ok := codec.DecodeForEdit("https://venmo.com/john", models.KindVenmo, nil)
		assert.True(ok)
		assert.Equal("john", decoded.Data)
	}

	// Case 3: pass-through kinds
	for _, kind := range []models.KindENUMType{
		models.KindURL, models.KindText, models.KindFile, models.KindCrypto,
	} {
		decoded, ok := codec.DecodeForEdit("Zelle: raw", kind, nil)
		assert.True(ok)
		assert.Equal("Zelle: raw", decoded.Data)
		assert.Equal(kind, decoded.Kind)
	}
}

func TestEncodeData(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("https://venmo.com/john", codec.EncodeData(models.KindVenmo, "@john"))
	assert.Equal("https://www.paypal.com/paypalme/john", codec.EncodeData(models.KindPayPal, "john"))
	assert.Equal("https://cash.app/$john", codec.EncodeData(models.KindCashApp, "$john"))
	assert.Equal("Zelle: john", codec.EncodeData(models.KindZelle, "john"))
	assert.Equal("addr", codec.EncodeData(models.KindCrypto, " addr "))
	assert.Equal(" hello ", codec.EncodeData(models.KindText, " hello "))
}

func TestDetectKind(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(models.KindWiFi, codec.DetectKind("WIFI:T:WPA;S:Home;P:pw;H:false;;"))
	assert.Equal(models.KindContact, codec.DetectKind("BEGIN:VCARD\nFN:A\nEND:VCARD"))
	assert.Equal(models.KindCalendar, codec.DetectKind("BEGIN:VCALENDAR\nBEGIN:VEVENT\nEND:VEVENT"))
	assert.Equal(models.KindURL, codec.DetectKind("https://example.com"))
	assert.Equal(models.KindURL, codec.DetectKind("http://example.com"))
	assert.Equal(models.KindText, codec.DetectKind("hello world"))
	assert.Equal(models.KindText, codec.DetectKind("https:/broken"))
}
