// Package models - system data models
package models

import "strings"

// KindENUMType QR code payload kind ENUM value type
type KindENUMType string

const (
	// KindURL link to a website or web resource
	KindURL KindENUMType = "url"
	// KindText plain text content
	KindText KindENUMType = "text"
	// KindWiFi Wi-Fi network credentials
	KindWiFi KindENUMType = "wifi"
	// KindContact contact information (vCard)
	KindContact KindENUMType = "contact"
	// KindFile link to a file or document
	KindFile KindENUMType = "file"
	// KindVenmo Venmo payment link
	KindVenmo KindENUMType = "venmo"
	// KindPayPal PayPal payment link
	KindPayPal KindENUMType = "paypal"
	// KindCashApp Cash App payment link
	KindCashApp KindENUMType = "cashapp"
	// KindZelle Zelle payment information
	KindZelle KindENUMType = "zelle"
	// KindCrypto cryptocurrency wallet address
	KindCrypto KindENUMType = "crypto"
	// KindCalendar calendar event details
	KindCalendar KindENUMType = "calendar"
)

// AllKinds every supported kind, in display order
var AllKinds = []KindENUMType{
	KindURL,
	KindText,
	KindWiFi,
	KindContact,
	KindFile,
	KindVenmo,
	KindPayPal,
	KindCashApp,
	KindZelle,
	KindCrypto,
	KindCalendar,
}

// kindLabels display labels
var kindLabels = map[KindENUMType]string{
	KindURL:      "URL",
	KindText:     "Text",
	KindWiFi:     "Wi-Fi",
	KindContact:  "Contact",
	KindFile:     "File",
	KindVenmo:    "Venmo",
	KindPayPal:   "PayPal",
	KindCashApp:  "Cash App",
	KindZelle:    "Zelle",
	KindCrypto:   "Crypto",
	KindCalendar: "Calendar",
}

// kindDescriptions display descriptions
var kindDescriptions = map[KindENUMType]string{
	KindURL:      "Link to a website or web resource",
	KindText:     "Plain text content",
	KindWiFi:     "Wi-Fi network credentials",
	KindContact:  "Contact information (vCard)",
	KindFile:     "Link to a file or document",
	KindVenmo:    "Venmo payment link",
	KindPayPal:   "PayPal payment link",
	KindCashApp:  "Cash App payment link",
	KindZelle:    "Zelle payment information",
	KindCrypto:   "Cryptocurrency wallet address",
	KindCalendar: "Calendar event details",
}

// Label human readable name of the kind
func (k KindENUMType) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// Description human readable description of the kind
func (k KindENUMType) Description() string {
	return kindDescriptions[k]
}

// IsValid whether the kind is one of the supported kinds
func (k KindENUMType) IsValid() bool {
	_, ok := kindLabels[k]
	return ok
}

// IsPayment whether the kind is one of the payment handle kinds.
//
// Payloads of these kinds are always the complete shareable string.
func (k KindENUMType) IsPayment() bool {
	switch k {
	case KindVenmo, KindPayPal, KindCashApp, KindZelle:
		return true
	}
	return false
}

// IsStructured whether the payload of the kind is a multi-field encoding
func (k KindENUMType) IsStructured() bool {
	switch k {
	case KindWiFi, KindContact, KindCalendar:
		return true
	}
	return false
}

/*
LookupKind strict kind lookup, case-insensitive

	@param raw string - raw kind identifier
	@returns the kind, and whether the identifier is recognized
*/
func LookupKind(raw string) (KindENUMType, bool) {
	kind := KindENUMType(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.IsValid() {
		return "", false
	}
	return kind, true
}

// ParseKind parse a stored kind identifier. Unrecognized values fall back to KindText.
func ParseKind(raw string) KindENUMType {
	if kind, ok := LookupKind(raw); ok {
		return kind
	}
	return KindText
}

// KindIdentifiers the raw identifiers of all supported kinds, in display order
func KindIdentifiers() []string {
	result := make([]string, 0, len(AllKinds))
	for _, kind := range AllKinds {
		result = append(result, string(kind))
	}
	return result
}
