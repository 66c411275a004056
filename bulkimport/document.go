// Package bulkimport - batch import of QR records from a JSON document
package bulkimport

import "encoding/json"

// Document bulk import document
type Document struct {
	QRCodes []Item `json:"qr_codes"`
}

// Item one entry of a bulk import document. Every field is optional at the decode stage.
type Item struct {
	// Required
	Title *string `json:"title,omitempty"`
	Type  *string `json:"type,omitempty"`

	// Data content of the url, text, file, payment, and crypto kinds
	Data *string `json:"data,omitempty"`

	WiFiSSID     *string `json:"wifi_ssid,omitempty"`
	WiFiPassword *string `json:"wifi_password,omitempty"`
	WiFiSecurity *string `json:"wifi_security,omitempty"`
	WiFiHidden   *bool   `json:"wifi_hidden,omitempty"`

	ContactName         *string `json:"contact_name,omitempty"`
	ContactPhone        *string `json:"contact_phone,omitempty"`
	ContactEmail        *string `json:"contact_email,omitempty"`
	ContactOrganization *string `json:"contact_organization,omitempty"`
	ContactURL          *string `json:"contact_url,omitempty"`

	EventTitle       *string `json:"event_title,omitempty"`
	EventStartDate   *string `json:"event_start_date,omitempty"`
	EventEndDate     *string `json:"event_end_date,omitempty"`
	EventStartTime   *string `json:"event_start_time,omitempty"`
	EventEndTime     *string `json:"event_end_time,omitempty"`
	EventLocation    *string `json:"event_location,omitempty"`
	EventDescription *string `json:"event_description,omitempty"`
	EventAllDay      *bool   `json:"event_all_day,omitempty"`

	Tags            []string `json:"tags,omitempty"`
	IsFavorite      *bool    `json:"is_favorite,omitempty"`
	ErrorCorrection *string  `json:"error_correction,omitempty"`
	Size            *int     `json:"size,omitempty"`
}

// ImportError one failed item, or a document level failure at index 0
type ImportError struct {
	// Index 1-based position of the item in the document
	Index int `json:"index"`
	// Title the item's title, if it had one
	Title *string `json:"title,omitempty"`
	// Message user facing failure description
	Message string `json:"message"`
}

// Result outcome of one import
type Result struct {
	SuccessCount int           `json:"success_count"`
	Errors       []ImportError `json:"errors"`
}

type templateKind struct {
	Type           string   `json:"type"`
	RequiredFields []string `json:"required_fields"`
	OptionalFields []string `json:"optional_fields,omitempty"`
	Note           string   `json:"note,omitempty"`
	Example        Item     `json:"example"`
}

type templateInfo struct {
	Description  string         `json:"description"`
	Instructions []string       `json:"instructions"`
	Types        []templateKind `json:"types"`
}

type templateDocument struct {
	Info    templateInfo `json:"_template_info"`
	QRCodes []Item       `json:"qr_codes"`
}

func ptr[T any](v T) *T {
	return &v
}

func example(title, kind, data string) Item {
	return Item{Title: ptr(title), Type: ptr(kind), Data: ptr(data)}
}

/*
GenerateTemplate generate a bulk import template document

The template describes every kind and carries one example entry; importing it unchanged
yields one record.

	@returns the template as indented JSON
*/
func GenerateTemplate() ([]byte, error) {
	dataOnly := []string{"data"}
	template := templateDocument{
		Info: templateInfo{
			Description: "QRBook Bulk Import Template. Fill in the qr_codes array and import back into the app.",
			Instructions: []string{
				"Each entry needs a 'title' (display name) and 'type' (see types below).",
				"Most types just need a 'data' field with the content.",
				"WiFi, Contact, and Calendar types use their own prefixed fields instead of 'data'.",
				"Optional fields: 'tags' (array of strings), 'is_favorite' (true/false), 'error_correction' (L/M/Q/H), 'size' (256/512/1024).",
				"Dates use YYYY-MM-DD format. Times use HH:MM 24-hour format.",
			},
			Types: []templateKind{
				{
					Type:           "url",
					RequiredFields: dataOnly,
					Example:        example("My Website", "url", "https://example.com"),
				},
				{
					Type:           "text",
					RequiredFields: dataOnly,
					Example:        example("Welcome Message", "text", "Hello, scan this QR code!"),
				},
				{
					Type:           "wifi",
					RequiredFields: []string{"wifi_ssid"},
					OptionalFields: []string{
						"wifi_password", "wifi_security (WPA/WEP/nopass)", "wifi_hidden (true/false)",
					},
					Example: Item{
						Title:        ptr("Office WiFi"),
						Type:         ptr("wifi"),
						WiFiSSID:     ptr("MyNetwork"),
						WiFiPassword: ptr("secret123"),
						WiFiSecurity: ptr("WPA"),
					},
				},
				{
					Type:           "contact",
					RequiredFields: []string{"contact_name"},
					OptionalFields: []string{
						"contact_phone", "contact_email", "contact_organization", "contact_url",
					},
					Example: Item{
						Title:        ptr("John Doe"),
						Type:         ptr("contact"),
						ContactName:  ptr("John Doe"),
						ContactPhone: ptr("+1234567890"),
						ContactEmail: ptr("john@example.com"),
					},
				},
				{
					Type:           "calendar",
					RequiredFields: []string{"event_title", "event_start_date"},
					OptionalFields: []string{
						"event_end_date",
						"event_start_time",
						"event_end_time",
						"event_location",
						"event_description",
						"event_all_day (true/false)",
					},
					Example: Item{
						Title:          ptr("Team Meeting"),
						Type:           ptr("calendar"),
						EventTitle:     ptr("Weekly Standup"),
						EventStartDate: ptr("2025-03-15"),
						EventStartTime: ptr("09:00"),
						EventEndTime:   ptr("09:30"),
					},
				},
				{
					Type:           "venmo",
					RequiredFields: dataOnly,
					Note:           "data = Venmo username (with or without @)",
					Example:        example("Pay Me on Venmo", "venmo", "@username"),
				},
				{
					Type:           "paypal",
					RequiredFields: dataOnly,
					Note:           "data = PayPal.me username or email",
					Example:        example("PayPal Link", "paypal", "myusername"),
				},
				{
					Type:           "cashapp",
					RequiredFields: dataOnly,
					Note:           "data = Cash App $cashtag",
					Example:        example("Cash App", "cashapp", "$mycashtag"),
				},
				{
					Type:           "zelle",
					RequiredFields: dataOnly,
					Note:           "data = Zelle email or phone number",
					Example:        example("Zelle Payment", "zelle", "email@example.com"),
				},
				{
					Type:           "crypto",
					RequiredFields: dataOnly,
					Note:           "data = wallet address or payment URI",
					Example: example(
						"BTC Wallet", "crypto", "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
					),
				},
				{
					Type:           "file",
					RequiredFields: dataOnly,
					Note:           "data = URL to the file",
					Example: example(
						"Company Brochure", "file", "https://example.com/brochure.pdf",
					),
				},
			},
		},
		QRCodes: []Item{
			{
				Title:      ptr("Example - delete this and add your own"),
				Type:       ptr("url"),
				Data:       ptr("https://example.com"),
				Tags:       []string{"sample"},
				IsFavorite: ptr(false),
			},
		},
	}

	return json.MarshalIndent(&template, "", "  ")
}
