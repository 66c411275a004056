package codec

import (
	"strings"

	"github.com/alwitt/qrbook/models"
)

const (
	vCardBegin = "BEGIN:VCARD"
	vCardEnd   = "END:VCARD"
)

/*
EncodeContact encode a contact card as vCard 3.0

Optional fields are omitted entirely when empty.

	@param contact models.ContactData - the contact
	@returns the vCard lines joined by "\n"
*/
func EncodeContact(contact models.ContactData) string {
	lines := []string{vCardBegin, "VERSION:3.0"}

	if contact.Name != "" {
		lines = append(lines, "FN:"+contact.Name)
		// LAST;FIRST split on the first space
		first, last, found := strings.Cut(contact.Name, " ")
		if found && first != "" && last != "" {
			lines = append(lines, "N:"+last+";"+first+";;;")
		} else {
			lines = append(lines, "N:"+contact.Name+";;;;")
		}
	}

	if contact.Phone != "" {
		lines = append(lines, "TEL;TYPE=CELL:"+contact.Phone)
	}
	if contact.Email != "" {
		lines = append(lines, "EMAIL:"+contact.Email)
	}
	if contact.Organization != "" {
		lines = append(lines, "ORG:"+contact.Organization)
	}
	if contact.URL != "" {
		lines = append(lines, "URL:"+contact.URL)
	}

	lines = append(lines, vCardEnd)
	return strings.Join(lines, "\n")
}

/*
DecodeContact decode a vCard payload

	@param data string - the payload
	@returns the contact, and whether the payload is a vCard
*/
func DecodeContact(data string) (models.ContactData, bool) {
	if !strings.Contains(data, vCardBegin) {
		return models.ContactData{}, false
	}

	var result models.ContactData
	for _, line := range splitLines(data) {
		switch {
		case strings.HasPrefix(line, "FN:"):
			result.Name = strings.TrimPrefix(line, "FN:")
		case strings.HasPrefix(line, "TEL"):
			// TEL carries parameters, e.g. "TEL;TYPE=CELL:"
			if _, value, found := strings.Cut(line, ":"); found {
				result.Phone = value
			}
		case strings.HasPrefix(line, "EMAIL:"):
			result.Email = strings.TrimPrefix(line, "EMAIL:")
		case strings.HasPrefix(line, "ORG:"):
			result.Organization = strings.TrimPrefix(line, "ORG:")
		case strings.HasPrefix(line, "URL:"):
			result.URL = strings.TrimPrefix(line, "URL:")
		}
	}
	return result, true
}

// splitLines split on "\n", dropping a trailing "\r" from each line
func splitLines(data string) []string {
	lines := strings.Split(data, "\n")
	for idx, line := range lines {
		lines[idx] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
