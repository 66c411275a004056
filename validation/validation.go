// Package validation - user input validation rules
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxTitleLength max title length
	MaxTitleLength = 200
	// MaxTextLength max text payload length, derived from the QR byte capacity
	MaxTextLength = 4296
	// MaxURLLength max URL length
	MaxURLLength = 2048
	// MaxTagLength max tag length
	MaxTagLength = 50
)

// syntax checks for values which need more than a length test
var syntax = validator.New()

/*
ValidateTitle verify a record title

	@param title string - the title
	@returns nil if valid, otherwise error carrying the user facing message
*/
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return errors.New("Title is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return fmt.Errorf("Title must be less than %d characters", MaxTitleLength)
	}
	return nil
}

/*
ValidateText verify a free text payload

	@param text string - the text
	@returns nil if valid, otherwise error carrying the user facing message
*/
func ValidateText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return errors.New("Text content is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxTextLength {
		return fmt.Errorf("Text must be less than %d characters", MaxTextLength)
	}
	return nil
}

/*
ValidateURL verify a URL. The check is performed against the normalized form, so a URL
without a scheme is accepted.

	@param url string - the URL
	@returns nil if valid, otherwise error carrying the user facing message
*/
func ValidateURL(url string) error {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return errors.New("URL is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxURLLength {
		return fmt.Errorf("URL must be less than %d characters", MaxURLLength)
	}
	if err := syntax.Var(NormalizeURL(trimmed), "url"); err != nil {
		return errors.New("Please enter a valid URL")
	}
	return nil
}

// NormalizeURL trim the URL and add "https://" if it has no http(s) scheme
func NormalizeURL(url string) string {
	trimmed := strings.TrimSpace(url)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	return "https://" + trimmed
}

/*
ValidateTag verify a record tag

	@param tag string - the tag
	@returns nil if valid, otherwise error carrying the user facing message
*/
func ValidateTag(tag string) error {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return errors.New("Tag cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxTagLength {
		return fmt.Errorf("Tag must be less than %d characters", MaxTagLength)
	}
	for _, r := range trimmed {
		if !isTagRune(r) {
			return errors.New(
				"Tags can only contain letters, numbers, spaces, hyphens, and underscores",
			)
		}
	}
	return nil
}

// isTagRune letters, digits, horizontal whitespace, '-' and '_'
func isTagRune(r rune) bool {
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r):
		return true
	case r == ' ', r == '\t', unicode.Is(unicode.Zs, r):
		return true
	case r == '-', r == '_':
		return true
	}
	return false
}

/*
ValidateRequired verify a required field is not blank

	@param value string - the field value
	@param fieldName string - display name of the field
	@returns nil if valid, otherwise error carrying the user facing message
*/
func ValidateRequired(value string, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}
