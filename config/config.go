// Package config - runtime settings
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/alwitt/qrbook/models"
	"github.com/apex/log"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gorm.io/gorm/logger"
)

// Settings runtime settings, passed explicitly to the components which need them
type Settings struct {
	// DBFile SQLite DB file
	DBFile string `env:"QRBOOK_DB_FILE" envDefault:"qrbook.db" validate:"required"`
	// DBLogLevel SQL log level
	DBLogLevel string `env:"QRBOOK_DB_LOG_LEVEL" envDefault:"error" validate:"oneof=silent error warn info"`
	// LogLevel application log level
	LogLevel string `env:"QRBOOK_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error fatal"`

	// DefaultSizePx rendered size of new records
	DefaultSizePx int `env:"QRBOOK_DEFAULT_SIZE_PX" envDefault:"512" validate:"gt=0,lte=4096"`
	// DefaultErrorCorrection error correction level of new records
	DefaultErrorCorrection string `env:"QRBOOK_DEFAULT_ERROR_CORRECTION" envDefault:"M" validate:"oneof=L M Q H"`

	// RecentLimit number of records shown in the recent view
	RecentLimit int `env:"QRBOOK_RECENT_LIMIT" envDefault:"10" validate:"gt=0"`
	// CollationLanguage BCP 47 tag of the language used to sort titles
	CollationLanguage string `env:"QRBOOK_COLLATION_LANGUAGE" envDefault:"en" validate:"required,bcp47_language_tag"`
	// CalendarTimezone IANA zone in which calendar wall-clock values are interpreted
	CalendarTimezone string `env:"QRBOOK_CALENDAR_TZ" envDefault:"Local" validate:"required"`
}

/*
LoadSettings read settings from the environment

	@returns validated settings
*/
func LoadSettings() (Settings, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings from environment [%w]", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

/*
DefaultSettings settings with every default applied

	@returns the settings
*/
func DefaultSettings() Settings {
	var settings Settings
	// Parsing an empty environment only applies defaults
	_ = env.ParseWithOptions(&settings, env.Options{Environment: map[string]string{}})
	return settings
}

// Validate check the settings
func (s Settings) Validate() error {
	if err := validator.New().Struct(&s); err != nil {
		return fmt.Errorf("invalid settings [%w]", err)
	}
	if _, err := time.LoadLocation(s.CalendarTimezone); err != nil {
		return fmt.Errorf("unknown calendar timezone '%s' [%w]", s.CalendarTimezone, err)
	}
	return nil
}

// ErrorCorrection the default error correction level
func (s Settings) ErrorCorrection() models.ErrorCorrectionENUMType {
	return models.ParseErrorCorrection(s.DefaultErrorCorrection)
}

// Collation the title collation language
func (s Settings) Collation() language.Tag {
	tag, err := language.Parse(s.CollationLanguage)
	if err != nil {
		return language.English
	}
	return tag
}

// CalendarLocation the calendar location
func (s Settings) CalendarLocation() *time.Location {
	loc, err := time.LoadLocation(s.CalendarTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// SQLLogLevel the GORM log level
func (s Settings) SQLLogLevel() logger.LogLevel {
	switch strings.ToLower(s.DBLogLevel) {
	case "silent":
		return logger.Silent
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	}
	return logger.Error
}

// ApplyLogLevel set the application log level
func (s Settings) ApplyLogLevel() {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
