package models

import (
	"reflect"

	"github.com/alwitt/qrbook/validation"
	"github.com/go-playground/validator/v10"
)

/*
RegisterWithValidator register with the validator this custom validation support

	@param v *validator.Validate - the validator to register against
	@return whether successful
*/
func RegisterWithValidator(v *validator.Validate) error {
	if err := v.RegisterValidation(
		"qr_kind", validateKindType,
	); err != nil {
		return err
	}

	if err := v.RegisterValidation(
		"error_correction", validateErrorCorrectionType,
	); err != nil {
		return err
	}

	if err := v.RegisterValidation(
		"wifi_security", validateWiFiSecurityType,
	); err != nil {
		return err
	}

	if err := v.RegisterValidation(
		"qr_tag", validateTag,
	); err != nil {
		return err
	}

	if err := v.RegisterValidation(
		"system_event_type", validateSystemEventType,
	); err != nil {
		return err
	}

	return nil
}

/*
NewValidator define a validator with the custom validation support installed

	@return the validator
*/
func NewValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := RegisterWithValidator(v); err != nil {
		return nil, err
	}
	return v, nil
}

func validateKindType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return KindENUMType(fl.Field().String()).IsValid()
}

func validateErrorCorrectionType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return ErrorCorrectionENUMType(fl.Field().String()).IsValid()
}

func validateWiFiSecurityType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return WiFiSecurityENUMType(fl.Field().String()).IsValid()
}

func validateTag(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return validation.ValidateTag(fl.Field().String()) == nil
}

func validateSystemEventType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	switch SystemEventTypeENUMType(fl.Field().String()) {
	case SystemEventTypeAddNewRecord:
		fallthrough
	case SystemEventTypeUpdateRecord:
		fallthrough
	case SystemEventTypeDeleteRecord:
		fallthrough
	case SystemEventTypeBulkImport:
		fallthrough
	case SystemEventTypeAddNewFolder:
		fallthrough
	case SystemEventTypeDeleteFolder:
		return true
	}
	return false
}
