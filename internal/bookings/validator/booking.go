package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"dreamshoots/pkg/logger"
	"dreamshoots/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Fields returns the offending field names in report order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, err := range v {
		fields = append(fields, err.Field)
	}
	return fields
}

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("booking_status", validateBookingStatus); err != nil {
		log.Fatal("Failed to register 'booking_status' validator",
			"error", err,
		)
	}

	log.Debug("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

// jsonFieldName reports fields by their wire name so clients can map errors
// back onto form inputs.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	_, err := model.ParseBookingStatus(fl.Field().String())
	return err == nil
}

// Validate checks an intake payload. Every failing field is reported.
func (v *BookingValidator) Validate(booking *model.BookingCreate) error {
	return v.check(booking)
}

func (v *BookingValidator) ValidateStatusUpdate(update *model.BookingStatusUpdate) error {
	return v.check(update)
}

func (v *BookingValidator) check(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "booking_status":
			message = fmt.Sprintf("%s must be one of: pending, confirmed, completed", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
