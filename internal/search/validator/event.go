package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"staysearch/pkg/logger"
	"staysearch/pkg/model"
)

// EventValidator checks decoded change events before they touch the index. A
// decodable but invalid event is still a malformed event: it is dropped, not
// retried.
type EventValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewEventValidator(log *logger.Logger) *EventValidator {
	return &EventValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (v *EventValidator) ValidateAccommodationEvent(e *model.AccommodationEvent) error {
	if err := v.validate.Struct(e); err != nil {
		return v.translate(err)
	}
	return nil
}

func (v *EventValidator) ValidateAvailabilityEvent(e *model.AvailabilityEvent) error {
	if err := v.validate.Struct(e); err != nil {
		return v.translate(err)
	}

	var verrs ValidationErrors

	// A delete only needs the slot and listing ids; the remaining fields are
	// meaningful on every other availability event type.
	if e.EventType != model.EventAvailabilityDeleted {
		if e.StartDate.IsZero() {
			verrs = append(verrs, ValidationError{Field: "startDate", Message: "is required"})
		}
		if e.EndDate.IsZero() {
			verrs = append(verrs, ValidationError{Field: "endDate", Message: "is required"})
		}
		if !e.StartDate.IsZero() && !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
			verrs = append(verrs, ValidationError{Field: "endDate", Message: "must not be before startDate"})
		}
		if e.Price.IsNegative() {
			verrs = append(verrs, ValidationError{Field: "price", Message: "must not be negative"})
		}
		if e.Status == "" {
			verrs = append(verrs, ValidationError{Field: "status", Message: "is required"})
		}
	}

	if len(verrs) > 0 {
		return verrs
	}
	return nil
}

func (v *EventValidator) translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var verrs ValidationErrors
	for _, fe := range fieldErrs {
		verrs = append(verrs, ValidationError{
			Field:   fe.Field(),
			Message: "failed rule " + fe.Tag(),
		})
	}
	return verrs
}
