package validator

import (
	"staysearch/pkg/logger"
	"staysearch/pkg/model"
)

// RequestValidator checks the logical search request. Capacity and coverage
// misses are never validation failures; only a self-contradictory request is.
type RequestValidator struct {
	logger *logger.Logger
}

func NewRequestValidator(log *logger.Logger) *RequestValidator {
	return &RequestValidator{logger: log}
}

func (v *RequestValidator) ValidateSearchRequest(req *model.SearchRequest) error {
	var verrs ValidationErrors

	if req.Guests < 0 {
		verrs = append(verrs, ValidationError{Field: "guests", Message: "must not be negative"})
	}

	// A stay range needs both ends.
	if (req.StartDate == nil) != (req.EndDate == nil) {
		verrs = append(verrs, ValidationError{Field: "startDate", Message: "startDate and endDate must be provided together"})
	}
	if req.HasDateRange() && req.EndDate.Before(*req.StartDate) {
		verrs = append(verrs, ValidationError{Field: "endDate", Message: "must not be before startDate"})
	}

	if len(verrs) > 0 {
		return verrs
	}
	return nil
}
