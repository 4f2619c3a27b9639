package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"staysearch/pkg/model"
)

func reqDate(day int) *model.Date {
	d := model.NewDate(2025, time.June, day)
	return &d
}

func TestValidateSearchRequest(t *testing.T) {
	v := NewRequestValidator(testLogger())

	tests := []struct {
		name  string
		req   *model.SearchRequest
		valid bool
	}{
		{"empty request", &model.SearchRequest{}, true},
		{"location and guests only", &model.SearchRequest{Location: "Novi Sad", Guests: 2}, true},
		{"full request", &model.SearchRequest{Guests: 2, StartDate: reqDate(1), EndDate: reqDate(5)}, true},
		{"single day stay", &model.SearchRequest{StartDate: reqDate(3), EndDate: reqDate(3)}, true},
		{"negative guests", &model.SearchRequest{Guests: -1}, false},
		{"start without end", &model.SearchRequest{StartDate: reqDate(1)}, false},
		{"end without start", &model.SearchRequest{EndDate: reqDate(1)}, false},
		{"end before start", &model.SearchRequest{StartDate: reqDate(5), EndDate: reqDate(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSearchRequest(tt.req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
