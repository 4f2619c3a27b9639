package validator

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staysearch/pkg/logger"
	"staysearch/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Output:  io.Discard,
		Service: "test",
	})
}

func validAccommodationEvent() *model.AccommodationEvent {
	return &model.AccommodationEvent{
		EventType:   model.EventAccommodationCreated,
		ID:          "acc-1",
		Name:        "Sea View Apartment",
		MinGuests:   1,
		MaxGuests:   4,
		PricingMode: "PER_ACCOMMODATION",
		Location:    model.Location{Country: "RS", City: "Novi Sad"},
	}
}

func validAvailabilityEvent() *model.AvailabilityEvent {
	start, _ := model.ParseDate("2025-06-01")
	end, _ := model.ParseDate("2025-06-10")
	return &model.AvailabilityEvent{
		EventType:       model.EventAvailabilityCreated,
		ID:              "slot-1",
		AccommodationID: "acc-1",
		StartDate:       start,
		EndDate:         end,
		Price:           model.MustMoney("100"),
		PriceType:       "NIGHTLY",
		Status:          model.StatusAvailable,
	}
}

func TestValidateAccommodationEvent(t *testing.T) {
	v := NewEventValidator(testLogger())

	tests := []struct {
		name   string
		mutate func(e *model.AccommodationEvent)
		valid  bool
	}{
		{"valid event", func(e *model.AccommodationEvent) {}, true},
		{"missing event type", func(e *model.AccommodationEvent) { e.EventType = "" }, false},
		{"missing id", func(e *model.AccommodationEvent) { e.ID = "" }, false},
		{"negative min guests", func(e *model.AccommodationEvent) { e.MinGuests = -1 }, false},
		{"max below min", func(e *model.AccommodationEvent) { e.MinGuests = 4; e.MaxGuests = 2 }, false},
		{"equal min and max", func(e *model.AccommodationEvent) { e.MinGuests = 2; e.MaxGuests = 2 }, true},
		{"zero capacity", func(e *model.AccommodationEvent) { e.MinGuests = 0; e.MaxGuests = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validAccommodationEvent()
			tt.mutate(e)
			err := v.ValidateAccommodationEvent(e)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateAvailabilityEvent(t *testing.T) {
	v := NewEventValidator(testLogger())

	tests := []struct {
		name   string
		mutate func(e *model.AvailabilityEvent)
		valid  bool
	}{
		{"valid event", func(e *model.AvailabilityEvent) {}, true},
		{"missing event type", func(e *model.AvailabilityEvent) { e.EventType = "" }, false},
		{"missing slot id", func(e *model.AvailabilityEvent) { e.ID = "" }, false},
		{"missing listing id", func(e *model.AvailabilityEvent) { e.AccommodationID = "" }, false},
		{"missing start date", func(e *model.AvailabilityEvent) { e.StartDate = model.Date{} }, false},
		{"missing end date", func(e *model.AvailabilityEvent) { e.EndDate = model.Date{} }, false},
		{"end before start", func(e *model.AvailabilityEvent) {
			e.StartDate, e.EndDate = e.EndDate, e.StartDate
		}, false},
		{"single day slot", func(e *model.AvailabilityEvent) { e.EndDate = e.StartDate }, true},
		{"negative price", func(e *model.AvailabilityEvent) { e.Price = model.MustMoney("-1") }, false},
		{"zero price", func(e *model.AvailabilityEvent) { e.Price = model.ZeroMoney }, true},
		{"missing status", func(e *model.AvailabilityEvent) { e.Status = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validAvailabilityEvent()
			tt.mutate(e)
			err := v.ValidateAvailabilityEvent(e)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateAvailabilityEvent_DeleteNeedsOnlyIDs(t *testing.T) {
	v := NewEventValidator(testLogger())

	err := v.ValidateAvailabilityEvent(&model.AvailabilityEvent{
		EventType:       model.EventAvailabilityDeleted,
		ID:              "slot-1",
		AccommodationID: "acc-1",
	})
	assert.NoError(t, err)
}

func TestValidateAvailabilityEvent_ErrorNamesFields(t *testing.T) {
	v := NewEventValidator(testLogger())

	e := validAvailabilityEvent()
	e.StartDate = model.Date{}
	e.Status = ""
	err := v.ValidateAvailabilityEvent(e)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, "startDate", verrs[0].Field)
	assert.Equal(t, "status", verrs[1].Field)
}
