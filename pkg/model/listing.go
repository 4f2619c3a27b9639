package model

import "strings"

const (
	// StatusAvailable is the only slot status that participates in coverage
	// and pricing. Other statuses (BOOKED, upstream-specific tags) are kept
	// on the document but ignored by the engine.
	StatusAvailable = "AVAILABLE"

	PricingModePerPerson        = "PER_PERSON"
	PricingModePerNight         = "PER_NIGHT"
	PricingModePerAccommodation = "PER_ACCOMMODATION"
)

// PricesPerPerson reports whether a pricing mode scales with guest count.
// Anything not recognized as PER_PERSON prices the whole accommodation.
func PricesPerPerson(mode string) bool {
	return strings.EqualFold(mode, PricingModePerPerson)
}

type Location struct {
	Country    string `json:"country" bson:"country"`
	City       string `json:"city" bson:"city"`
	Address    string `json:"address" bson:"address"`
	PostalCode string `json:"postalCode" bson:"postal_code"`
}

// AvailabilitySlot is a priced, dated, status-tagged sub-range of a listing's
// calendar. Both dates are inclusive. Slots within one listing are unique by
// ID but may overlap or leave gaps.
type AvailabilitySlot struct {
	ID        string `json:"id" bson:"id" validate:"required"`
	StartDate Date   `json:"startDate" bson:"start_date" validate:"required"`
	EndDate   Date   `json:"endDate" bson:"end_date" validate:"required"`
	Price     Money  `json:"price" bson:"price"`
	PriceType string `json:"priceType" bson:"price_type"`
	Status    string `json:"status" bson:"status" validate:"required"`
}

// Listing is the denormalized searchable aggregate. The document id is the
// upstream listing id and is stable across the listing's lifetime. The
// availabilities collection is owned by availability events only; listing
// events never touch it.
type Listing struct {
	ID             string             `json:"id" bson:"_id"`
	Name           string             `json:"name" bson:"name"`
	Description    string             `json:"description" bson:"description"`
	MinGuests      int                `json:"minGuests" bson:"min_guests"`
	MaxGuests      int                `json:"maxGuests" bson:"max_guests"`
	AutoConfirm    bool               `json:"autoConfirm" bson:"auto_confirm"`
	PricingMode    string             `json:"pricingMode" bson:"pricing_mode"`
	Location       Location           `json:"location" bson:"location"`
	Amenities      []string           `json:"amenities" bson:"amenities"`
	Photos         []string           `json:"photos" bson:"photos"`
	Availabilities []AvailabilitySlot `json:"availabilities" bson:"availabilities"`
}

// UpsertSlot replaces the slot with the same id, or appends when absent.
// Replaying the same event is a no-op on the final state.
func (l *Listing) UpsertSlot(slot AvailabilitySlot) {
	l.RemoveSlot(slot.ID)
	l.Availabilities = append(l.Availabilities, slot)
}

// RemoveSlot deletes the slot with the given id, if present.
func (l *Listing) RemoveSlot(id string) {
	kept := l.Availabilities[:0]
	for _, s := range l.Availabilities {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	l.Availabilities = kept
}
