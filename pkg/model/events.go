package model

// Event type discriminators, as emitted by the upstream accommodations
// service. Unknown types are dropped with a log line.
const (
	EventAccommodationCreated = "AccommodationCreated"
	EventAccommodationUpdated = "AccommodationUpdated"

	EventAvailabilityCreated       = "AvailabilityCreated"
	EventAvailabilityUpdated       = "AvailabilityUpdated"
	EventAvailabilityStatusChanged = "AvailabilityStatusChanged"
	EventAvailabilityDeleted       = "AvailabilityDeleted"
)

// AccommodationEvent carries the full listing attribute set. Created and
// Updated share the shape; both upsert the document and neither carries (or
// may overwrite) the availabilities collection.
type AccommodationEvent struct {
	EventType   string   `json:"eventType" validate:"required"`
	ID          string   `json:"id" validate:"required"`
	HostID      string   `json:"hostId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MinGuests   int      `json:"minGuests" validate:"min=0"`
	MaxGuests   int      `json:"maxGuests" validate:"min=0,gtefield=MinGuests"`
	AutoConfirm bool     `json:"autoConfirm"`
	PricingMode string   `json:"pricingMode"`
	Location    Location `json:"location"`
	Amenities   []string `json:"amenities"`
	Photos      []string `json:"photos"`
}

// Listing maps the event payload onto a document, leaving Availabilities nil.
// The repository's upsert never writes that field.
func (e *AccommodationEvent) Listing() *Listing {
	return &Listing{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		MinGuests:   e.MinGuests,
		MaxGuests:   e.MaxGuests,
		AutoConfirm: e.AutoConfirm,
		PricingMode: e.PricingMode,
		Location:    e.Location,
		Amenities:   e.Amenities,
		Photos:      e.Photos,
	}
}

// AvailabilityEvent is scoped to a single slot of a single listing.
type AvailabilityEvent struct {
	EventType       string `json:"eventType" validate:"required"`
	ID              string `json:"id" validate:"required"`
	AccommodationID string `json:"accommodationId" validate:"required"`
	StartDate       Date   `json:"startDate"`
	EndDate         Date   `json:"endDate"`
	Price           Money  `json:"price"`
	PriceType       string `json:"priceType"`
	Status          string `json:"status"`
}

func (e *AvailabilityEvent) Slot() AvailabilitySlot {
	return AvailabilitySlot{
		ID:        e.ID,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Price:     e.Price,
		PriceType: e.PriceType,
		Status:    e.Status,
	}
}
