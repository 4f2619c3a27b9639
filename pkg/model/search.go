package model

// SearchRequest is the logical query contract. Location is ignored when blank
// (whitespace-only counts as blank), Guests when not positive. StartDate and
// EndDate come together or not at all; when present the stay range
// [StartDate, EndDate] is inclusive on both ends.
type SearchRequest struct {
	Location  string `json:"location"`
	Guests    int    `json:"guests"`
	StartDate *Date  `json:"startDate,omitempty"`
	EndDate   *Date  `json:"endDate,omitempty"`
}

// HasDateRange reports whether the request asks for full-range coverage and a
// stay price.
func (r *SearchRequest) HasDateRange() bool {
	return r.StartDate != nil && r.EndDate != nil
}

// SearchResult is a priced, admitted listing. UnitPrice is the nightly price
// of the last slot that contributed to the stay; TotalPrice is zero for
// date-less queries.
type SearchResult struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Photos      []string `json:"photos"`
	Amenities   []string `json:"amenities"`
	MinGuests   int      `json:"minGuests"`
	MaxGuests   int      `json:"maxGuests"`
	TotalPrice  Money    `json:"totalPrice"`
	UnitPrice   Money    `json:"unitPrice"`
	PricingMode string   `json:"pricingMode"`
}
