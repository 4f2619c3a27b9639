// Package pricing decides whether a listing can host a requested stay and
// what the stay costs. Evaluate is a pure function over the listing document
// and the request: no I/O, no shared state, safe to call concurrently across
// candidate documents.
package pricing

import (
	"sort"

	"staysearch/pkg/model"
)

// Evaluate admits or rejects a listing for the request and prices the stay.
//
// The capacity gate applies whenever the request carries a positive guest
// count. Without a date range any listing passing the gate is admitted; the
// unit price is taken from the first AVAILABLE slot in collection order (zero
// when there is none) and the total stays zero. With a date range the stay
// must be fully covered, gap-free, by AVAILABLE slots; each slot's overlap
// with the still-uncovered prefix contributes price x days (x guests under
// PER_PERSON) to the total.
func Evaluate(listing *model.Listing, req *model.SearchRequest) (*model.SearchResult, bool) {
	if req.Guests > 0 {
		if req.Guests < listing.MinGuests || req.Guests > listing.MaxGuests {
			return nil, false
		}
	}

	if !req.HasDateRange() {
		return result(listing, model.ZeroMoney, firstAvailablePrice(listing)), true
	}

	totalPrice, unitPrice, covered := priceStay(listing, req)
	if !covered {
		return nil, false
	}
	return result(listing, totalPrice, unitPrice), true
}

// priceStay runs the greedy coverage sweep over [req.StartDate, req.EndDate],
// both inclusive. The cursor marks the first still-uncovered day; candidate
// slots are visited in ascending start order and each one prices the overlap
// between itself and the uncovered suffix. A slot starting past the cursor
// leaves a gap, which rejects the listing outright.
func priceStay(listing *model.Listing, req *model.SearchRequest) (total, unit model.Money, covered bool) {
	start := *req.StartDate
	end := *req.EndDate

	slots := overlappingAvailable(listing, start, end)

	perPerson := model.PricesPerPerson(listing.PricingMode) && req.Guests > 0

	cursor := start
	for _, slot := range slots {
		if slot.StartDate.After(cursor) {
			return model.ZeroMoney, model.ZeroMoney, false
		}

		overlapStart := model.MaxDate(cursor, slot.StartDate)
		overlapEnd := model.MinDate(end, slot.EndDate)

		days := overlapStart.DaysUntil(overlapEnd) + 1
		if days <= 0 {
			continue
		}

		unit = slot.Price
		nights := int64(days)
		if perPerson {
			nights *= int64(req.Guests)
		}
		total = total.Plus(slot.Price.TimesInt(nights))

		cursor = overlapEnd.AddDays(1)
		if cursor.After(end) {
			break
		}
	}

	if !cursor.After(end) {
		return model.ZeroMoney, model.ZeroMoney, false
	}
	return total, unit, true
}

// overlappingAvailable selects AVAILABLE slots intersecting [start, end] and
// orders them by start date. The sort is stable so slots sharing a start date
// keep their collection order; the sweep lets the first of them claim the
// overlap.
func overlappingAvailable(listing *model.Listing, start, end model.Date) []model.AvailabilitySlot {
	var slots []model.AvailabilitySlot
	for _, s := range listing.Availabilities {
		if s.Status != model.StatusAvailable {
			continue
		}
		if s.EndDate.Before(start) || s.StartDate.After(end) {
			continue
		}
		slots = append(slots, s)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartDate.Before(slots[j].StartDate)
	})
	return slots
}

func firstAvailablePrice(listing *model.Listing) model.Money {
	for _, s := range listing.Availabilities {
		if s.Status == model.StatusAvailable {
			return s.Price
		}
	}
	return model.ZeroMoney
}

func result(listing *model.Listing, total, unit model.Money) *model.SearchResult {
	return &model.SearchResult{
		ID:          listing.ID,
		Name:        listing.Name,
		Description: listing.Description,
		Location:    listing.Location,
		Photos:      listing.Photos,
		Amenities:   listing.Amenities,
		MinGuests:   listing.MinGuests,
		MaxGuests:   listing.MaxGuests,
		TotalPrice:  total,
		UnitPrice:   unit,
		PricingMode: listing.PricingMode,
	}
}
