// Package indexer keeps the listing collection eventually consistent with
// the upstream system of record. It consumes two change-event feeds and
// turns them into document mutations: listing events upsert listing
// attributes, availability events rewrite single slots inside a listing's
// nested collection. Every mutation is idempotent under redelivery.
package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"staysearch/internal/search/repository"
	"staysearch/pkg/kafka"
	"staysearch/pkg/logger"
	"staysearch/pkg/model"
)

// EventValidator is the subset of the event validator the indexer needs; the
// concrete type lives in internal/search/validator.
type EventValidator interface {
	ValidateAccommodationEvent(e *model.AccommodationEvent) error
	ValidateAvailabilityEvent(e *model.AvailabilityEvent) error
}

type Indexer struct {
	repo      repository.ListingRepository
	validator EventValidator
	log       *logger.Logger
}

func New(repo repository.ListingRepository, v EventValidator, log *logger.Logger) *Indexer {
	return &Indexer{
		repo:      repo,
		validator: v,
		log:       log,
	}
}

// HandleAccommodationEvent applies a listing Created/Updated event. Both map
// to the same merge-preserving upsert: attributes are overwritten, the
// availabilities collection is never touched.
func (ix *Indexer) HandleAccommodationEvent(ctx context.Context, msg kafka.Message) error {
	var event model.AccommodationEvent
	if err := msg.DecodeValue(&event); err != nil {
		return kafka.NewPermanentError("malformed accommodation event", err)
	}

	if err := ix.validator.ValidateAccommodationEvent(&event); err != nil {
		return kafka.NewPermanentError("invalid accommodation event", err)
	}

	switch event.EventType {
	case model.EventAccommodationCreated, model.EventAccommodationUpdated:
		if err := ix.repo.UpsertListing(ctx, event.Listing()); err != nil {
			return kafka.NewTransientError("failed to index listing", err)
		}
		ix.log.Info("Indexed listing",
			"listing_id", event.ID,
			"event_type", event.EventType,
		)
		return nil
	default:
		ix.log.Warn("Dropping accommodation event of unknown type",
			"listing_id", event.ID,
			"event_type", event.EventType,
		)
		return nil
	}
}

// HandleAvailabilityEvent applies a slot-scoped event to its listing. A
// missing listing is a legitimate ordering race with the listing feed: the
// event is dropped and the upstream will not see an error.
func (ix *Indexer) HandleAvailabilityEvent(ctx context.Context, msg kafka.Message) error {
	event, err := decodeAvailabilityEvent(msg.Value)
	if err != nil {
		return kafka.NewPermanentError("malformed availability event", err)
	}

	if err := ix.validator.ValidateAvailabilityEvent(event); err != nil {
		return kafka.NewPermanentError("invalid availability event", err)
	}

	switch event.EventType {
	case model.EventAvailabilityCreated,
		model.EventAvailabilityUpdated,
		model.EventAvailabilityStatusChanged,
		model.EventAvailabilityDeleted:
	default:
		ix.log.Warn("Dropping availability event of unknown type",
			"slot_id", event.ID,
			"listing_id", event.AccommodationID,
			"event_type", event.EventType,
		)
		return nil
	}

	listing, err := ix.repo.FindByID(ctx, event.AccommodationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			ix.log.Warn("Dropping availability event for unindexed listing",
				"slot_id", event.ID,
				"listing_id", event.AccommodationID,
				"event_type", event.EventType,
			)
			return nil
		}
		return kafka.NewTransientError("failed to load listing", err)
	}

	if event.EventType == model.EventAvailabilityDeleted {
		listing.RemoveSlot(event.ID)
	} else {
		listing.UpsertSlot(event.Slot())
	}

	if err := ix.repo.SetAvailabilities(ctx, listing.ID, listing.Availabilities); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// The listing vanished between read and write; nothing to index.
			ix.log.Warn("Listing disappeared while applying availability event",
				"slot_id", event.ID,
				"listing_id", event.AccommodationID,
			)
			return nil
		}
		return kafka.NewTransientError("failed to update availabilities", err)
	}

	ix.log.Info("Applied availability event",
		"slot_id", event.ID,
		"listing_id", event.AccommodationID,
		"event_type", event.EventType,
		"slots", len(listing.Availabilities),
	)
	return nil
}

// decodeAvailabilityEvent decodes the payload, unwrapping the legacy
// producer's double encoding first when present: some availability records
// arrive as a JSON string that itself contains the JSON record.
func decodeAvailabilityEvent(payload []byte) (*model.AvailabilityEvent, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty payload")
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil, fmt.Errorf("unwrapping string-encoded payload: %w", err)
		}
		trimmed = []byte(inner)
	}

	var event model.AvailabilityEvent
	if err := json.Unmarshal(trimmed, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
