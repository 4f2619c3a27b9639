package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"staysearch/pkg/config"
	"staysearch/pkg/model"
)

const (
	CollectionName = "Accommodations"
)

// ErrNotFound marks a listing id with no document behind it.
var ErrNotFound = errors.New("listing not found")

// SearchCriteria translates to equality and range predicates on the listing
// collection. Zero values mean "no filter" for every field.
type SearchCriteria struct {
	// City filters on location.city equality.
	City string
	// Guests filters listings whose capacity range contains the value
	// (min_guests <= Guests <= max_guests).
	Guests int
	// MaxGuestsAtLeast filters on max_guests >= value. Used by the summary
	// search, mutually exclusive with Guests.
	MaxGuestsAtLeast int
	// OnlyAvailable keeps listings carrying at least one AVAILABLE slot.
	OnlyAvailable bool
}

// ListingRepository is the document store adapter the index maintainer writes
// through and the query service reads through. Implementations must make
// every mutation a single atomic document update.
type ListingRepository interface {
	FindByID(ctx context.Context, id string) (*model.Listing, error)
	UpsertListing(ctx context.Context, listing *model.Listing) error
	SetAvailabilities(ctx context.Context, id string, slots []model.AvailabilitySlot) error
	Search(ctx context.Context, criteria SearchCriteria) ([]*model.Listing, error)
	FindAll(ctx context.Context) ([]*model.Listing, error)
	EnsureIndexes(ctx context.Context) error
	DeleteAll(ctx context.Context) error
}

type mongoListingRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoListingRepository(cfg *config.Config) ListingRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoListingRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoListingRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoListingRepository) FindByID(ctx context.Context, id string) (*model.Listing, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.MongoReadTimeout)
	defer cancel()

	var listing model.Listing
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find listing: %w", err)
	}

	return &listing, nil
}

// UpsertListing writes the listing attributes, creating the document when
// absent. The availabilities collection is deliberately left out of the $set:
// listing events never own it, so an update must not drop slots indexed by
// earlier availability events.
func (r *mongoListingRepository) UpsertListing(ctx context.Context, listing *model.Listing) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.MongoWriteTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":         listing.Name,
			"description":  listing.Description,
			"min_guests":   listing.MinGuests,
			"max_guests":   listing.MaxGuests,
			"auto_confirm": listing.AutoConfirm,
			"pricing_mode": listing.PricingMode,
			"location":     listing.Location,
			"amenities":    listing.Amenities,
			"photos":       listing.Photos,
		},
		"$setOnInsert": bson.M{
			"availabilities": []model.AvailabilitySlot{},
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": listing.ID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert listing %s: %w", listing.ID, err)
	}
	return nil
}

func (r *mongoListingRepository) SetAvailabilities(ctx context.Context, id string, slots []model.AvailabilitySlot) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.MongoWriteTimeout)
	defer cancel()

	if slots == nil {
		slots = []model.AvailabilitySlot{}
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"availabilities": slots}},
	)
	if err != nil {
		return fmt.Errorf("failed to update availabilities for listing %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (r *mongoListingRepository) Search(ctx context.Context, criteria SearchCriteria) ([]*model.Listing, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.MongoReadTimeout)
	defer cancel()

	filter := bson.M{}
	if criteria.City != "" {
		filter["location.city"] = criteria.City
	}
	if criteria.Guests > 0 {
		filter["min_guests"] = bson.M{"$lte": criteria.Guests}
		filter["max_guests"] = bson.M{"$gte": criteria.Guests}
	}
	if criteria.MaxGuestsAtLeast > 0 {
		filter["max_guests"] = bson.M{"$gte": criteria.MaxGuestsAtLeast}
	}
	if criteria.OnlyAvailable {
		filter["availabilities.status"] = model.StatusAvailable
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []*model.Listing
	if err = cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}

func (r *mongoListingRepository) FindAll(ctx context.Context) ([]*model.Listing, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.MongoReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []*model.Listing
	if err = cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}
	return listings, nil
}

func (r *mongoListingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.MongoWriteTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "location.city", Value: 1}}},
		{Keys: bson.D{{Key: "min_guests", Value: 1}, {Key: "max_guests", Value: 1}}},
		{Keys: bson.D{{Key: "availabilities.status", Value: 1}}},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create listing indexes: %w", err)
	}
	return nil
}

func (r *mongoListingRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.MongoWriteTimeout)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete listings: %w", err)
	}
	return nil
}
