package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staysearch/internal/search/repository"
	"staysearch/internal/search/validator"
	"staysearch/pkg/config"
	apperrors "staysearch/pkg/errors"
	"staysearch/pkg/logger"
	"staysearch/pkg/model"
)

// Mock repository for testing
type mockListingRepository struct {
	searchFunc  func(ctx context.Context, criteria repository.SearchCriteria) ([]*model.Listing, error)
	findAllFunc func(ctx context.Context) ([]*model.Listing, error)
}

func (m *mockListingRepository) FindByID(ctx context.Context, id string) (*model.Listing, error) {
	return nil, repository.ErrNotFound
}

func (m *mockListingRepository) UpsertListing(ctx context.Context, listing *model.Listing) error {
	return nil
}

func (m *mockListingRepository) SetAvailabilities(ctx context.Context, id string, slots []model.AvailabilitySlot) error {
	return nil
}

func (m *mockListingRepository) Search(ctx context.Context, criteria repository.SearchCriteria) ([]*model.Listing, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, criteria)
	}
	return []*model.Listing{}, nil
}

func (m *mockListingRepository) FindAll(ctx context.Context) ([]*model.Listing, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return []*model.Listing{}, nil
}

func (m *mockListingRepository) EnsureIndexes(ctx context.Context) error { return nil }

func (m *mockListingRepository) DeleteAll(ctx context.Context) error { return nil }

func testConfig() *config.Config {
	log := logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Output:  io.Discard,
		Service: "test",
	})
	return &config.Config{Log: log}
}

func newService(repo repository.ListingRepository) SearchService {
	cfg := testConfig()
	return NewSearchService(repo, validator.NewRequestValidator(cfg.Log), cfg)
}

func day(d int) model.Date {
	return model.NewDate(2025, time.June, d)
}

func dayPtr(d int) *model.Date {
	v := day(d)
	return &v
}

func availableListing(id string, minGuests, maxGuests int) *model.Listing {
	return &model.Listing{
		ID:          id,
		Name:        "Listing " + id,
		MinGuests:   minGuests,
		MaxGuests:   maxGuests,
		PricingMode: model.PricingModePerAccommodation,
		Location:    model.Location{Country: "RS", City: "Novi Sad"},
		Availabilities: []model.AvailabilitySlot{
			{
				ID:        id + "-slot",
				StartDate: day(1),
				EndDate:   day(30),
				Price:     model.MustMoney("100"),
				Status:    model.StatusAvailable,
			},
		},
	}
}

func TestSearch_BuildsSummaryCriteria(t *testing.T) {
	var captured repository.SearchCriteria
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, criteria repository.SearchCriteria) ([]*model.Listing, error) {
			captured = criteria
			return []*model.Listing{}, nil
		},
	}
	svc := newService(repo)

	_, err := svc.Search(context.Background(), "Novi Sad", 3)
	require.NoError(t, err)
	assert.Equal(t, "Novi Sad", captured.City)
	assert.Equal(t, 3, captured.MaxGuestsAtLeast)
	assert.Zero(t, captured.Guests)
	assert.False(t, captured.OnlyAvailable)
}

func TestSearch_BlankLocationOmitsCityFilter(t *testing.T) {
	var captured repository.SearchCriteria
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, criteria repository.SearchCriteria) ([]*model.Listing, error) {
			captured = criteria
			return []*model.Listing{}, nil
		},
	}
	svc := newService(repo)

	_, err := svc.Search(context.Background(), "   ", 0)
	require.NoError(t, err)
	assert.Empty(t, captured.City)
}

func TestSearch_NegativeGuestsRejected(t *testing.T) {
	svc := newService(&mockListingRepository{})

	_, err := svc.Search(context.Background(), "Novi Sad", -1)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidInput, appErr.Code)
}

func TestSearch_StoreFailureIsUnavailable(t *testing.T) {
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, criteria repository.SearchCriteria) ([]*model.Listing, error) {
			return nil, errors.New("server selection error")
		},
	}
	svc := newService(repo)

	_, err := svc.Search(context.Background(), "Novi Sad", 2)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeUnavailable, appErr.Code)
}

func TestSearch_NilStoreResultBecomesEmptySlice(t *testing.T) {
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, criteria repository.SearchCriteria) ([]*model.Listing, error) {
			return nil, nil
		},
	}
	svc := newService(repo)

	listings, err := svc.Search(context.Background(), "", 0)
	require.NoError(t, err)
	assert.NotNil(t, listings)
	assert.Empty(t, listings)
}

func TestSearchPriced_BuildsCandidateCriteria(t *testing.T) {
	var captured repository.SearchCriteria
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, criteria repository.SearchCriteria) ([]*model.Listing, error) {
			captured = criteria
			return []*model.Listing{}, nil
		},
	}
	svc := newService(repo)

	_, err := svc.SearchPriced(context.Background(), &model.SearchRequest{
		Location:  " Novi Sad ",
		Guests:    2,
		StartDate: dayPtr(1),
		EndDate:   dayPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "Novi Sad", captured.City)
	assert.Equal(t, 2, captured.Guests)
	assert.Zero(t, captured.MaxGuestsAtLeast)
	assert.True(t, captured.OnlyAvailable)
}

func TestSearchPriced_AdmitsAndPricesCandidates(t *testing.T) {
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, criteria repository.SearchCriteria) ([]*model.Listing, error) {
			return []*model.Listing{
				availableListing("a", 1, 4),
				availableListing("b", 1, 4),
			}, nil
		},
	}
	svc := newService(repo)

	results, err := svc.SearchPriced(context.Background(), &model.SearchRequest{
		Guests:    2,
		StartDate: dayPtr(1),
		EndDate:   dayPtr(3),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].ID, "store order carries through")
	assert.Equal(t, "b", results[1].ID)
	assert.True(t, results[0].TotalPrice.Equal(model.MustMoney("300")))
}

func TestSearchPriced_FiltersRejectedCandidates(t *testing.T) {
	tooSmall := availableListing("small", 1, 1)
	uncovered := availableListing("uncovered", 1, 4)
	uncovered.Availabilities[0].EndDate = day(2)
	good := availableListing("good", 1, 4)

	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, criteria repository.SearchCriteria) ([]*model.Listing, error) {
			return []*model.Listing{tooSmall, uncovered, good}, nil
		},
	}
	svc := newService(repo)

	results, err := svc.SearchPriced(context.Background(), &model.SearchRequest{
		Guests:    2,
		StartDate: dayPtr(1),
		EndDate:   dayPtr(5),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "good", results[0].ID)
}

func TestSearchPriced_InvalidRequestIsValidationError(t *testing.T) {
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, criteria repository.SearchCriteria) ([]*model.Listing, error) {
			t.Fatal("store must not be hit for an invalid request")
			return nil, nil
		},
	}
	svc := newService(repo)

	tests := []struct {
		name string
		req  *model.SearchRequest
	}{
		{"negative guests", &model.SearchRequest{Guests: -1}},
		{"start without end", &model.SearchRequest{StartDate: dayPtr(1)}},
		{"end without start", &model.SearchRequest{EndDate: dayPtr(1)}},
		{"end before start", &model.SearchRequest{StartDate: dayPtr(5), EndDate: dayPtr(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SearchPriced(context.Background(), tt.req)
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.CodeValidation, appErr.Code)
			assert.Equal(t, 422, appErr.HTTPStatus)
		})
	}
}

func TestSearchPriced_NoDateRangeAdmitsWithZeroTotal(t *testing.T) {
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, criteria repository.SearchCriteria) ([]*model.Listing, error) {
			return []*model.Listing{availableListing("a", 1, 4)}, nil
		},
	}
	svc := newService(repo)

	results, err := svc.SearchPriced(context.Background(), &model.SearchRequest{Guests: 2})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].TotalPrice.Equal(model.ZeroMoney))
	assert.True(t, results[0].UnitPrice.Equal(model.MustMoney("100")))
}

func TestSearchPriced_EmptyResultIsNotNil(t *testing.T) {
	svc := newService(&mockListingRepository{})

	results, err := svc.SearchPriced(context.Background(), &model.SearchRequest{Guests: 2})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchPriced_StoreFailureIsUnavailable(t *testing.T) {
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, criteria repository.SearchCriteria) ([]*model.Listing, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newService(repo)

	_, err := svc.SearchPriced(context.Background(), &model.SearchRequest{Guests: 2})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeUnavailable, appErr.Code)
}

func TestListAll_PassesThrough(t *testing.T) {
	repo := &mockListingRepository{
		findAllFunc: func(ctx context.Context) ([]*model.Listing, error) {
			return []*model.Listing{
				availableListing("a", 1, 2),
				availableListing("b", 1, 2),
			}, nil
		},
	}
	svc := newService(repo)

	listings, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "a", listings[0].ID)
}

func TestListAll_StoreFailureIsUnavailable(t *testing.T) {
	repo := &mockListingRepository{
		findAllFunc: func(ctx context.Context) ([]*model.Listing, error) {
			return nil, errors.New("i/o timeout")
		},
	}
	svc := newService(repo)

	_, err := svc.ListAll(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeUnavailable, appErr.Code)
}
