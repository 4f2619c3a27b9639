package service

import (
	"context"
	"strings"

	"staysearch/internal/search/pricing"
	"staysearch/internal/search/repository"
	"staysearch/internal/search/validator"
	"staysearch/pkg/config"
	apperrors "staysearch/pkg/errors"
	"staysearch/pkg/model"
)

type SearchService interface {
	// Search returns listing summaries filtered by city and capacity only.
	Search(ctx context.Context, location string, guests int) ([]*model.Listing, error)
	// SearchPriced runs the full coverage and pricing flow per candidate.
	SearchPriced(ctx context.Context, req *model.SearchRequest) ([]*model.SearchResult, error)
	// ListAll returns every indexed listing, sorted by id ascending.
	ListAll(ctx context.Context) ([]*model.Listing, error)
}

type searchService struct {
	repo      repository.ListingRepository
	validator *validator.RequestValidator
	cfg       *config.Config
}

func NewSearchService(
	repo repository.ListingRepository,
	v *validator.RequestValidator,
	cfg *config.Config,
) SearchService {
	return &searchService{
		repo:      repo,
		validator: v,
		cfg:       cfg,
	}
}

func (s *searchService) Search(ctx context.Context, location string, guests int) ([]*model.Listing, error) {
	if guests < 0 {
		return nil, apperrors.InvalidInput("guests must not be negative")
	}

	criteria := repository.SearchCriteria{
		City:             strings.TrimSpace(location),
		MaxGuestsAtLeast: guests,
	}

	listings, err := s.repo.Search(ctx, criteria)
	if err != nil {
		s.cfg.Log.Error("Failed to search listings",
			"location", location,
			"guests", guests,
			"error", err,
		)
		return nil, apperrors.Unavailable("Failed to search listings", err)
	}

	if listings == nil {
		listings = []*model.Listing{}
	}
	return listings, nil
}

func (s *searchService) SearchPriced(ctx context.Context, req *model.SearchRequest) ([]*model.SearchResult, error) {
	if err := s.validator.ValidateSearchRequest(req); err != nil {
		s.cfg.Log.Warn("Search request validation failed",
			"location", req.Location,
			"guests", req.Guests,
			"error", err,
		)
		return nil, apperrors.Validation("Search request validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	criteria := repository.SearchCriteria{
		City:   strings.TrimSpace(req.Location),
		Guests: req.Guests,
		// Listings with no AVAILABLE slot at all can never be admitted, with
		// or without a date range; exclude them at the store.
		OnlyAvailable: true,
	}

	candidates, err := s.repo.Search(ctx, criteria)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch search candidates",
			"location", req.Location,
			"guests", req.Guests,
			"error", err,
		)
		return nil, apperrors.Unavailable("Failed to search listings", err)
	}

	// Candidate evaluation is pure and per-document; the store-return order
	// carries through to the response.
	results := make([]*model.SearchResult, 0, len(candidates))
	for _, candidate := range candidates {
		if res, ok := pricing.Evaluate(candidate, req); ok {
			results = append(results, res)
		}
	}

	s.cfg.Log.Info("Priced search completed",
		"location", req.Location,
		"guests", req.Guests,
		"candidates", len(candidates),
		"admitted", len(results),
	)
	return results, nil
}

func (s *searchService) ListAll(ctx context.Context) ([]*model.Listing, error) {
	listings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list listings", "error", err)
		return nil, apperrors.Unavailable("Failed to list listings", err)
	}

	if listings == nil {
		listings = []*model.Listing{}
	}
	return listings, nil
}
