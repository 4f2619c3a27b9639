package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"staysearch/internal/search/service"
	apperrors "staysearch/pkg/errors"
	httputil "staysearch/pkg/http"
	"staysearch/pkg/logger"
	"staysearch/pkg/model"
)

type SearchHandler struct {
	service service.SearchService
	log     *logger.Logger
}

func NewSearchHandler(service service.SearchService, log *logger.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		log:     log,
	}
}

func (h *SearchHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/search", h.Search)
	router.GET("/api/v1/search/all", h.All)
}

// Search serves both query shapes: without dates it returns listing
// summaries, with dates it returns priced results.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	guests := 0
	if guestsStr := query.Get("guests"); guestsStr != "" {
		var err error
		guests, err = strconv.Atoi(guestsStr)
		if err != nil {
			h.writeError(w, "Search", apperrors.InvalidInput("invalid guests parameter: "+guestsStr))
			return
		}
	}

	startDate, err := parseDateParam(query.Get("startDate"))
	if err != nil {
		h.writeError(w, "Search", apperrors.InvalidInput(err.Error()))
		return
	}
	endDate, err := parseDateParam(query.Get("endDate"))
	if err != nil {
		h.writeError(w, "Search", apperrors.InvalidInput(err.Error()))
		return
	}

	location := query.Get("location")

	if startDate == nil && endDate == nil {
		listings, err := h.service.Search(r.Context(), location, guests)
		if err != nil {
			h.writeError(w, "Search", err)
			return
		}
		if err := httputil.WriteSuccess(w, listings); err != nil {
			h.log.Error("failed to write success response", "handler", "Search", "error", err)
		}
		return
	}

	req := &model.SearchRequest{
		Location:  location,
		Guests:    guests,
		StartDate: startDate,
		EndDate:   endDate,
	}

	results, err := h.service.SearchPriced(r.Context(), req)
	if err != nil {
		h.writeError(w, "Search", err)
		return
	}

	if err := httputil.WriteSuccess(w, results); err != nil {
		h.log.Error("failed to write success response", "handler", "Search", "error", err)
	}
}

func (h *SearchHandler) All(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	listings, err := h.service.ListAll(r.Context())
	if err != nil {
		h.writeError(w, "All", err)
		return
	}

	if err := httputil.WriteSuccess(w, listings); err != nil {
		h.log.Error("failed to write success response", "handler", "All", "error", err)
	}
}

func (h *SearchHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}

func parseDateParam(raw string) (*model.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
