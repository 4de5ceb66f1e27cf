package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"aiobackend/internal/models"
	"aiobackend/internal/repositories"
	"aiobackend/internal/services"
	"aiobackend/internal/utils"
)

const (
	defaultListLimit     = 12
	defaultFeaturedLimit = 6
	// The source imposed no cap; unbounded responses are not worth keeping.
	maxListLimit = 100
)

type NewsHandler struct {
	service services.NewsService
}

func NewNewsHandler(service services.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

// limitParam parses ?limit= with a default, clamped to maxListLimit.
func limitParam(r *http.Request, def int64) (int64, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	// The driver treats a limit of 0 as "no limit", so it is out of range
	// here just like a negative value.
	if err != nil || limit < 1 {
		return 0, errors.New("limit must be a positive integer")
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit, nil
}

func (h *NewsHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r, defaultListLimit)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var featured *bool
	if raw := r.URL.Query().Get("featured"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			utils.SendJSONError(w, "featured must be a boolean", http.StatusBadRequest)
			return
		}
		featured = &value
	}

	items, err := h.service.ListNews(r.Context(), limit, featured)
	if err != nil {
		log.Error().Err(err).Msg("Error listing news via service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

func (h *NewsHandler) FeaturedNews(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r, defaultFeaturedLimit)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.service.FeaturedNews(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("Error listing featured news via service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

func (h *NewsHandler) GetNewsByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	item, err := h.service.GetNewsByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendJSONError(w, "News item not found", http.StatusNotFound)
			return
		}
		// Malformed identifiers stay in the 500 bucket with the rest of the
		// store failures; the public contract only distinguishes "absent".
		log.Error().Err(err).Str("news_id", id).Msg("Error getting news item by ID from service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, item)
}

func (h *NewsHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var payload models.NewsCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for CreateNews")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateNews(r.Context(), payload)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			utils.SendJSONError(w, verr.Error(), http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("Error creating news via service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": "created",
	})
}

func (h *NewsHandler) SeedNews(w http.ResponseWriter, r *http.Request) {
	ids, err := h.service.SeedNews(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error seeding news via service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"inserted": len(ids),
		"ids":      ids,
	})
}
