package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/hoopcast/services/projection-service/internal/cache"
	"github.com/courtside/hoopcast/services/projection-service/internal/career"
	"github.com/courtside/hoopcast/services/projection-service/internal/gamelog"
	"github.com/courtside/hoopcast/services/projection-service/internal/projector"
	"github.com/courtside/hoopcast/services/projection-service/internal/providers/nbastats"
	"github.com/courtside/hoopcast/services/projection-service/internal/rankings"
	"github.com/courtside/hoopcast/services/projection-service/internal/scoring"
	"github.com/courtside/hoopcast/services/projection-service/internal/store"
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
)

// StatsSource fetches player histories from the upstream provider
type StatsSource interface {
	RecentGames(ctx context.Context, playerName string, numGames int, season string) (models.RecentWindow, error)
	CareerStats(ctx context.Context, playerName string) (models.CareerSeries, error)
}

// SettingsStore persists per-user scoring weights
type SettingsStore interface {
	GetUserWeights(ctx context.Context, userID string) (scoring.Weights, error)
	UpdateUserWeights(ctx context.Context, userID string, partial map[string]float64) (scoring.Weights, error)
	ResetUserWeights(ctx context.Context, userID string) (scoring.Weights, error)
}

// ProjectionStore keeps a history of computed season projections. A nil
// ProjectionStore disables persistence.
type ProjectionStore interface {
	SaveSeasonProjection(ctx context.Context, player, season string, projection *models.SeasonProjection) (string, error)
	LatestSeasonProjection(ctx context.Context, player, season string, method models.Method) (*store.SavedProjection, error)
}

// Cache stores computed payloads between requests. A nil Cache disables
// caching entirely.
type Cache interface {
	Get(ctx context.Context, key string, out interface{}) (bool, error)
	Set(ctx context.Context, key string, payload interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, player string) error
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	source        StatsSource
	settings      SettingsStore
	history       ProjectionStore
	cache         Cache
	projector     *projector.Projector
	defaultSeason string
	defaultGames  int
}

// NewHandler creates a new handler
func NewHandler(source StatsSource, settings SettingsStore, history ProjectionStore, cache Cache, p *projector.Projector, defaultSeason string, defaultGames int) *Handler {
	return &Handler{
		source:        source,
		settings:      settings,
		history:       history,
		cache:         cache,
		projector:     p,
		defaultSeason: defaultSeason,
		defaultGames:  defaultGames,
	}
}

// Routes mounts every projection-service endpoint on a router
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/projections/next-game", h.NextGameProjection)
		r.Get("/projections/season", h.SeasonProjection)
		r.Get("/projections/season/latest", h.LatestSeasonProjection)
		r.Get("/projections/all", h.AllProjections)
		r.Get("/projections/accuracy", h.ProjectionAccuracy)
		r.Delete("/projections/cache/{player}", h.InvalidateProjections)

		r.Get("/players/gamelog", h.GameLog)
		r.Get("/players/season-averages", h.SeasonAverages)
		r.Get("/players/career-summary", h.CareerSummary)
		r.Post("/players/compare", h.ComparePlayers)

		r.Post("/rankings", h.Rankings)
		r.Post("/fantasy/score", h.FantasyScore)
		r.Get("/fantasy/full", h.FantasyFull)

		r.Route("/settings/{userID}", func(r chi.Router) {
			r.Get("/", h.GetSettings)
			r.Put("/", h.UpdateSettings)
			r.Post("/reset", h.ResetSettings)
		})
	})
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "projection-service",
	})
}

// NextGameProjection projects a player's next game from recent performance
func (h *Handler) NextGameProjection(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		respondError(w, http.StatusBadRequest, "player is required")
		return
	}

	season := h.seasonParam(r)
	numGames := h.intParam(r, "num_recent_games", h.defaultGames)

	key := cache.NextGameKey(player, season, numGames)
	var cached models.NextGameProjection
	if h.cacheGet(r.Context(), key, &cached) {
		respondJSON(w, http.StatusOK, &cached)
		return
	}

	window, err := h.source.RecentGames(r.Context(), player, numGames, season)
	if err != nil {
		h.respondUpstreamError(w, err)
		return
	}

	projection, err := h.projector.NextGame(window)
	if err != nil {
		h.respondProjectionError(w, err)
		return
	}

	h.cacheSet(r.Context(), key, projection, cache.NextGameTTL)
	respondJSON(w, http.StatusOK, projection)
}

// SeasonProjection projects a player's full season with one method
func (h *Handler) SeasonProjection(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		respondError(w, http.StatusBadRequest, "player is required")
		return
	}

	method := models.Method(r.URL.Query().Get("method"))
	if method == "" {
		method = models.MethodRecentSeasons
	}

	key := cache.SeasonKey(player, string(method))
	var cached models.SeasonProjection
	if h.cacheGet(r.Context(), key, &cached) {
		respondJSON(w, http.StatusOK, &cached)
		return
	}

	series, err := h.source.CareerStats(r.Context(), player)
	if err != nil {
		h.respondUpstreamError(w, err)
		return
	}

	projection, err := h.projector.Season(series, method)
	if err != nil {
		h.respondProjectionError(w, err)
		return
	}

	if h.history != nil {
		if _, err := h.history.SaveSeasonProjection(r.Context(), player, h.seasonParam(r), projection); err != nil {
			fmt.Printf("saving projection for %s: %v\n", player, err)
		}
	}

	h.cacheSet(r.Context(), key, projection, cache.SeasonTTL)
	respondJSON(w, http.StatusOK, projection)
}

// LatestSeasonProjection returns the most recently saved season projection
// for a player
func (h *Handler) LatestSeasonProjection(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		respondError(w, http.StatusBadRequest, "player is required")
		return
	}

	method := models.Method(r.URL.Query().Get("method"))
	if method == "" {
		method = models.MethodRecentSeasons
	}

	if h.history == nil {
		respondError(w, http.StatusNotFound, "no saved projections")
		return
	}

	saved, err := h.history.LatestSeasonProjection(r.Context(), player, h.seasonParam(r), method)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "no saved projections")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("loading projection: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, saved)
}

// AllProjections bundles the next-game projection with every season method
func (h *Handler) AllProjections(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		respondError(w, http.StatusBadRequest, "player is required")
		return
	}

	season := h.seasonParam(r)

	key := cache.AllKey(player, season)
	var cached models.AllProjections
	if h.cacheGet(r.Context(), key, &cached) {
		respondJSON(w, http.StatusOK, &cached)
		return
	}

	window, err := h.source.RecentGames(r.Context(), player, h.defaultGames, season)
	if err != nil && !errors.Is(err, nbastats.ErrPlayerNotFound) {
		h.respondUpstreamError(w, err)
		return
	}

	series, err := h.source.CareerStats(r.Context(), player)
	if err != nil && !errors.Is(err, nbastats.ErrPlayerNotFound) {
		h.respondUpstreamError(w, err)
		return
	}

	all, err := h.projector.All(window, series)
	if err != nil {
		h.respondProjectionError(w, err)
		return
	}

	h.cacheSet(r.Context(), key, all, cache.SeasonTTL)
	respondJSON(w, http.StatusOK, all)
}

// ProjectionAccuracy back-tests the next-game projector for a player
func (h *Handler) ProjectionAccuracy(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		respondError(w, http.StatusBadRequest, "player is required")
		return
	}

	season := h.seasonParam(r)
	numGamesBack := h.intParam(r, "num_games_back", h.defaultGames)

	key := cache.AccuracyKey(player, season, numGamesBack)
	var cached models.AccuracyReport
	if h.cacheGet(r.Context(), key, &cached) {
		respondJSON(w, http.StatusOK, &cached)
		return
	}

	// The back-test needs a validation slice on top of the training slice
	window, err := h.source.RecentGames(r.Context(), player, numGamesBack*2, season)
	if err != nil {
		h.respondUpstreamError(w, err)
		return
	}

	report, err := h.projector.Accuracy(window, numGamesBack)
	if err != nil {
		h.respondProjectionError(w, err)
		return
	}

	h.cacheSet(r.Context(), key, report, cache.AccuracyTTL)
	respondJSON(w, http.StatusOK, report)
}

// InvalidateProjections purges every cached projection for a player, used
// after fresh stats land upstream
func (h *Handler) InvalidateProjections(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "player")

	if h.cache != nil {
		if err := h.cache.Invalidate(r.Context(), player); err != nil {
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("invalidating cache: %v", err))
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"player": player,
		"status": "invalidated",
	})
}

// GameLog returns a player's enriched game log with derived stats scored
// under the requesting user's weights
func (h *Handler) GameLog(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		respondError(w, http.StatusBadRequest, "player is required")
		return
	}

	season := h.seasonParam(r)
	lastN := h.intParam(r, "last_n_games", 0)

	// Custom user weights change every derived value, so only logs scored
	// under the defaults are cached
	cacheable := r.URL.Query().Get("user") == ""
	key := cache.GameLogKey(player, season, lastN)
	if cacheable {
		var cached map[string]interface{}
		if h.cacheGet(r.Context(), key, &cached) {
			respondJSON(w, http.StatusOK, cached)
			return
		}
	}

	weights, err := h.weightsForUser(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("loading settings: %v", err))
		return
	}

	numGames := lastN
	if numGames <= 0 {
		numGames = 82 // full season
	}

	window, err := h.source.RecentGames(r.Context(), player, numGames, season)
	if err != nil {
		h.respondUpstreamError(w, err)
		return
	}

	if len(window) == 0 {
		respondError(w, http.StatusNotFound, "no games found")
		return
	}

	payload := map[string]interface{}{
		"player": player,
		"season": season,
		"games":  gamelog.Enrich(window, weights),
	}

	if cacheable {
		h.cacheSet(r.Context(), key, payload, cache.GameLogTTL)
	}
	respondJSON(w, http.StatusOK, payload)
}

// SeasonAverages returns per-game averages with advanced stats over a
// player's season to date
func (h *Handler) SeasonAverages(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		respondError(w, http.StatusBadRequest, "player is required")
		return
	}

	season := h.seasonParam(r)

	weights, err := h.weightsForUser(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("loading settings: %v", err))
		return
	}

	window, err := h.source.RecentGames(r.Context(), player, 82, season)
	if err != nil {
		h.respondUpstreamError(w, err)
		return
	}

	averages := gamelog.Averages(window, weights)
	if averages == nil {
		respondError(w, http.StatusNotFound, "no games found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"player":   player,
		"season":   season,
		"averages": averages,
	})
}

// CareerSummary returns whole-career totals and per-game averages
func (h *Handler) CareerSummary(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		respondError(w, http.StatusBadRequest, "player is required")
		return
	}

	series, err := h.source.CareerStats(r.Context(), player)
	if err != nil {
		h.respondUpstreamError(w, err)
		return
	}

	summary := career.Summarize(series)
	if summary == nil {
		respondError(w, http.StatusNotFound, "no career data")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"player":  player,
		"summary": summary,
	})
}

// FantasyFull returns fantasy production for every season of a player's
// career, scored under the requesting user's weights
func (h *Handler) FantasyFull(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		respondError(w, http.StatusBadRequest, "player is required")
		return
	}

	weights, err := h.weightsForUser(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("loading settings: %v", err))
		return
	}

	series, err := h.source.CareerStats(r.Context(), player)
	if err != nil {
		h.respondUpstreamError(w, err)
		return
	}

	seasons := career.FantasyBySeason(series, weights)
	if seasons == nil {
		respondError(w, http.StatusNotFound, "no career data")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"player":  player,
		"seasons": seasons,
	})
}

// compareRequest asks for a side-by-side view of a slate of players
type compareRequest struct {
	Players []string `json:"players"`
	Season  string   `json:"season"`
}

// comparisonProjection is the recent_seasons projection slice carried in a
// comparison entry
type comparisonProjection struct {
	PPG        float64 `json:"ppg"`
	RPG        float64 `json:"rpg"`
	APG        float64 `json:"apg"`
	FantasyPPG float64 `json:"fantasy_ppg"`
}

// playerComparison is one player's side of the comparison
type playerComparison struct {
	Player              string                  `json:"player"`
	CurrentSeason       *gamelog.SeasonAverages `json:"current_season"`
	ProjectedNextSeason comparisonProjection    `json:"projected_next_season"`
}

// ComparePlayers returns current-season averages and next-season
// projections side by side for the requested players
func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	if len(req.Players) == 0 {
		respondError(w, http.StatusBadRequest, "players is required")
		return
	}

	season := req.Season
	if season == "" {
		season = h.defaultSeason
	}

	comparisons := make([]playerComparison, 0, len(req.Players))
	for _, player := range req.Players {
		// An unresolvable or unprojectable player drops out of the
		// comparison; a provider outage fails the request
		series, err := h.source.CareerStats(r.Context(), player)
		if errors.Is(err, nbastats.ErrPlayerNotFound) {
			continue
		}
		if err != nil {
			h.respondUpstreamError(w, err)
			return
		}

		projection, err := h.projector.Season(series, models.MethodRecentSeasons)
		if err != nil {
			continue
		}

		entry := playerComparison{
			Player: player,
			ProjectedNextSeason: comparisonProjection{
				PPG:        projection.ProjectedPerGame.Points,
				RPG:        projection.ProjectedPerGame.Rebounds,
				APG:        projection.ProjectedPerGame.Assists,
				FantasyPPG: projection.ProjectedFantasyPointsPG,
			},
		}

		if window, err := h.source.RecentGames(r.Context(), player, 82, season); err == nil {
			entry.CurrentSeason = gamelog.Averages(window, scoring.DefaultWeights())
		}

		comparisons = append(comparisons, entry)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"season":  season,
		"players": comparisons,
	})
}

// rankingsRequest asks for a fantasy board over a slate of players
type rankingsRequest struct {
	Players []string `json:"players"`
	Season  string   `json:"season"`
}

// Rankings builds a fantasy board for the requested players
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	var req rankingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	if len(req.Players) == 0 {
		respondError(w, http.StatusBadRequest, "players is required")
		return
	}

	season := req.Season
	if season == "" {
		season = h.defaultSeason
	}

	inputs := make([]rankings.PlayerInput, 0, len(req.Players))
	for _, player := range req.Players {
		input := rankings.PlayerInput{Player: player}

		// An unresolvable player drops off the board; a provider outage
		// fails the request
		series, err := h.source.CareerStats(r.Context(), player)
		if errors.Is(err, nbastats.ErrPlayerNotFound) {
			continue
		}
		if err != nil {
			h.respondUpstreamError(w, err)
			return
		}
		input.Series = series

		if window, err := h.source.RecentGames(r.Context(), player, h.defaultGames, season); err == nil {
			input.Window = window
		}

		inputs = append(inputs, input)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"season":   season,
		"rankings": rankings.Rank(h.projector, inputs),
	})
}

// scoreRequest asks for fantasy points over one stat line, with optional
// weight overrides merged field-by-field into the defaults
type scoreRequest struct {
	Stats   models.GameLine    `json:"stats"`
	Weights map[string]float64 `json:"weights,omitempty"`
}

// FantasyScore computes fantasy points for a single stat line
func (h *Handler) FantasyScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	weights := scoring.WeightsFromPartial(req.Weights)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"fantasy_points": scoring.Score(req.Stats, weights),
		"weights":        weights,
	})
}

// GetSettings returns a user's scoring weights
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	weights, err := h.settings.GetUserWeights(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("loading settings: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, weights)
}

// UpdateSettings merges posted weight overrides into a user's settings
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var partial map[string]float64
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	weights, err := h.settings.UpdateUserWeights(r.Context(), userID, partial)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("saving settings: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, weights)
}

// ResetSettings restores a user's settings to the defaults
func (h *Handler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	weights, err := h.settings.ResetUserWeights(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("resetting settings: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, weights)
}

// weightsForUser resolves the scoring weights for the optional user query
// parameter, defaulting to the standard configuration
func (h *Handler) weightsForUser(r *http.Request) (scoring.Weights, error) {
	userID := r.URL.Query().Get("user")
	if userID == "" || h.settings == nil {
		return scoring.DefaultWeights(), nil
	}
	return h.settings.GetUserWeights(r.Context(), userID)
}

func (h *Handler) seasonParam(r *http.Request) string {
	if season := r.URL.Query().Get("season"); season != "" {
		return season
	}
	return h.defaultSeason
}

func (h *Handler) intParam(r *http.Request, name string, defaultValue int) int {
	if value := r.URL.Query().Get(name); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

// cacheGet loads a cached payload; a nil or failing cache is a miss
func (h *Handler) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if h.cache == nil {
		return false
	}
	hit, err := h.cache.Get(ctx, key, out)
	if err != nil {
		fmt.Printf("cache read error for %s: %v\n", key, err)
		return false
	}
	return hit
}

// cacheSet stores a payload; cache failures are logged, never surfaced
func (h *Handler) cacheSet(ctx context.Context, key string, payload interface{}, ttl time.Duration) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Set(ctx, key, payload, ttl); err != nil {
		fmt.Printf("cache write error for %s: %v\n", key, err)
	}
}

// respondUpstreamError maps stats-provider failures to HTTP statuses
func (h *Handler) respondUpstreamError(w http.ResponseWriter, err error) {
	if errors.Is(err, nbastats.ErrPlayerNotFound) {
		respondError(w, http.StatusNotFound, "player not found")
		return
	}
	respondError(w, http.StatusBadGateway, fmt.Sprintf("stats provider error: %v", err))
}

// respondProjectionError maps projector failures to HTTP statuses
func (h *Handler) respondProjectionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, projector.ErrInsufficientData):
		respondError(w, http.StatusNotFound, "insufficient data for projection")
	case errors.Is(err, projector.ErrUnknownMethod):
		respondError(w, http.StatusBadRequest, "unknown projection method")
	default:
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("projection error: %v", err))
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
