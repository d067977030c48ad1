package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/providers"
	"github.com/VijeyRoshan/VoyaGo/internal/infrastructure/observability"
	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

const (
	suggestionCacheTTL = 6 * 60 * 60 // seconds

	// Suggestion narrowing types.
	SuggestionTypeAccommodations = "accommodations"
	SuggestionTypeActivities     = "activities"
	SuggestionTypeDining         = "dining"
	SuggestionTypeWeather        = "weather"
)

// SuggestionService produces travel suggestions for a destination. The
// model is the primary source; the canned fallback set is used when the
// model fails, with the failure recorded as a non-fatal error on the
// result.
type SuggestionService struct {
	provider providers.SuggestionProvider
	cache    providers.CacheProvider
	metrics  *observability.Metrics
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(provider providers.SuggestionProvider, cache providers.CacheProvider, metrics *observability.Metrics) *SuggestionService {
	return &SuggestionService{
		provider: provider,
		cache:    cache,
		metrics:  metrics,
	}
}

// SpecificSuggestionResult is the narrowed suggestion response.
type SpecificSuggestionResult struct {
	Destination string                 `json:"destination"`
	Type        string                 `json:"type"`
	Suggestions map[string]interface{} `json:"suggestions"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// ServiceStatus reports one suggestion source.
type ServiceStatus struct {
	Available   bool   `json:"available"`
	Description string `json:"description"`
}

// APIStatus reports the availability of every suggestion source.
type APIStatus struct {
	Gemini   ServiceStatus `json:"gemini"`
	Fallback ServiceStatus `json:"fallback"`
}

// GetTravelSuggestions returns a full suggestion set for a destination.
func (s *SuggestionService) GetTravelSuggestions(ctx context.Context, query entities.SuggestionQuery) (*entities.SuggestionResult, error) {
	if strings.TrimSpace(query.Destination) == "" {
		return nil, apperrors.NewValidationError("Destination is required")
	}

	if cached := s.cachedResult(ctx, query); cached != nil {
		return cached, nil
	}

	result := &entities.SuggestionResult{
		Destination: query.Destination,
		GeneratedAt: time.Now(),
	}

	set, err := s.generate(ctx, query)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Gemini AI: %s", err.Error()))
		set = fallbackSuggestions(query.Destination)
	}
	result.Suggestions = set

	s.cacheResult(ctx, query, result)
	return result, nil
}

// GetSpecificSuggestions returns one slice of the suggestion set:
// accommodations, activities, dining, or weather. Dining is the
// activities whose type mentions dining; weather wraps the activities
// with an explanatory message.
func (s *SuggestionService) GetSpecificSuggestions(ctx context.Context, destination, suggestionType, startDate, endDate string) (*SpecificSuggestionResult, error) {
	if strings.TrimSpace(destination) == "" || strings.TrimSpace(suggestionType) == "" {
		return nil, apperrors.NewValidationError("Destination and type are required")
	}

	query := entities.SuggestionQuery{
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	result := &SpecificSuggestionResult{
		Destination: destination,
		Type:        suggestionType,
		GeneratedAt: time.Now(),
	}

	switch strings.ToLower(suggestionType) {
	case SuggestionTypeAccommodations:
		set, err := s.cachedSet(ctx, query)
		if err != nil {
			set = fallbackSuggestions(destination)
		}
		result.Suggestions = map[string]interface{}{"accommodations": set.Accommodations}

	case SuggestionTypeActivities:
		set, err := s.cachedSet(ctx, query)
		if err != nil {
			set = fallbackSuggestions(destination)
		}
		result.Suggestions = map[string]interface{}{"activities": set.Activities}

	case SuggestionTypeDining:
		set, err := s.cachedSet(ctx, query)
		if err != nil {
			result.Suggestions = map[string]interface{}{"dining": []entities.SuggestedActivity{
				{Name: "Local Restaurant", Type: "dining", Description: "Explore local cuisine"},
			}}
			break
		}
		dining := make([]entities.SuggestedActivity, 0)
		for _, activity := range set.Activities {
			if strings.Contains(strings.ToLower(activity.Type), "dining") {
				dining = append(dining, activity)
			}
		}
		result.Suggestions = map[string]interface{}{"dining": dining}

	case SuggestionTypeWeather:
		set, err := s.cachedSet(ctx, query)
		if err != nil {
			result.Suggestions = map[string]interface{}{"weather": map[string]interface{}{
				"message": "Weather data not available",
			}}
			break
		}
		result.Suggestions = map[string]interface{}{"weather": map[string]interface{}{
			"message":    "Weather-based suggestions included in activities",
			"activities": set.Activities,
		}}

	default:
		return nil, apperrors.NewValidationError("Invalid suggestion type. Use: accommodations, activities, dining, or weather")
	}

	return result, nil
}

// Status reports which suggestion sources are usable.
func (s *SuggestionService) Status() APIStatus {
	return APIStatus{
		Gemini: ServiceStatus{
			Available:   s.provider != nil && s.provider.Configured(),
			Description: "AI-powered comprehensive travel suggestions (Primary source for all recommendations)",
		},
		Fallback: ServiceStatus{
			Available:   true,
			Description: "Default suggestions when Gemini API is unavailable",
		},
	}
}

// cachedSet returns the full suggestion set for a query, going through
// the shared suggestion cache so repeated narrowing calls for the same
// destination do not re-invoke the model.
func (s *SuggestionService) cachedSet(ctx context.Context, query entities.SuggestionQuery) (*entities.SuggestionSet, error) {
	if cached := s.cachedResult(ctx, query); cached != nil && cached.Suggestions != nil {
		return cached.Suggestions, nil
	}

	set, err := s.generate(ctx, query)
	if err != nil {
		return nil, err
	}

	s.cacheResult(ctx, query, &entities.SuggestionResult{
		Destination: query.Destination,
		Suggestions: set,
		GeneratedAt: time.Now(),
	})
	return set, nil
}

func (s *SuggestionService) generate(ctx context.Context, query entities.SuggestionQuery) (*entities.SuggestionSet, error) {
	if s.provider == nil {
		return nil, errors.New("Gemini API key not configured")
	}

	start := time.Now()
	set, err := s.provider.Generate(ctx, query)
	if err != nil {
		observability.RecordSuggestionMetric(ctx, s.metrics, entities.SuggestionSourceFallback, time.Since(start))
		return nil, err
	}

	set.Source = entities.SuggestionSourceGemini
	observability.RecordSuggestionMetric(ctx, s.metrics, entities.SuggestionSourceGemini, time.Since(start))
	return set, nil
}

func suggestionCacheKey(query entities.SuggestionQuery) string {
	return fmt.Sprintf("suggestions:%s:%s:%s:%s",
		strings.ToLower(strings.TrimSpace(query.Destination)),
		query.StartDate, query.EndDate, query.TripType)
}

func (s *SuggestionService) cachedResult(ctx context.Context, query entities.SuggestionQuery) *entities.SuggestionResult {
	if s.cache == nil {
		return nil
	}

	key := suggestionCacheKey(query)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, providers.ErrCacheMiss) {
			observability.RecordCacheMiss(ctx, s.metrics, key)
		}
		return nil
	}

	result := &entities.SuggestionResult{}
	if err := json.Unmarshal(data, result); err != nil {
		return nil
	}

	observability.RecordCacheHit(ctx, s.metrics, key)
	return result
}

func (s *SuggestionService) cacheResult(ctx context.Context, query entities.SuggestionQuery, result *entities.SuggestionResult) {
	if s.cache == nil {
		return
	}

	// Fallback results are not cached; the next request should retry
	// the model.
	if result.Suggestions != nil && result.Suggestions.Source == entities.SuggestionSourceFallback {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, suggestionCacheKey(query), data, suggestionCacheTTL); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("failed to cache suggestions")
	}
}
