package gemini

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

var (
	// ErrNoJSON means the model reply contained no JSON object at all.
	ErrNoJSON = errors.New("no valid JSON found in model response")

	// ErrInvalidJSON means a JSON object was found but did not parse.
	ErrInvalidJSON = errors.New("invalid JSON response from model")
)

// ParseResponse extracts a suggestion set from a raw model reply. Models
// often wrap the JSON in markdown fences or surround it with prose, so
// the fences are stripped and the widest brace-delimited span is parsed.
func ParseResponse(raw string) (*entities.SuggestionSet, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSON
	}

	set := &entities.SuggestionSet{}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), set); err != nil {
		return nil, ErrInvalidJSON
	}

	return set, nil
}
