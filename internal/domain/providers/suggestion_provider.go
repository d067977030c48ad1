package providers

import (
	"context"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

// SuggestionProvider generates travel suggestions from an external
// model. Implementations must treat every failure (unreachable backend,
// unparseable reply) as a returned error; the suggestion service decides
// whether to fall back.
type SuggestionProvider interface {
	// Generate produces a full suggestion set for a query.
	Generate(ctx context.Context, query entities.SuggestionQuery) (*entities.SuggestionSet, error)

	// Configured reports whether the provider has a usable credential.
	Configured() bool
}
