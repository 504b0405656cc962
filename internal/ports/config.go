package ports

import (
	"context"

	"github.com/alexisbeaulieu97/playerui/internal/config"
)

// ConfigLoader loads UI configuration documents. Implementations must respect
// context cancellation and translate failures into pkg/errors types:
//   - missing or unreadable file, YAML syntax errors -> ParseError
//   - schema violations -> ValidationError
type ConfigLoader interface {
	// Load reads, validates and returns the UI configuration at path.
	Load(ctx context.Context, path string) (*config.UIConfig, error)

	// Validate performs the same checks as Load without returning the result.
	Validate(ctx context.Context, path string) error
}
