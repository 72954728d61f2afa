package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"storefront/internal/model"
)

// Loader reads a catalogue from a JSON file: an array of product records.
type Loader struct {
	logger zerolog.Logger
}

// NewLoader creates a new catalogue file loader.
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads and validates the catalogue file at the given path.
func (l *Loader) Load(path string) (*Catalog, error) {
	l.logger.Info().Str("file", path).Msg("loading catalogue file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", path, err)
	}
	defer file.Close()

	var products []model.Product
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&products); err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode catalogue file")
		return nil, fmt.Errorf("failed to decode catalogue file %s: %w", path, err)
	}

	cat, err := New(products)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("catalogue validation failed")
		return nil, fmt.Errorf("invalid catalogue file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("products", cat.Len()).
		Msg("catalogue loaded")

	return cat, nil
}
