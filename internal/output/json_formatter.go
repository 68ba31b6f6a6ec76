package output

import (
	json "github.com/goccy/go-json"

	"github.com/firesim/retirement-simulator/internal/domain"
)

// JSONFormatter serializes the full run set as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.RunSet) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
