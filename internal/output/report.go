package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/firesim/retirement-simulator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when a report format cannot be resolved.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// GenerateReport resolves the named formatter and writes its output to a
// timestamped file in the working directory. The pseudo-format "all" emits
// the verbose console report plus the detailed CSV.
func GenerateReport(results *domain.RunSet, format string) error {
	if f := GetFormatterByName(format); f != nil {
		_, err := WriteFormatted(f, results, extensionFor(f.Name()))
		return err
	}
	if NormalizeFormatName(format) == "all" {
		if _, err := WriteFormatted(ConsoleVerboseFormatter{}, results, "txt"); err != nil {
			return err
		}
		if _, err := WriteFormatted(CSVDetailedExporter{}, results, "csv"); err != nil {
			return err
		}
		return nil
	}
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// extensionFor maps canonical formatter names to file extensions.
func extensionFor(name string) string {
	switch {
	case strings.Contains(name, "csv"):
		return "csv"
	case strings.HasPrefix(name, "console"):
		return "txt"
	default:
		return name
	}
}

// SaveConfiguration writes a configuration back out as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
