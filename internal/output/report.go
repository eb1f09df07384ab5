package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/wealth-journey/internal/domain"
)

// GenerateReport writes the report in the given format to a timestamped file in dir.
// "all" writes every registered format. It returns the written paths.
func GenerateReport(report *domain.SimulationReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range AvailableFormatterNames() {
			path, err := WriteFormatted(GetFormatterByName(name), report, dir)
			if err != nil {
				return paths, fmt.Errorf("%s report: %w", name, err)
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f, err := lookupFormatter(format)
	if err != nil {
		return nil, err
	}
	path, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// WriteReport formats the report and writes it to w.
func WriteReport(w io.Writer, report *domain.SimulationReport, format string) error {
	f, err := lookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s report: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

func lookupFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
