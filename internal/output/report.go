package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// GenerateReport writes the comparison in the requested format to dir and returns
// the files written. "all" writes the detailed console, detailed CSV and HTML reports.
func GenerateReport(results *domain.PlanComparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range []string{"console", "detailed-csv", "html"} {
			f := GetFormatterByName(name)
			file, err := WriteFormatted(f, results, dir, Extension(name))
			if err != nil {
				return files, err
			}
			files = append(files, file)
		}
		return files, nil
	}

	f, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	file, err := WriteFormatted(f, results, dir, Extension(format))
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}

// Lookup returns the formatter for format or an ErrUnsupportedFormat error
// listing the valid names.
func Lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
