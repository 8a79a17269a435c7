package services

import (
	"strings"

	"subscription-tracker/internal/models"
)

// ParseDirectoryCSV turns raw directory text into rows. The first line that
// mentions "service" is the header; lines before it are ignored. Input it
// cannot make sense of yields an empty result, never an error.
func ParseDirectoryCSV(text string) []models.DirectoryRow {
	lines := nonEmptyLines(text)
	if len(lines) < 2 {
		return []models.DirectoryRow{}
	}

	headerAt := -1
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "service") {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return []models.DirectoryRow{}
	}

	// A repeated header name resolves to its last column.
	columns := make(map[string]int)
	for i, name := range splitCSVLine(lines[headerAt]) {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	rows := make([]models.DirectoryRow, 0, len(lines)-headerAt-1)
	for _, line := range lines[headerAt+1:] {
		fields := splitCSVLine(line)
		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(fields) {
				return ""
			}
			return strings.TrimSpace(fields[i])
		}

		service := field("service")
		if service == "" {
			continue
		}

		rows = append(rows, models.DirectoryRow{
			Service:       service,
			CancelURLHint: field("cancel_url_hint"),
			Flow:          field("flow"),
			Region:        field("region"),
			SupportHint:   field("support_hint"),
			KnownPaths:    field("known_paths"),
		})
	}

	return rows
}

func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitCSVLine splits on commas outside double quotes. A quote toggles the
// quoted state and is not kept; there is no escaped-quote form.
func splitCSVLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(fields, current.String())
}
