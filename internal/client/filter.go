package client

import "strings"

// Filter returns the records where any displayed field contains term,
// case-insensitively, keeping their order. A blank term returns records as is.
func Filter[T any](records []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}

	matched := make([]T, 0, len(records))
	for _, record := range records {
		for _, field := range fields(record) {
			if strings.Contains(strings.ToLower(field), term) {
				matched = append(matched, record)
				break
			}
		}
	}
	return matched
}
