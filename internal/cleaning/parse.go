package cleaning

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	yearPattern       = regexp.MustCompile(`(\d{4})`)
	digitsPattern     = regexp.MustCompile(`\d+`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	genreCaser = cases.Title(language.English)
)

// ParseYear extracts a four-digit release year from values like "(2019)",
// "2019", or "(2019– )".
func ParseYear(value string) (int, bool) {
	match := yearPattern.FindString(value)
	if match == "" {
		return 0, false
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return year, true
}

// ParseDuration extracts whole minutes from values like "109 min" or "109".
func ParseDuration(value string) (int, bool) {
	match := digitsPattern.FindString(value)
	if match == "" {
		return 0, false
	}
	minutes, err := strconv.Atoi(match)
	if err != nil || minutes <= 0 {
		return 0, false
	}
	return minutes, true
}

// ParseVotes extracts a vote count from values like "1,086" or "95238".
func ParseVotes(value string) (int, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	votes, err := strconv.Atoi(cleaned)
	if err != nil || votes < 0 {
		return 0, false
	}
	return votes, true
}

// ParseRating parses the target column.
func ParseRating(value string) (float64, bool) {
	rating, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || rating < 0 || rating > 10 {
		return 0, false
	}
	return rating, true
}

// SplitGenres splits a multi-genre cell and canonicalizes each entry.
func SplitGenres(value string) []string {
	parts := strings.Split(value, ",")
	genres := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		genre := genreCaser.String(strings.ToLower(strings.TrimSpace(part)))
		if genre == "" {
			continue
		}
		if _, dup := seen[genre]; dup {
			continue
		}
		seen[genre] = struct{}{}
		genres = append(genres, genre)
	}
	return genres
}

// NormalizeName collapses internal whitespace and trims person or title names.
func NormalizeName(value string) string {
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(value), " ")
}
