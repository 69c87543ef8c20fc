package filters

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

// Phrase patterns that introduce a neighborhood when the zone name alone is
// not present in the message ("busco algo en belgrano", "zona palermo").
var neighborhoodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`en ([a-zA-Záéíóúñ\s]+)`),
	regexp.MustCompile(`barrio ([a-zA-Záéíóúñ\s]+)`),
	regexp.MustCompile(`zona ([a-zA-Záéíóúñ\s]+)`),
	regexp.MustCompile(`de ([a-zA-Záéíóúñ\s]+)$`),
}

// Upper price bound phrasings, tried in order. The first match wins.
var maxPricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`hasta \$?\s*([0-9\.]+)\s*(usd|dólares|dolares)?`),
	regexp.MustCompile(`máximo \$?\s*([0-9\.]+)\s*(usd|dólares|dolares)?`),
	regexp.MustCompile(`precio.*?\$?\s*([0-9\.]+)\s*(usd|dólares|dolares)?`),
	regexp.MustCompile(`menos de \$?\s*([0-9\.]+)\s*(usd|dólares|dolares)?`),
	regexp.MustCompile(`\$?\s*([0-9\.]+)\s*(usd|dólares|dolares|pesos)`),
}

var (
	minPricePattern = regexp.MustCompile(`desde \$?\s*([0-9\.]+)`)
	roomsPatterns   = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*amb`),
		regexp.MustCompile(`(\d+)\s*ambiente`),
	}
	sqmPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*m2`),
		regexp.MustCompile(`(\d+)\s*metros`),
	}
)

// greetingWords short-circuit the assistant into a canned welcome when the
// conversation has no previous context.
var greetingWords = []string{"hola", "hi", "hello", "buenas", "empezar", "inicio", "ayuda"}

// Detect extracts search criteria from a free-form user message.
//
// Matching is case-insensitive. A returned filter with IsEmpty() == true
// means the message carries no recognizable criteria and no catalog search
// should be performed.
func Detect(message string) models.SearchFilter {
	textLower := strings.ToLower(message)

	var f models.SearchFilter

	f.Neighborhood = detectNeighborhood(textLower)

	for _, t := range Types {
		if strings.Contains(textLower, t) {
			f.Type = t
			break
		}
	}

	for _, op := range Operations {
		if strings.Contains(textLower, op) {
			f.Operation = op
			break
		}
	}

	for _, pattern := range maxPricePatterns {
		if m := pattern.FindStringSubmatch(textLower); m != nil {
			if price, ok := parseAmount(m[1]); ok {
				f.MaxPrice = &price
				break
			}
		}
	}

	if m := minPricePattern.FindStringSubmatch(textLower); m != nil {
		if price, ok := parseAmount(m[1]); ok {
			f.MinPrice = &price
		}
	}

	for _, pattern := range roomsPatterns {
		if m := pattern.FindStringSubmatch(textLower); m != nil {
			if rooms, err := strconv.Atoi(m[1]); err == nil {
				f.MinRooms = &rooms
			}
			break
		}
	}

	for _, pattern := range sqmPatterns {
		if m := pattern.FindStringSubmatch(textLower); m != nil {
			if sqm, err := strconv.ParseFloat(m[1], 64); err == nil {
				f.MinSquareMeters = &sqm
			}
			break
		}
	}

	return f
}

// IsGreeting reports whether the message looks like an opening salutation.
func IsGreeting(message string) bool {
	textLower := strings.ToLower(message)
	for _, word := range greetingWords {
		if strings.Contains(textLower, word) {
			return true
		}
	}
	return false
}

// detectNeighborhood first scans for a known zone name anywhere in the text,
// then falls back to phrase patterns whose captured group must still resolve
// to a known zone.
func detectNeighborhood(textLower string) string {
	for _, n := range Neighborhoods {
		if strings.Contains(textLower, strings.ToLower(n)) {
			return strings.ToLower(n)
		}
	}

	for _, pattern := range neighborhoodPatterns {
		m := pattern.FindStringSubmatch(textLower)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		for _, n := range Neighborhoods {
			if candidate == strings.ToLower(n) {
				return candidate
			}
		}
	}

	return ""
}

// parseAmount converts a thousands-dotted number ("150.000") to a float.
func parseAmount(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, ".", "")
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(n), true
}
