// Package scorer rates how well a geocoded address matches the queried one.
package scorer

import (
	"regexp"
	"strings"

	"address-resolver/internal/models"
	"address-resolver/internal/region"
)

const (
	weightProvince     = 3
	weightDistrict     = 3
	weightNeighborhood = 2
	weightNumber       = 1
)

var (
	separators = regexp.MustCompile(`[\s,]+`)
	digitRuns  = regexp.MustCompile(`\d+`)
)

// Score compares original against the found lot and road address strings.
// The lot address is evaluated first and a high match stops the evaluation.
func Score(original, foundLot, foundRoad string) models.Confidence {
	if foundLot == "" && foundRoad == "" {
		return models.ConfidenceNone
	}

	in := parseInput(original)
	best := models.ConfidenceNone
	for _, found := range []string{foundLot, foundRoad} {
		if found == "" {
			continue
		}
		c := in.match(found)
		if c == models.ConfidenceHigh {
			return c
		}
		if c.Rank() > best.Rank() {
			best = c
		}
	}
	return best
}

type input struct {
	province     string
	district     string
	neighborhood string
	numbers      []string
}

func parseInput(original string) input {
	tokens := tokenize(original)
	in := input{numbers: digitRuns.FindAllString(original, -1)}
	if len(tokens) > 0 {
		in.province = tokens[0]
	}
	if len(tokens) > 1 {
		in.district = tokens[1]
	}
	if len(tokens) > 2 {
		in.neighborhood = tokens[2]
	}
	return in
}

func tokenize(s string) []string {
	var tokens []string
	for _, t := range separators.Split(s, -1) {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// match returns the weighted match ratio of found mapped to a confidence label.
func (in input) match(found string) models.Confidence {
	tokens := tokenize(found)
	var total, score int

	total += weightProvince
	if in.province != "" && len(tokens) > 0 &&
		(in.province == tokens[0] || region.SameSido(in.province, tokens[0])) {
		score += weightProvince
	}

	total += weightDistrict
	if in.district != "" && (strings.Contains(found, in.district) ||
		(len(tokens) > 1 && strings.Contains(tokens[1], in.district))) {
		score += weightDistrict
	}

	if len([]rune(in.neighborhood)) > 1 {
		total += weightNeighborhood
		stripped := digitRuns.ReplaceAllString(in.neighborhood, "")
		if strings.Contains(found, in.neighborhood) || (stripped != "" && strings.Contains(found, stripped)) {
			score += weightNeighborhood
		}
	}

	if len(in.numbers) > 0 {
		total += weightNumber
		if sharesNumber(in.numbers, digitRuns.FindAllString(found, -1)) {
			score += weightNumber
		}
	}

	return label(float64(score) / float64(total))
}

func sharesNumber(a, b []string) bool {
	seen := make(map[string]struct{}, len(b))
	for _, n := range b {
		seen[n] = struct{}{}
	}
	for _, n := range a {
		if _, ok := seen[n]; ok {
			return true
		}
	}
	return false
}

func label(ratio float64) models.Confidence {
	switch {
	case ratio >= 0.8:
		return models.ConfidenceHigh
	case ratio >= 0.5:
		return models.ConfidenceMedium
	case ratio > 0:
		return models.ConfidenceLow
	default:
		return models.ConfidenceNone
	}
}
