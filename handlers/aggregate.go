// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"math"
	"net/url"

	"github.com/danielhkuo/hmonglove/models"
)

// Filter selects the responses a report is computed over. nil keeps everything.
type Filter func(models.Response) bool

// Aggregate computes the dashboard report over the responses accepted by filter.
// It is pure: the same input always yields the same report. Input order is
// preserved in the open-answer lists and rawData.
func Aggregate(responses []models.Response, filter Filter) models.Report {
	subset := make([]models.Response, 0, len(responses))
	for _, r := range responses {
		if filter == nil || filter(r) {
			subset = append(subset, r)
		}
	}

	return models.Report{
		TotalResponses: len(subset),
		AverageAge:     averageAge(subset),
		SexeStats:      countChoices(models.SexeValues, subset, func(r models.Response) models.Sexe { return r.Sexe }),
		Q1Stats:        countChoices(models.UsageValues, subset, func(r models.Response) models.Usage { return r.Q1Usage }),
		Q2Stats:        countChoices(models.InterestValues, subset, func(r models.Response) models.Interest { return r.Q2Interet }),
		Q4Stats:        countChoices(models.CultureValues, subset, func(r models.Response) models.Culture { return r.Q4Culture }),
		Q5Counts:       countTags(subset, func(r models.Response) []string { return r.Q5CultureFeatures }),
		Q6Counts:       countTags(subset, func(r models.Response) []string { return r.Q6Features }),
		Q9Stats:        countChoices(models.StyleValues, subset, func(r models.Response) models.Style { return r.Q9Style }),
		Q10Stats:       countChoices(models.HookValues, subset, func(r models.Response) models.Hook { return r.Q10Accroche }),
		OpenResponses: models.OpenResponses{
			Q3: openAnswers(subset, func(r models.Response) *string { return r.Q3Pourquoi }),
			Q7: openAnswers(subset, func(r models.Response) *string { return r.Q7Fuir }),
			Q8: openAnswers(subset, func(r models.Response) *string { return r.Q8Rester }),
		},
		RawData: subset,
	}
}

// countChoices counts a closed-choice answer. Every member is present, zero or not,
// so chart legends stay stable.
func countChoices[T ~string](members []T, subset []models.Response, field func(models.Response) T) map[string]int {
	counts := make(map[string]int, len(members))
	for _, m := range members {
		counts[string(m)] = 0
	}
	for _, r := range subset {
		v := field(r)
		if _, known := counts[string(v)]; known {
			counts[string(v)]++
		}
	}
	return counts
}

// countTags counts every tag actually observed, including free-form "autre:" tags
func countTags(subset []models.Response, field func(models.Response) []string) map[string]int {
	counts := map[string]int{}
	for _, r := range subset {
		for _, tag := range field(r) {
			counts[tag]++
		}
	}
	return counts
}

func openAnswers(subset []models.Response, field func(models.Response) *string) []models.OpenResponse {
	answers := []models.OpenResponse{}
	for _, r := range subset {
		text := field(r)
		if text == nil || *text == "" {
			continue
		}
		answers = append(answers, models.OpenResponse{
			ID:   r.ID,
			Text: *text,
			Date: r.CreatedAt,
		})
	}
	return answers
}

// averageAge rounds half up; an empty subset averages to 0
func averageAge(subset []models.Response) int {
	if len(subset) == 0 {
		return 0
	}

	sum := 0
	for _, r := range subset {
		sum += r.Age
	}
	return int(math.Floor(float64(sum)/float64(len(subset)) + 0.5))
}

// ParseFilter builds a Filter from the stats query string.
// Supported keys: sexe, q2_interet, langue. Criteria are ANDed; unknown
// choice values are an error.
func ParseFilter(query url.Values) (Filter, error) {
	var criteria []Filter

	if v := query.Get("sexe"); v != "" {
		sexe := models.Sexe(v)
		if !sexe.Valid() {
			return nil, fmt.Errorf("unknown sexe filter %q", v)
		}
		criteria = append(criteria, func(r models.Response) bool { return r.Sexe == sexe })
	}

	if v := query.Get("q2_interet"); v != "" {
		interest := models.Interest(v)
		if !interest.Valid() {
			return nil, fmt.Errorf("unknown q2_interet filter %q", v)
		}
		criteria = append(criteria, func(r models.Response) bool { return r.Q2Interet == interest })
	}

	if v := query.Get("langue"); v != "" {
		criteria = append(criteria, func(r models.Response) bool { return r.Langue == v })
	}

	if len(criteria) == 0 {
		return nil, nil
	}

	return func(r models.Response) bool {
		for _, keep := range criteria {
			if !keep(r) {
				return false
			}
		}
		return true
	}, nil
}
