package services

import (
	"math"
	"sort"

	"github.com/dnl4/brasil/internal/models"
)

// AverageRating computes the arithmetic mean of a rating collection,
// rounded to one decimal place (half away from zero). An empty
// collection averages to 0.
func AverageRating(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}

	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10
}

// GroupByProviderAndService partitions a flat rating list into groups
// keyed by (provider phone, service). Groups come back ordered by
// descending average; ties keep first-encounter order.
func GroupByProviderAndService(ratings []models.Rating) []models.ProviderGroup {
	type key struct {
		whatsapp string
		servico  string
	}

	index := make(map[key]int)
	groups := make([]models.ProviderGroup, 0)

	for _, rating := range ratings {
		k := key{whatsapp: rating.PrestadorWhatsapp, servico: rating.Servico}
		if i, ok := index[k]; ok {
			groups[i].Ratings = append(groups[i].Ratings, rating)
			continue
		}
		index[k] = len(groups)
		groups = append(groups, models.ProviderGroup{
			PrestadorWhatsapp: rating.PrestadorWhatsapp,
			PrestadorNome:     rating.PrestadorNome,
			Servico:           rating.Servico,
			Ratings:           []models.Rating{rating},
		})
	}

	for i := range groups {
		groups[i].AverageRating = AverageRating(groups[i].Ratings)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].AverageRating > groups[j].AverageRating
	})

	return groups
}
