package services

import (
	"math"
	"sort"

	"github.com/khizerinam08/deal-checker/models"
)

// Relative food needs per eater type, used to project one group's average
// rating onto another group's scale.
var capacityRatios = map[string]float64{
	models.EaterSmall:  0.67,
	models.EaterMedium: 1.00,
	models.EaterLarge:  1.33,
}

const (
	sameTypeWeight  = 1.0
	crossTypeWeight = 0.5
	maxBlendedScore = 10.0
)

// A deal annotated with the requester-specific blended score.
type ScoredDeal struct {
	models.Deal
	PersonalizedScore float64 `json:"personalized_score"`
	ReviewCount       int     `json:"review_count"`
}

// BlendScores computes a personalized "worth it" score per deal for the given
// eater type. Per-type value-rating averages are projected onto the target
// capacity, same-type votes weighted double cross-type ones, and the weighted
// mean is capped at 10 and rounded to one decimal. Deals are returned sorted
// by score descending, price ascending on ties; a voteless deal scores 0.
// An unknown target type falls back to Medium.
func BlendScores(targetType string, deals []models.Deal, votes []models.Vote) []ScoredDeal {
	if _, ok := capacityRatios[targetType]; !ok {
		targetType = models.EaterMedium
	}
	targetCap := capacityRatios[targetType]

	type typeAcc struct {
		sum float64
		n   int
	}
	byDeal := make(map[uint]map[string]*typeAcc)
	for _, v := range votes {
		if _, ok := capacityRatios[v.VoterType]; !ok {
			continue
		}
		byType := byDeal[v.DealID]
		if byType == nil {
			byType = make(map[string]*typeAcc)
			byDeal[v.DealID] = byType
		}
		acc := byType[v.VoterType]
		if acc == nil {
			acc = &typeAcc{}
			byType[v.VoterType] = acc
		}
		acc.sum += v.ValueRating
		acc.n++
	}

	out := make([]ScoredDeal, 0, len(deals))
	for _, d := range deals {
		var weightedSum, weightTotal float64
		reviews := 0
		for voterType, acc := range byDeal[d.ID] {
			avg := acc.sum / float64(acc.n)
			projected := avg * (capacityRatios[voterType] / targetCap)
			weight := crossTypeWeight
			if voterType == targetType {
				weight = sameTypeWeight
			}
			weightedSum += projected * weight
			weightTotal += weight
			reviews += acc.n
		}

		score := 0.0
		if weightTotal > 0 {
			score = weightedSum / weightTotal
		}
		if score > maxBlendedScore {
			score = maxBlendedScore
		}

		out = append(out, ScoredDeal{
			Deal:              d,
			PersonalizedScore: round1(score),
			ReviewCount:       reviews,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PersonalizedScore != out[j].PersonalizedScore {
			return out[i].PersonalizedScore > out[j].PersonalizedScore
		}
		return out[i].PricePKR < out[j].PricePKR
	})

	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
