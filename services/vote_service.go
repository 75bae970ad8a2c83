package services

import (
	"context"
	"errors"

	"github.com/khizerinam08/deal-checker/models"

	"gorm.io/gorm"
)

var (
	ErrInvalidEaterType = errors.New("eater type must be Small, Medium or Large")
	ErrRatingOutOfRange = errors.New("rating out of range")
	ErrDealNotFound     = errors.New("deal not found")
)

type VoteService struct {
	db    *gorm.DB
	hub   *ScoreHub
	cache *VoteCache
}

func NewVoteService(db *gorm.DB, hub *ScoreHub, cache *VoteCache) *VoteService {
	return &VoteService{db: db, hub: hub, cache: cache}
}

// Denormalized aggregate columns recomputed from the full vote set of a deal.
type DealAggregates struct {
	DealID           uint    `json:"deal_id"`
	BaseValueScore   float64 `json:"base_value_score"`
	MultiplierLight  float64 `json:"multiplier_light"`
	MultiplierMedium float64 `json:"multiplier_medium"`
	MultiplierHeavy  float64 `json:"multiplier_heavy"`
	ReviewCount      int64   `json:"review_count"`
}

// Submit records (or re-records) the user's vote for a deal and synchronously
// recomputes the deal's aggregates inside the same transaction. Returns the
// stored vote and whether it was newly created.
func (s *VoteService) Submit(ctx context.Context, userID string, dealID uint, satietyRating, valueRating float64, eaterType string) (*models.Vote, bool, error) {
	if !models.ValidEaterType(eaterType) {
		return nil, false, ErrInvalidEaterType
	}
	valueRating = round1(valueRating)
	satietyRating = round1(satietyRating)
	if valueRating < 0 || valueRating > 10 || satietyRating <= 0 || satietyRating > 5 {
		return nil, false, ErrRatingOutOfRange
	}

	var deal models.Deal
	if err := s.db.WithContext(ctx).First(&deal, dealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrDealNotFound
		}
		return nil, false, err
	}

	var vote models.Vote
	var agg *DealAggregates
	created := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND deal_id = ?", userID, dealID).First(&vote).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote = models.Vote{
				UserID:        userID,
				DealID:        dealID,
				VoterType:     eaterType,
				ValueRating:   valueRating,
				SatietyRating: satietyRating,
			}
			created = true
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			vote.VoterType = eaterType
			vote.ValueRating = valueRating
			vote.SatietyRating = satietyRating
			if err := tx.Save(&vote).Error; err != nil {
				return err
			}
		}

		agg, err = recalcDealAggregates(tx, dealID)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		s.cache.Put(userID, vote)
	}
	if s.hub != nil && agg != nil {
		s.hub.BroadcastScoreUpdate(*agg)
	}

	return &vote, created, nil
}

// GetVote returns the user's existing vote for a deal, if any, checking the
// session cache before hitting the database.
func (s *VoteService) GetVote(ctx context.Context, userID string, dealID uint) (*models.Vote, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(userID, dealID); ok {
			return &v, nil
		}
	}

	var vote models.Vote
	err := s.db.WithContext(ctx).Where("user_id = ? AND deal_id = ?", userID, dealID).First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

type voteAggRow struct {
	VoterType  string
	N          int64
	AvgValue   float64
	AvgSatiety float64
}

// recalcDealAggregates recomputes a deal's denormalized columns from a single
// GROUP BY aggregation, so concurrent submissions cannot publish an aggregate
// missing each other's votes. A deal with no votes is left untouched.
// Recomputation is idempotent: same vote set, same stored values.
func recalcDealAggregates(tx *gorm.DB, dealID uint) (*DealAggregates, error) {
	var rows []voteAggRow
	err := tx.Model(&models.Vote{}).
		Select("voter_type, COUNT(*) AS n, AVG(value_rating) AS avg_value, AVG(satiety_rating) AS avg_satiety").
		Where("deal_id = ?", dealID).
		Group("voter_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Types with no votes keep the neutral multiplier.
	agg := DealAggregates{
		DealID:           dealID,
		MultiplierLight:  1.0,
		MultiplierMedium: 1.0,
		MultiplierHeavy:  1.0,
	}
	var valueSum float64
	for _, r := range rows {
		agg.ReviewCount += r.N
		valueSum += r.AvgValue * float64(r.N)
		switch r.VoterType {
		case models.EaterSmall:
			agg.MultiplierLight = r.AvgSatiety
		case models.EaterMedium:
			agg.MultiplierMedium = r.AvgSatiety
		case models.EaterLarge:
			agg.MultiplierHeavy = r.AvgSatiety
		}
	}
	agg.BaseValueScore = valueSum / float64(agg.ReviewCount)

	err = tx.Model(&models.Deal{}).Where("id = ?", dealID).Updates(map[string]interface{}{
		"base_value_score":  agg.BaseValueScore,
		"multiplier_light":  agg.MultiplierLight,
		"multiplier_medium": agg.MultiplierMedium,
		"multiplier_heavy":  agg.MultiplierHeavy,
	}).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

// ResetDealScores puts every deal back to the pre-vote defaults.
func ResetDealScores(db *gorm.DB) (int64, error) {
	res := db.Model(&models.Deal{}).Where("1 = 1").Updates(map[string]interface{}{
		"base_value_score":  0.0,
		"multiplier_light":  1.0,
		"multiplier_medium": 1.0,
		"multiplier_heavy":  1.0,
	})
	return res.RowsAffected, res.Error
}
