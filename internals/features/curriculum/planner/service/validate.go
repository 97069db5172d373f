// internals/features/curriculum/planner/service/validate.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	catalog "planeador_backend/internals/features/curriculum/catalog/model"
	"planeador_backend/internals/features/curriculum/planner/model"
)

// ValidateDetailInput checks referenced entities and the weight invariants
// before any mutation. It returns the planner so the caller can scope the
// course-outcome lookups to its subject.
func ValidateDetailInput(ctx context.Context, db *gorm.DB, in DetailInput) (*model.PlannerModel, error) {
	var planner model.PlannerModel
	if err := db.WithContext(ctx).First(&planner, in.PlannerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlannerNotFound
		}
		return nil, err
	}

	if err := db.WithContext(ctx).First(&catalog.LearningOutcomeModel{}, in.LearningOutcomeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLearningOutcomeNotFound
		}
		return nil, err
	}

	if err := validateWeights(in); err != nil {
		return nil, err
	}
	return &planner, nil
}

func validateWeights(in DetailInput) error {
	sum := 0.0
	for _, w := range in.EvaluationWeights {
		if w < 1 {
			return ErrWeightBelowMinimum
		}
		sum += w
	}
	if sum > 100 {
		return ErrWeightSumExceeded
	}
	if len(in.EvaluationWeights) != in.DeclaredInstrumentCount() {
		return ErrWeightCountMismatch
	}
	return nil
}
