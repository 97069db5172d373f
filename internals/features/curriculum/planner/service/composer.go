// internals/features/curriculum/planner/service/composer.go
package service

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"planeador_backend/internals/features/curriculum/planner/model"
)

// Composer orchestrates the lifecycle of one detail row together with its
// four association sets. Every mutation runs in a single transaction: either
// the row and all its links land, or nothing does.
type Composer struct {
	DB *gorm.DB
}

func NewComposer(db *gorm.DB) *Composer {
	return &Composer{DB: db}
}

func (s *Composer) CreateDetail(ctx context.Context, in DetailInput) (*model.PlannerDetailModel, error) {
	planner, err := ValidateDetailInput(ctx, s.DB, in)
	if err != nil {
		return nil, err
	}

	detail := &model.PlannerDetailModel{
		EvaluationWeights: datatypes.NewJSONSlice(in.EvaluationWeights),
		FeedbackStrategy:  in.FeedbackStrategy,
		FeedbackWeek:      in.FeedbackWeek,
		PeriodCut:         in.PeriodCut,
		ActivityWeeks:     in.ActivityWeeks,
		PlannerID:         in.PlannerID,
		LearningOutcomeID: in.LearningOutcomeID,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(detail).Error; err != nil {
			return err
		}
		return reconcileAssociations(tx, detail.ID, planner.SubjectID, in)
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// UpdateDetail is a full replace: scalar fields are overwritten and all four
// join sets are destroyed and rebuilt from the payload.
func (s *Composer) UpdateDetail(ctx context.Context, id int, in DetailInput) (*model.PlannerDetailModel, error) {
	var detail model.PlannerDetailModel
	if err := s.DB.WithContext(ctx).First(&detail, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetailNotFound
		}
		return nil, err
	}

	planner, err := ValidateDetailInput(ctx, s.DB, in)
	if err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"evaluation_weights":  datatypes.NewJSONSlice(in.EvaluationWeights),
			"feedback_strategy":   in.FeedbackStrategy,
			"feedback_week":       in.FeedbackWeek,
			"period_cut":          in.PeriodCut,
			"activity_weeks":      in.ActivityWeeks,
			"planner_id":          in.PlannerID,
			"learning_outcome_id": in.LearningOutcomeID,
		}
		if err := tx.Model(&model.PlannerDetailModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if err := destroyAssociations(tx, id); err != nil {
			return err
		}
		return reconcileAssociations(tx, id, planner.SubjectID, in)
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).First(&detail, id).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *Composer) DeleteDetail(ctx context.Context, id int) error {
	var detail model.PlannerDetailModel
	if err := s.DB.WithContext(ctx).First(&detail, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDetailNotFound
		}
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := destroyAssociations(tx, id); err != nil {
			return err
		}
		return tx.Delete(&model.PlannerDetailModel{}, id).Error
	})
}

func (s *Composer) GetDetail(ctx context.Context, id int) (*model.PlannerDetailModel, DetailLinks, error) {
	var detail model.PlannerDetailModel
	if err := s.DB.WithContext(ctx).First(&detail, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, DetailLinks{}, ErrDetailNotFound
		}
		return nil, DetailLinks{}, err
	}
	links, err := loadAssociations(s.DB.WithContext(ctx), id)
	if err != nil {
		return nil, DetailLinks{}, err
	}
	return &detail, links, nil
}

// ListDetails returns the detail rows of one planner in creation order.
func (s *Composer) ListDetails(ctx context.Context, plannerID int) ([]model.PlannerDetailModel, []DetailLinks, error) {
	if err := s.DB.WithContext(ctx).First(&model.PlannerModel{}, plannerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPlannerNotFound
		}
		return nil, nil, err
	}

	var details []model.PlannerDetailModel
	if err := s.DB.WithContext(ctx).
		Where("planner_id = ?", plannerID).
		Order("id").
		Find(&details).Error; err != nil {
		return nil, nil, err
	}

	links := make([]DetailLinks, 0, len(details))
	for _, d := range details {
		l, err := loadAssociations(s.DB.WithContext(ctx), d.ID)
		if err != nil {
			return nil, nil, err
		}
		links = append(links, l)
	}
	return details, links, nil
}

// DeletePlanner removes a planner and cascades to its detail rows and their
// join sets, all in one transaction.
func (s *Composer) DeletePlanner(ctx context.Context, plannerID int) error {
	var planner model.PlannerModel
	if err := s.DB.WithContext(ctx).First(&planner, plannerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlannerNotFound
		}
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var detailIDs []int
		if err := tx.Model(&model.PlannerDetailModel{}).
			Where("planner_id = ?", plannerID).
			Pluck("id", &detailIDs).Error; err != nil {
			return err
		}
		for _, id := range detailIDs {
			if err := destroyAssociations(tx, id); err != nil {
				return err
			}
		}
		if err := tx.Where("planner_id = ?", plannerID).
			Delete(&model.PlannerDetailModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PlannerModel{}, plannerID).Error
	})
}
