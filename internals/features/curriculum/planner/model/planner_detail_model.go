// internals/features/curriculum/planner/model/planner_detail_model.go
package model

import (
	"time"

	"gorm.io/datatypes"

	catalog "planeador_backend/internals/features/curriculum/catalog/model"
)

// PlannerDetailModel is one evaluated-activity row of a planner. The weights
// are positionally aligned to the flattened course-outcome → evidence-type →
// instrument iteration order of the row's association sets.
type PlannerDetailModel struct {
	ID                int                             `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EvaluationWeights datatypes.JSONSlice[float64]    `gorm:"column:evaluation_weights;not null" json:"evaluation_weights"`
	FeedbackStrategy  string                          `gorm:"column:feedback_strategy;type:text;not null" json:"feedback_strategy"`
	FeedbackWeek      string                          `gorm:"column:feedback_week;type:varchar(40);not null" json:"feedback_week"`
	PeriodCut         int                             `gorm:"column:period_cut;not null" json:"period_cut"`
	ActivityWeeks     string                          `gorm:"column:activity_weeks;type:varchar(120);not null" json:"activity_weeks"`
	PlannerID         int                             `gorm:"column:planner_id;not null;index" json:"planner_id"`
	LearningOutcomeID int                             `gorm:"column:learning_outcome_id;not null;index" json:"learning_outcome_id"`
	CreatedAt         time.Time                       `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time                       `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	Planner         *PlannerModel                 `gorm:"foreignKey:PlannerID" json:"planner,omitempty"`
	LearningOutcome *catalog.LearningOutcomeModel `gorm:"foreignKey:LearningOutcomeID" json:"learning_outcome,omitempty"`
}

func (PlannerDetailModel) TableName() string { return "planner_details" }
