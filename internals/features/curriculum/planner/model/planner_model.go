// internals/features/curriculum/planner/model/planner_model.go
package model

import (
	"time"

	catalog "planeador_backend/internals/features/curriculum/catalog/model"
)

// PlannerModel is a per-teacher, per-subject planner document. The name is
// generated as PD--{subjectName}--{sequence} and must stay unique.
type PlannerModel struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;type:varchar(160);not null;uniqueIndex:uq_planners_name" json:"name"`
	TrainingArea string    `gorm:"column:training_area;type:varchar(120);not null" json:"training_area"`
	UserID       int       `gorm:"column:user_id;index" json:"user_id"`
	SubjectID    int       `gorm:"column:subject_id;index" json:"subject_id"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	User    *catalog.UserModel    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Subject *catalog.SubjectModel `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Details []PlannerDetailModel  `gorm:"foreignKey:PlannerID" json:"details,omitempty"`
}

func (PlannerModel) TableName() string { return "planners" }
