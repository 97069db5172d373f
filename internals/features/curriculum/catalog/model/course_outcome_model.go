// internals/features/curriculum/catalog/model/course_outcome_model.go
package model

import "time"

// CourseOutcomeModel (RA curso) belongs to exactly one subject.
type CourseOutcomeModel struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	SubjectID   int       `gorm:"column:subject_id;not null;index" json:"subject_id"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	Subject *SubjectModel `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
}

func (CourseOutcomeModel) TableName() string { return "course_outcomes" }

// EvidenceTypeModel belongs to exactly one course outcome.
type EvidenceTypeModel struct {
	ID              int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	CourseOutcomeID int       `gorm:"column:course_outcome_id;not null;index" json:"course_outcome_id"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	CourseOutcome *CourseOutcomeModel `gorm:"foreignKey:CourseOutcomeID" json:"course_outcome,omitempty"`
}

func (EvidenceTypeModel) TableName() string { return "evidence_types" }

// InstrumentModel is a concrete evaluation instrument (quiz, rubric, ...).
type InstrumentModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (InstrumentModel) TableName() string { return "instruments" }
