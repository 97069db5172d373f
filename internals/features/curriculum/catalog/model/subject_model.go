// internals/features/curriculum/catalog/model/subject_model.go
package model

import "time"

type SubjectModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"column:code;type:varchar(20);not null;uniqueIndex" json:"code"`
	Name      string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Type      string    `gorm:"column:type;type:varchar(40);not null" json:"type"`
	Credits   int       `gorm:"column:credits;not null" json:"credits"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (SubjectModel) TableName() string { return "subjects" }

// LearningOutcomeModel is a program-level learning outcome (RA).
type LearningOutcomeModel struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code        string    `gorm:"column:code;type:varchar(20);not null" json:"code"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (LearningOutcomeModel) TableName() string { return "learning_outcomes" }
