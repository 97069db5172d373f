// internals/features/curriculum/catalog/model/thematic_unit_model.go
package model

import "time"

type ThematicUnitModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	SubjectID int       `gorm:"column:subject_id;not null;index" json:"subject_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	Subtopics []SubtopicModel `gorm:"foreignKey:ThematicUnitID" json:"subtopics,omitempty"`
}

func (ThematicUnitModel) TableName() string { return "thematic_units" }

type SubtopicModel struct {
	ID             int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"column:name;type:varchar(160);not null" json:"name"`
	ThematicUnitID int       `gorm:"column:thematic_unit_id;not null;index" json:"thematic_unit_id"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (SubtopicModel) TableName() string { return "subtopics" }
