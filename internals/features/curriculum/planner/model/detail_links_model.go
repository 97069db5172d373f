// internals/features/curriculum/planner/model/detail_links_model.go
package model

import "time"

// The four join sets below are created and destroyed as one unit per detail
// row. EvidenceTypeInstrument is the only pairing shared process-wide.

type DetailCourseOutcomeModel struct {
	ID              int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DetailID        int       `gorm:"column:detail_id;not null;index;uniqueIndex:uq_detail_course_outcome,priority:1" json:"detail_id"`
	CourseOutcomeID int       `gorm:"column:course_outcome_id;not null;uniqueIndex:uq_detail_course_outcome,priority:2" json:"course_outcome_id"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (DetailCourseOutcomeModel) TableName() string { return "detail_course_outcomes" }

type DetailEvidenceTypeModel struct {
	ID             int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DetailID       int       `gorm:"column:detail_id;not null;index;uniqueIndex:uq_detail_evidence_type,priority:1" json:"detail_id"`
	EvidenceTypeID int       `gorm:"column:evidence_type_id;not null;uniqueIndex:uq_detail_evidence_type,priority:2" json:"evidence_type_id"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (DetailEvidenceTypeModel) TableName() string { return "detail_evidence_types" }

type DetailInstrumentModel struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DetailID     int       `gorm:"column:detail_id;not null;index;uniqueIndex:uq_detail_instrument,priority:1" json:"detail_id"`
	InstrumentID int       `gorm:"column:instrument_id;not null;uniqueIndex:uq_detail_instrument,priority:2" json:"instrument_id"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (DetailInstrumentModel) TableName() string { return "detail_instruments" }

type DetailThematicUnitModel struct {
	ID             int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DetailID       int       `gorm:"column:detail_id;not null;index;uniqueIndex:uq_detail_thematic_unit,priority:1" json:"detail_id"`
	ThematicUnitID int       `gorm:"column:thematic_unit_id;not null;uniqueIndex:uq_detail_thematic_unit,priority:2" json:"thematic_unit_id"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (DetailThematicUnitModel) TableName() string { return "detail_thematic_units" }

// EvidenceTypeInstrumentModel pairs an evidence type with an instrument once
// system-wide; reconciliation inserts with on-conflict-do-nothing against the
// unique index instead of find-or-create.
type EvidenceTypeInstrumentModel struct {
	ID             int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EvidenceTypeID int       `gorm:"column:evidence_type_id;not null;uniqueIndex:uq_evidence_type_instrument,priority:1" json:"evidence_type_id"`
	InstrumentID   int       `gorm:"column:instrument_id;not null;uniqueIndex:uq_evidence_type_instrument,priority:2" json:"instrument_id"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (EvidenceTypeInstrumentModel) TableName() string { return "evidence_type_instruments" }
