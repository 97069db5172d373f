// internals/features/curriculum/planner/service/associations.go
package service

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalog "planeador_backend/internals/features/curriculum/catalog/model"
	"planeador_backend/internals/features/curriculum/planner/model"
)

// reconcileAssociations builds the four join sets of one detail row inside
// the caller's transaction.
//
// The checks are deliberately asymmetric: a course outcome that does not
// belong to the planner's subject aborts everything, while a missing
// evidence type or thematic unit is skipped silently (its nested instruments
// with it). Pairings use insert-ignore against the unique indexes so an
// instrument reachable through two evidence types still yields one row.
func reconcileAssociations(tx *gorm.DB, detailID, subjectID int, in DetailInput) error {
	for _, co := range in.CourseOutcomes {
		var outcome catalog.CourseOutcomeModel
		err := tx.Where("id = ? AND subject_id = ?", co.CourseOutcomeID, subjectID).
			First(&outcome).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ReferentialViolationError{CourseOutcomeID: co.CourseOutcomeID, SubjectID: subjectID}
		}
		if err != nil {
			return err
		}

		if err := tx.Create(&model.DetailCourseOutcomeModel{
			DetailID:        detailID,
			CourseOutcomeID: co.CourseOutcomeID,
		}).Error; err != nil {
			return err
		}

		for _, et := range co.EvidenceTypes {
			var evidence catalog.EvidenceTypeModel
			err := tx.Where("id = ? AND course_outcome_id = ?", et.EvidenceTypeID, co.CourseOutcomeID).
				First(&evidence).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			if err := tx.Create(&model.DetailEvidenceTypeModel{
				DetailID:       detailID,
				EvidenceTypeID: et.EvidenceTypeID,
			}).Error; err != nil {
				return err
			}

			for _, instrumentID := range et.InstrumentIDs {
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&model.EvidenceTypeInstrumentModel{
						EvidenceTypeID: et.EvidenceTypeID,
						InstrumentID:   instrumentID,
					}).Error; err != nil {
					return err
				}
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&model.DetailInstrumentModel{
						DetailID:     detailID,
						InstrumentID: instrumentID,
					}).Error; err != nil {
					return err
				}
			}
		}
	}

	for _, unitID := range in.ThematicUnitIDs {
		err := tx.First(&catalog.ThematicUnitModel{}, unitID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := tx.Create(&model.DetailThematicUnitModel{
			DetailID:       detailID,
			ThematicUnitID: unitID,
		}).Error; err != nil {
			return err
		}
	}

	return nil
}

// destroyAssociations drops all four join sets of a detail row. The shared
// evidence-type/instrument pairings stay: they are system-wide, not scoped
// to the detail.
func destroyAssociations(tx *gorm.DB, detailID int) error {
	if err := tx.Where("detail_id = ?", detailID).
		Delete(&model.DetailCourseOutcomeModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("detail_id = ?", detailID).
		Delete(&model.DetailEvidenceTypeModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("detail_id = ?", detailID).
		Delete(&model.DetailInstrumentModel{}).Error; err != nil {
		return err
	}
	return tx.Where("detail_id = ?", detailID).
		Delete(&model.DetailThematicUnitModel{}).Error
}

// loadAssociations reads back the four join sets in creation order.
func loadAssociations(db *gorm.DB, detailID int) (DetailLinks, error) {
	links := DetailLinks{
		CourseOutcomeIDs: []int{},
		EvidenceTypeIDs:  []int{},
		InstrumentIDs:    []int{},
		ThematicUnitIDs:  []int{},
	}

	if err := db.Model(&model.DetailCourseOutcomeModel{}).
		Where("detail_id = ?", detailID).Order("id").
		Pluck("course_outcome_id", &links.CourseOutcomeIDs).Error; err != nil {
		return links, err
	}
	if err := db.Model(&model.DetailEvidenceTypeModel{}).
		Where("detail_id = ?", detailID).Order("id").
		Pluck("evidence_type_id", &links.EvidenceTypeIDs).Error; err != nil {
		return links, err
	}
	if err := db.Model(&model.DetailInstrumentModel{}).
		Where("detail_id = ?", detailID).Order("id").
		Pluck("instrument_id", &links.InstrumentIDs).Error; err != nil {
		return links, err
	}
	if err := db.Model(&model.DetailThematicUnitModel{}).
		Where("detail_id = ?", detailID).Order("id").
		Pluck("thematic_unit_id", &links.ThematicUnitIDs).Error; err != nil {
		return links, err
	}
	return links, nil
}
