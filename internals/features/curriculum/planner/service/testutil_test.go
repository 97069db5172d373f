package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	catalog "planeador_backend/internals/features/curriculum/catalog/model"
	"planeador_backend/internals/features/curriculum/planner/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every session on the same in-memory db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&catalog.UserModel{},
		&catalog.SubjectModel{},
		&catalog.LearningOutcomeModel{},
		&catalog.CourseOutcomeModel{},
		&catalog.EvidenceTypeModel{},
		&catalog.InstrumentModel{},
		&catalog.ThematicUnitModel{},
		&catalog.SubtopicModel{},
		&model.PlannerModel{},
		&model.PlannerDetailModel{},
		&model.DetailCourseOutcomeModel{},
		&model.DetailEvidenceTypeModel{},
		&model.DetailInstrumentModel{},
		&model.DetailThematicUnitModel{},
		&model.EvidenceTypeInstrumentModel{},
	))
	return db
}

type fixture struct {
	db *gorm.DB

	user    catalog.UserModel
	subject catalog.SubjectModel
	other   catalog.SubjectModel
	outcome catalog.LearningOutcomeModel

	co1, co2, coOther catalog.CourseOutcomeModel
	et1, et2, et3     catalog.EvidenceTypeModel
	inst1, inst2      catalog.InstrumentModel
	inst3             catalog.InstrumentModel
	units             [3]catalog.ThematicUnitModel

	planner model.PlannerModel
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{db: db}

	f.user = catalog.UserModel{Code: "U100", Name: "Laura Pertuz", Role: "docente"}
	require.NoError(t, db.Create(&f.user).Error)

	f.subject = catalog.SubjectModel{Code: "IS301", Name: "Ingenieria de Software", Type: "Teorica", Credits: 3}
	require.NoError(t, db.Create(&f.subject).Error)
	f.other = catalog.SubjectModel{Code: "MA101", Name: "Calculo Diferencial", Type: "Teorica", Credits: 4}
	require.NoError(t, db.Create(&f.other).Error)

	f.outcome = catalog.LearningOutcomeModel{Code: "RA1", Description: "Disena soluciones de software"}
	require.NoError(t, db.Create(&f.outcome).Error)

	f.co1 = catalog.CourseOutcomeModel{Description: "Aplica patrones de diseno", SubjectID: f.subject.ID}
	f.co2 = catalog.CourseOutcomeModel{Description: "Modela requisitos", SubjectID: f.subject.ID}
	f.coOther = catalog.CourseOutcomeModel{Description: "Calcula derivadas", SubjectID: f.other.ID}
	require.NoError(t, db.Create(&f.co1).Error)
	require.NoError(t, db.Create(&f.co2).Error)
	require.NoError(t, db.Create(&f.coOther).Error)

	f.et1 = catalog.EvidenceTypeModel{Name: "Conocimiento", CourseOutcomeID: f.co1.ID}
	f.et2 = catalog.EvidenceTypeModel{Name: "Desempeno", CourseOutcomeID: f.co1.ID}
	f.et3 = catalog.EvidenceTypeModel{Name: "Producto", CourseOutcomeID: f.co2.ID}
	require.NoError(t, db.Create(&f.et1).Error)
	require.NoError(t, db.Create(&f.et2).Error)
	require.NoError(t, db.Create(&f.et3).Error)

	f.inst1 = catalog.InstrumentModel{Name: "Quiz"}
	f.inst2 = catalog.InstrumentModel{Name: "Rubrica"}
	f.inst3 = catalog.InstrumentModel{Name: "Taller"}
	require.NoError(t, db.Create(&f.inst1).Error)
	require.NoError(t, db.Create(&f.inst2).Error)
	require.NoError(t, db.Create(&f.inst3).Error)

	for i, name := range []string{"Fundamentos", "Arquitectura", "Calidad"} {
		f.units[i] = catalog.ThematicUnitModel{Name: name, SubjectID: f.subject.ID}
		require.NoError(t, db.Create(&f.units[i]).Error)
	}
	require.NoError(t, db.Create(&catalog.SubtopicModel{Name: "Ciclo de vida", ThematicUnitID: f.units[0].ID}).Error)
	require.NoError(t, db.Create(&catalog.SubtopicModel{Name: "Metodologias agiles", ThematicUnitID: f.units[0].ID}).Error)

	f.planner = model.PlannerModel{
		Name:         "PD--Ingenieria de Software--1",
		TrainingArea: "Ingenieria Aplicada",
		UserID:       f.user.ID,
		SubjectID:    f.subject.ID,
	}
	require.NoError(t, db.Create(&f.planner).Error)

	return f
}

// baseInput links co1 with et1→inst1 and et2→inst2, plus all three units.
func baseInput(f fixture) DetailInput {
	return DetailInput{
		EvaluationWeights: []float64{30, 40},
		FeedbackStrategy:  "Retroalimentacion grupal en clase",
		FeedbackWeek:      "Semana 8",
		PeriodCut:         2,
		ActivityWeeks:     "Semanas 4-7",
		PlannerID:         f.planner.ID,
		LearningOutcomeID: f.outcome.ID,
		CourseOutcomes: []CourseOutcomeSelection{
			{
				CourseOutcomeID: f.co1.ID,
				EvidenceTypes: []EvidenceTypeSelection{
					{EvidenceTypeID: f.et1.ID, InstrumentIDs: []int{f.inst1.ID}},
					{EvidenceTypeID: f.et2.ID, InstrumentIDs: []int{f.inst2.ID}},
				},
			},
		},
		ThematicUnitIDs: []int{f.units[0].ID, f.units[1].ID, f.units[2].ID},
	}
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
