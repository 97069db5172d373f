// internals/features/curriculum/planner/service/export.go
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	catalog "planeador_backend/internals/features/curriculum/catalog/model"
	"planeador_backend/internals/features/curriculum/planner/model"
)

const exportSheet = "Planner"

var exportColumns = []string{
	"Learning outcome",
	"Course outcome",
	"Evidence type",
	"Instrument",
	"Evaluation weight (%)",
	"Feedback strategy",
	"Feedback week",
	"Period cut",
	"Activity weeks",
	"Thematic units",
	"Subtopics",
}

// Exporter materializes one planner into a spreadsheet with merged cells
// reflecting the outcome → course-outcome → evidence-type → instrument
// hierarchy.
type Exporter struct {
	DB *gorm.DB
}

func NewExporter(db *gorm.DB) *Exporter {
	return &Exporter{DB: db}
}

// BuildSpreadsheet deep-reads the planner and renders the document. Any read
// or render failure returns an error before a single byte is produced.
func (e *Exporter) BuildSpreadsheet(ctx context.Context, plannerID int) (*bytes.Buffer, string, error) {
	var planner model.PlannerModel
	err := e.DB.WithContext(ctx).
		Preload("User").
		Preload("Subject").
		First(&planner, plannerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrPlannerNotFound
	}
	if err != nil {
		return nil, "", err
	}

	details, err := e.collectDetails(ctx, plannerID)
	if err != nil {
		return nil, "", err
	}

	buf, err := renderSpreadsheet(&planner, details)
	if err != nil {
		return nil, "", err
	}
	return buf, planner.Name + ".xlsx", nil
}

/* ===============================
   Deep read (flat queries, grouped in memory)
=================================*/

type exportDetail struct {
	row            model.PlannerDetailModel
	outcomeText    string
	courseOutcomes []exportCourseOutcome
	unitNames      []string
	subtopicNames  []string
}

type exportCourseOutcome struct {
	id            int
	description   string
	evidenceTypes []exportEvidenceType
}

type exportEvidenceType struct {
	id          int
	name        string
	instruments []exportInstrument
}

type exportInstrument struct {
	id   int
	name string
}

func (e *Exporter) collectDetails(ctx context.Context, plannerID int) ([]exportDetail, error) {
	db := e.DB.WithContext(ctx)

	var rows []model.PlannerDetailModel
	if err := db.Preload("LearningOutcome").
		Where("planner_id = ?", plannerID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	detailIDs := make([]int, 0, len(rows))
	details := make([]exportDetail, 0, len(rows))
	index := make(map[int]int, len(rows))
	for i, r := range rows {
		detailIDs = append(detailIDs, r.ID)
		text := ""
		if r.LearningOutcome != nil {
			text = strings.TrimSpace(r.LearningOutcome.Code + " " + r.LearningOutcome.Description)
		}
		details = append(details, exportDetail{row: r, outcomeText: text})
		index[r.ID] = i
	}

	// course outcomes per detail, in link-creation order
	type courseLinkRow struct {
		DetailID        int
		CourseOutcomeID int
		Description     string
	}
	var courseLinks []courseLinkRow
	if err := db.Table("detail_course_outcomes AS dco").
		Select("dco.detail_id AS detail_id, co.id AS course_outcome_id, co.description AS description").
		Joins("JOIN course_outcomes co ON co.id = dco.course_outcome_id").
		Where("dco.detail_id IN ?", detailIDs).
		Order("dco.id").
		Scan(&courseLinks).Error; err != nil {
		return nil, err
	}
	coIndex := make(map[[2]int]*exportCourseOutcome, len(courseLinks))
	for _, l := range courseLinks {
		d := &details[index[l.DetailID]]
		d.courseOutcomes = append(d.courseOutcomes, exportCourseOutcome{
			id:          l.CourseOutcomeID,
			description: l.Description,
		})
		coIndex[[2]int{l.DetailID, l.CourseOutcomeID}] = &d.courseOutcomes[len(d.courseOutcomes)-1]
	}

	// evidence types per (detail, course outcome)
	type evidenceLinkRow struct {
		DetailID        int
		EvidenceTypeID  int
		CourseOutcomeID int
		Name            string
	}
	var evidenceLinks []evidenceLinkRow
	if err := db.Table("detail_evidence_types AS det").
		Select("det.detail_id AS detail_id, et.id AS evidence_type_id, et.course_outcome_id AS course_outcome_id, et.name AS name").
		Joins("JOIN evidence_types et ON et.id = det.evidence_type_id").
		Where("det.detail_id IN ?", detailIDs).
		Order("det.id").
		Scan(&evidenceLinks).Error; err != nil {
		return nil, err
	}
	etIndex := make(map[[2]int]*exportEvidenceType, len(evidenceLinks))
	for _, l := range evidenceLinks {
		co, ok := coIndex[[2]int{l.DetailID, l.CourseOutcomeID}]
		if !ok {
			continue
		}
		co.evidenceTypes = append(co.evidenceTypes, exportEvidenceType{
			id:   l.EvidenceTypeID,
			name: l.Name,
		})
		etIndex[[2]int{l.DetailID, l.EvidenceTypeID}] = &co.evidenceTypes[len(co.evidenceTypes)-1]
	}

	// instruments per (detail, evidence type), through the shared pairing
	type instrumentLinkRow struct {
		DetailID       int
		EvidenceTypeID int
		InstrumentID   int
		Name           string
	}
	var instrumentLinks []instrumentLinkRow
	if err := db.Table("detail_instruments AS di").
		Select("di.detail_id AS detail_id, det.evidence_type_id AS evidence_type_id, i.id AS instrument_id, i.name AS name").
		Joins("JOIN evidence_type_instruments eti ON eti.instrument_id = di.instrument_id").
		Joins("JOIN detail_evidence_types det ON det.detail_id = di.detail_id AND det.evidence_type_id = eti.evidence_type_id").
		Joins("JOIN instruments i ON i.id = di.instrument_id").
		Where("di.detail_id IN ?", detailIDs).
		Order("det.id, di.id").
		Scan(&instrumentLinks).Error; err != nil {
		return nil, err
	}
	for _, l := range instrumentLinks {
		et, ok := etIndex[[2]int{l.DetailID, l.EvidenceTypeID}]
		if !ok {
			continue
		}
		et.instruments = append(et.instruments, exportInstrument{id: l.InstrumentID, name: l.Name})
	}

	// thematic units + subtopics per detail
	type unitLinkRow struct {
		DetailID       int
		ThematicUnitID int
		Name           string
	}
	var unitLinks []unitLinkRow
	if err := db.Table("detail_thematic_units AS dtu").
		Select("dtu.detail_id AS detail_id, tu.id AS thematic_unit_id, tu.name AS name").
		Joins("JOIN thematic_units tu ON tu.id = dtu.thematic_unit_id").
		Where("dtu.detail_id IN ?", detailIDs).
		Order("dtu.id").
		Scan(&unitLinks).Error; err != nil {
		return nil, err
	}
	unitIDs := make([]int, 0, len(unitLinks))
	for _, l := range unitLinks {
		unitIDs = append(unitIDs, l.ThematicUnitID)
	}
	subtopicsByUnit := map[int][]string{}
	if len(unitIDs) > 0 {
		var subs []catalog.SubtopicModel
		if err := db.Where("thematic_unit_id IN ?", unitIDs).
			Order("id").
			Find(&subs).Error; err != nil {
			return nil, err
		}
		for _, s := range subs {
			subtopicsByUnit[s.ThematicUnitID] = append(subtopicsByUnit[s.ThematicUnitID], s.Name)
		}
	}
	for _, l := range unitLinks {
		d := &details[index[l.DetailID]]
		d.unitNames = append(d.unitNames, l.Name)
		d.subtopicNames = append(d.subtopicNames, subtopicsByUnit[l.ThematicUnitID]...)
	}

	return details, nil
}

/* ===============================
   Rendering
=================================*/

// sheetRow is one generated output row plus the grouping keys used for the
// merge computation.
type sheetRow struct {
	detailKey   string
	outcomeKey  string
	evidenceKey string
	cells       [11]any
}

func flattenDetails(details []exportDetail) []sheetRow {
	var out []sheetRow
	for _, d := range details {
		units := strings.Join(d.unitNames, "\n")
		subtopics := strings.Join(d.subtopicNames, "\n")
		for _, co := range d.courseOutcomes {
			for _, et := range co.evidenceTypes {
				for idx, inst := range et.instruments {
					weights := []float64(d.row.EvaluationWeights)
					var weight any
					// weight index resets per evidence type, matching the
					// instrument's position in its own list
					if idx < len(weights) {
						weight = weights[idx]
					}
					out = append(out, sheetRow{
						detailKey:   fmt.Sprintf("d%d", d.row.ID),
						outcomeKey:  fmt.Sprintf("d%d/c%d", d.row.ID, co.id),
						evidenceKey: fmt.Sprintf("d%d/c%d/e%d", d.row.ID, co.id, et.id),
						cells: [11]any{
							d.outcomeText,
							co.description,
							et.name,
							inst.name,
							weight,
							d.row.FeedbackStrategy,
							d.row.FeedbackWeek,
							d.row.PeriodCut,
							d.row.ActivityWeeks,
							units,
							subtopics,
						},
					})
				}
			}
		}
	}
	return out
}

func renderSpreadsheet(planner *model.PlannerModel, details []exportDetail) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	teacherName, subjectCode, subjectName, subjectType := "", "", "", ""
	credits := 0
	if planner.User != nil {
		teacherName = planner.User.Name
	}
	if planner.Subject != nil {
		subjectCode = planner.Subject.Code
		subjectName = planner.Subject.Name
		subjectType = planner.Subject.Type
		credits = planner.Subject.Credits
	}

	// fixed header block
	header := map[string]any{
		"A1": "Teacher:", "B1": teacherName,
		"A2": "Training area:", "B2": planner.TrainingArea,
		"D1": "Subject code:", "E1": subjectCode,
		"D2": "Subject:", "E2": subjectName,
		"G1": "Type:", "H1": subjectType,
		"G2": "Credits:", "H2": credits,
	}
	for cell, v := range header {
		if err := f.SetCellValue(exportSheet, cell, v); err != nil {
			return nil, err
		}
	}

	const headerRow = 4
	for i, title := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return nil, err
		}
	}

	rows := flattenDetails(details)
	firstDataRow := headerRow + 1
	for i, r := range rows {
		for col, v := range r.cells {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, firstDataRow+i)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := applyMerges(f, rows, firstDataRow); err != nil {
		return nil, err
	}

	lastRow := firstDataRow + len(rows) - 1
	if len(rows) == 0 {
		lastRow = headerRow
	}
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(exportSheet, "A1", fmt.Sprintf("K%d", lastRow), style); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "A", "K", 22); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

// applyMerges computes vertical merges per grouping level: detail-scalar
// columns span a whole detail row group, course-outcome columns one course
// outcome, the evidence-type column one evidence type.
func applyMerges(f *excelize.File, rows []sheetRow, firstDataRow int) error {
	levels := []struct {
		key  func(i int) string
		cols []int // 1-based sheet columns
	}{
		{key: func(i int) string { return rows[i].detailKey }, cols: []int{1, 7, 8, 9, 10, 11}},
		{key: func(i int) string { return rows[i].outcomeKey }, cols: []int{2, 6}},
		{key: func(i int) string { return rows[i].evidenceKey }, cols: []int{3}},
	}

	for _, level := range levels {
		for _, run := range ContiguousRuns(len(rows), level.key) {
			if run.Start == run.End {
				continue
			}
			for _, col := range level.cols {
				top, err := excelize.CoordinatesToCellName(col, firstDataRow+run.Start)
				if err != nil {
					return err
				}
				bottom, err := excelize.CoordinatesToCellName(col, firstDataRow+run.End)
				if err != nil {
					return err
				}
				if err := f.MergeCell(exportSheet, top, bottom); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
