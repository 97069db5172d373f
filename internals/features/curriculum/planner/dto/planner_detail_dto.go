// internals/features/curriculum/planner/dto/planner_detail_dto.go
package dto

import (
	"errors"
	"strconv"
	"strings"

	"planeador_backend/internals/features/curriculum/planner/model"
	"planeador_backend/internals/features/curriculum/planner/service"
)

var (
	ErrMalformedWeights = errors.New("malformed evaluation weights")
	ErrMalformedIDList  = errors.New("malformed id list")
	ErrArrayMismatch    = errors.New("association arrays are not positionally aligned")
)

// DetailRequest is the create/update payload for one planner detail row.
// Weights and the nested id lists arrive as comma-separated strings; the
// evidence-type list is parallel to course_outcome_ids and the instrument
// list is parallel to the flattened evidence-type sequence.
type DetailRequest struct {
	EvaluationWeights               string   `json:"evaluation_weights" validate:"required"`
	FeedbackStrategy                string   `json:"feedback_strategy" validate:"required,min=5,max=70"`
	FeedbackWeek                    string   `json:"feedback_week" validate:"required,min=7,max=20"`
	PeriodCut                       int      `json:"period_cut" validate:"required,min=1,max=4"`
	ActivityWeeks                   string   `json:"activity_weeks" validate:"required"`
	PlannerID                       int      `json:"planner_id" validate:"required,gt=0"`
	LearningOutcomeID               int      `json:"learning_outcome_id" validate:"required,gt=0"`
	CourseOutcomeIDs                []int    `json:"course_outcome_ids" validate:"required,min=1,dive,gt=0"`
	EvidenceTypeIDsPerCourseOutcome []string `json:"evidence_type_ids_per_course_outcome" validate:"required"`
	InstrumentIDsPerEvidenceType    []string `json:"instrument_ids_per_evidence_type" validate:"required"`
	ThematicUnitIDs                 []int    `json:"thematic_unit_ids" validate:"omitempty,dive,gt=0"`
}

// ToInput parses the comma-separated payload fields into the composer input,
// preserving the positional correspondence between the three levels.
func (r *DetailRequest) ToInput() (service.DetailInput, error) {
	weights, err := parseFloatCSV(r.EvaluationWeights)
	if err != nil {
		return service.DetailInput{}, ErrMalformedWeights
	}

	if len(r.EvidenceTypeIDsPerCourseOutcome) != len(r.CourseOutcomeIDs) {
		return service.DetailInput{}, ErrArrayMismatch
	}

	// Flatten-check first: the Mth evidence type (declaration order) owns the
	// Mth instrument group.
	evidenceGroups := make([][]int, len(r.EvidenceTypeIDsPerCourseOutcome))
	totalEvidence := 0
	for i, raw := range r.EvidenceTypeIDsPerCourseOutcome {
		ids, err := parseIntCSV(raw)
		if err != nil {
			return service.DetailInput{}, ErrMalformedIDList
		}
		evidenceGroups[i] = ids
		totalEvidence += len(ids)
	}
	if len(r.InstrumentIDsPerEvidenceType) != totalEvidence {
		return service.DetailInput{}, ErrArrayMismatch
	}

	in := service.DetailInput{
		EvaluationWeights: weights,
		FeedbackStrategy:  r.FeedbackStrategy,
		FeedbackWeek:      r.FeedbackWeek,
		PeriodCut:         r.PeriodCut,
		ActivityWeeks:     r.ActivityWeeks,
		PlannerID:         r.PlannerID,
		LearningOutcomeID: r.LearningOutcomeID,
		ThematicUnitIDs:   r.ThematicUnitIDs,
	}

	flatIdx := 0
	for i, courseOutcomeID := range r.CourseOutcomeIDs {
		sel := service.CourseOutcomeSelection{CourseOutcomeID: courseOutcomeID}
		for _, evidenceTypeID := range evidenceGroups[i] {
			instruments, err := parseIntCSV(r.InstrumentIDsPerEvidenceType[flatIdx])
			flatIdx++
			if err != nil {
				return service.DetailInput{}, ErrMalformedIDList
			}
			sel.EvidenceTypes = append(sel.EvidenceTypes, service.EvidenceTypeSelection{
				EvidenceTypeID: evidenceTypeID,
				InstrumentIDs:  instruments,
			})
		}
		in.CourseOutcomes = append(in.CourseOutcomes, sel)
	}

	return in, nil
}

type DetailResponse struct {
	ID                int       `json:"id"`
	EvaluationWeights []float64 `json:"evaluation_weights"`
	FeedbackStrategy  string    `json:"feedback_strategy"`
	FeedbackWeek      string    `json:"feedback_week"`
	PeriodCut         int       `json:"period_cut"`
	ActivityWeeks     string    `json:"activity_weeks"`
	PlannerID         int       `json:"planner_id"`
	LearningOutcomeID int       `json:"learning_outcome_id"`
	CourseOutcomeIDs  []int     `json:"course_outcome_ids"`
	EvidenceTypeIDs   []int     `json:"evidence_type_ids"`
	InstrumentIDs     []int     `json:"instrument_ids"`
	ThematicUnitIDs   []int     `json:"thematic_unit_ids"`
}

func NewDetailResponse(m *model.PlannerDetailModel, links service.DetailLinks) DetailResponse {
	return DetailResponse{
		ID:                m.ID,
		EvaluationWeights: []float64(m.EvaluationWeights),
		FeedbackStrategy:  m.FeedbackStrategy,
		FeedbackWeek:      m.FeedbackWeek,
		PeriodCut:         m.PeriodCut,
		ActivityWeeks:     m.ActivityWeeks,
		PlannerID:         m.PlannerID,
		LearningOutcomeID: m.LearningOutcomeID,
		CourseOutcomeIDs:  links.CourseOutcomeIDs,
		EvidenceTypeIDs:   links.EvidenceTypeIDs,
		InstrumentIDs:     links.InstrumentIDs,
		ThematicUnitIDs:   links.ThematicUnitIDs,
	}
}

func parseFloatCSV(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, ErrMalformedWeights
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseIntCSV(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.Atoi(p)
		if err != nil || v <= 0 {
			return nil, ErrMalformedIDList
		}
		out = append(out, v)
	}
	return out, nil
}
