// internals/features/curriculum/planner/service/detail_input.go
package service

// DetailInput is the parsed create/update payload for one detail row. The
// nesting encodes the positional correspondence of the wire payload: the Nth
// course outcome owns the Nth evidence-type group, and each evidence type its
// own instrument list.
type DetailInput struct {
	EvaluationWeights []float64
	FeedbackStrategy  string
	FeedbackWeek      string
	PeriodCut         int
	ActivityWeeks     string
	PlannerID         int
	LearningOutcomeID int
	CourseOutcomes    []CourseOutcomeSelection
	ThematicUnitIDs   []int
}

type CourseOutcomeSelection struct {
	CourseOutcomeID int
	EvidenceTypes   []EvidenceTypeSelection
}

type EvidenceTypeSelection struct {
	EvidenceTypeID int
	InstrumentIDs  []int
}

// DeclaredInstrumentCount is the total number of instrument ids in the
// payload, the alignment basis for EvaluationWeights.
func (in DetailInput) DeclaredInstrumentCount() int {
	n := 0
	for _, co := range in.CourseOutcomes {
		for _, et := range co.EvidenceTypes {
			n += len(et.InstrumentIDs)
		}
	}
	return n
}

// DetailLinks are the persisted association sets of one detail row, in
// creation order.
type DetailLinks struct {
	CourseOutcomeIDs []int `json:"course_outcome_ids"`
	EvidenceTypeIDs  []int `json:"evidence_type_ids"`
	InstrumentIDs    []int `json:"instrument_ids"`
	ThematicUnitIDs  []int `json:"thematic_unit_ids"`
}
