package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() DetailRequest {
	return DetailRequest{
		EvaluationWeights:               "30, 30, 40",
		FeedbackStrategy:                "Retroalimentacion grupal en clase",
		FeedbackWeek:                    "Semana 8",
		PeriodCut:                       2,
		ActivityWeeks:                   "Semanas 4-7",
		PlannerID:                       1,
		LearningOutcomeID:               1,
		CourseOutcomeIDs:                []int{10, 20},
		EvidenceTypeIDsPerCourseOutcome: []string{"101,102", "201"},
		InstrumentIDsPerEvidenceType:    []string{"7", "8,9", "7"},
		ThematicUnitIDs:                 []int{1, 2},
	}
}

func TestToInputPositionalCorrespondence(t *testing.T) {
	r := validRequest()
	in, err := r.ToInput()
	require.NoError(t, err)

	assert.Equal(t, []float64{30, 30, 40}, in.EvaluationWeights)
	require.Len(t, in.CourseOutcomes, 2)

	// course outcome 10 owns the first evidence group, 20 the second
	assert.Equal(t, 10, in.CourseOutcomes[0].CourseOutcomeID)
	require.Len(t, in.CourseOutcomes[0].EvidenceTypes, 2)
	assert.Equal(t, 101, in.CourseOutcomes[0].EvidenceTypes[0].EvidenceTypeID)
	assert.Equal(t, []int{7}, in.CourseOutcomes[0].EvidenceTypes[0].InstrumentIDs)
	assert.Equal(t, 102, in.CourseOutcomes[0].EvidenceTypes[1].EvidenceTypeID)
	assert.Equal(t, []int{8, 9}, in.CourseOutcomes[0].EvidenceTypes[1].InstrumentIDs)

	assert.Equal(t, 20, in.CourseOutcomes[1].CourseOutcomeID)
	require.Len(t, in.CourseOutcomes[1].EvidenceTypes, 1)
	assert.Equal(t, 201, in.CourseOutcomes[1].EvidenceTypes[0].EvidenceTypeID)
	assert.Equal(t, []int{7}, in.CourseOutcomes[1].EvidenceTypes[0].InstrumentIDs)

	assert.Equal(t, 4, in.DeclaredInstrumentCount())
}

func TestToInputSwappedGroupsFollowPosition(t *testing.T) {
	r := validRequest()
	r.CourseOutcomeIDs = []int{20, 10}

	in, err := r.ToInput()
	require.NoError(t, err)

	// the groups do not move with the ids: position decides ownership
	assert.Equal(t, 20, in.CourseOutcomes[0].CourseOutcomeID)
	assert.Equal(t, 101, in.CourseOutcomes[0].EvidenceTypes[0].EvidenceTypeID)
	assert.Equal(t, 10, in.CourseOutcomes[1].CourseOutcomeID)
	assert.Equal(t, 201, in.CourseOutcomes[1].EvidenceTypes[0].EvidenceTypeID)
}

func TestToInputRejectsMisalignedArrays(t *testing.T) {
	r := validRequest()
	r.EvidenceTypeIDsPerCourseOutcome = []string{"101,102"}
	_, err := r.ToInput()
	assert.ErrorIs(t, err, ErrArrayMismatch)

	r = validRequest()
	r.InstrumentIDsPerEvidenceType = []string{"7", "8,9"}
	_, err = r.ToInput()
	assert.ErrorIs(t, err, ErrArrayMismatch)
}

func TestToInputRejectsMalformedLists(t *testing.T) {
	r := validRequest()
	r.EvaluationWeights = "30,,40"
	_, err := r.ToInput()
	assert.ErrorIs(t, err, ErrMalformedWeights)

	r = validRequest()
	r.EvaluationWeights = "30,abc"
	_, err = r.ToInput()
	assert.ErrorIs(t, err, ErrMalformedWeights)

	r = validRequest()
	r.EvidenceTypeIDsPerCourseOutcome = []string{"101,x", "201"}
	_, err = r.ToInput()
	assert.ErrorIs(t, err, ErrMalformedIDList)

	r = validRequest()
	r.InstrumentIDsPerEvidenceType = []string{"7", "0,9", "7"}
	_, err = r.ToInput()
	assert.ErrorIs(t, err, ErrMalformedIDList)
}

func TestToInputEmptyEvidenceGroup(t *testing.T) {
	r := validRequest()
	r.EvidenceTypeIDsPerCourseOutcome = []string{"101,102", ""}
	r.InstrumentIDsPerEvidenceType = []string{"7", "8,9"}
	r.EvaluationWeights = "30,30,40"

	in, err := r.ToInput()
	require.NoError(t, err)
	assert.Empty(t, in.CourseOutcomes[1].EvidenceTypes)
	assert.Equal(t, 3, in.DeclaredInstrumentCount())
}
