// internals/features/curriculum/planner/service/errors.go
package service

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
)

var (
	ErrPlannerNotFound         = errors.New("planner not found")
	ErrLearningOutcomeNotFound = errors.New("learning outcome not found")
	ErrDetailNotFound          = errors.New("planner detail not found")

	ErrWeightBelowMinimum  = errors.New("each evaluation weight must be at least 1%")
	ErrWeightSumExceeded   = errors.New("evaluation weight sum exceeds 100%")
	ErrWeightCountMismatch = errors.New("evaluation weight count does not match declared instrument count")
)

// ReferentialViolationError aborts the whole reconciliation: a course outcome
// outside the planner's subject must never become linkable.
type ReferentialViolationError struct {
	CourseOutcomeID int
	SubjectID       int
}

func (e *ReferentialViolationError) Error() string {
	return fmt.Sprintf("course outcome %d does not belong to subject %d", e.CourseOutcomeID, e.SubjectID)
}

// IsTransient reports whether the failure is a store-availability problem the
// caller may retry, as opposed to a payload problem.
func IsTransient(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, driver.ErrBadConn)
}
