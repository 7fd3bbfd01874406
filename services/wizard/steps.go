package wizard

import (
	"fmt"
	"sort"

	"voyago/models"
)

// The step navigator only tracks position. Whether a step's prerequisites are
// satisfied is the caller's concern, checked before invoking a transition.

// advanceStep moves forward one step, clamped at the confirmation step.
func advanceStep(s *models.BookingState) {
	if s.CurrentStep < models.StepConfirmation {
		s.CurrentStep++
	}
}

// retreatStep moves back one step, clamped at step 1.
func retreatStep(s *models.BookingState) {
	if s.CurrentStep > models.StepDateParticipants {
		s.CurrentStep--
	}
}

// jumpToStep is an unconditional jump, used for direct navigation such as
// landing on the right view after a draft restore.
func jumpToStep(s *models.BookingState, n int) error {
	if n < models.StepDateParticipants || n > models.StepConfirmation {
		return NewValidationError(fmt.Sprintf("step %d is out of range", n))
	}
	s.CurrentStep = n
	return nil
}

// markStepComplete records step n as completed. Duplicate inserts are no-ops;
// the completed set never shrinks within a session.
func markStepComplete(s *models.BookingState, n int) error {
	if n < models.StepDateParticipants || n > models.StepConfirmation {
		return NewValidationError(fmt.Sprintf("step %d is out of range", n))
	}
	if s.HasCompleted(n) {
		return nil
	}
	s.CompletedSteps = append(s.CompletedSteps, n)
	sort.Ints(s.CompletedSteps)
	return nil
}
