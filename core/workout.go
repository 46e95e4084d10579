package core

import "context"

// PlanGeneratorFallback is returned to the operator in place of a plan when
// the generative service fails. The failure is never propagated as an error.
const PlanGeneratorFallback = "Sorry, the workout plan could not be generated right now. " +
	"Check your connection or try again later."

// PlanGenerator is any service that can produce a Markdown workout plan for a
// student. A single attempt is made per call; no retries.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, studentName, goal string) (string, error)
}
