package workoutsvc

import (
	"context"

	"github.com/pkg/errors"

	"github.com/jmstudio/fitmanage/core"
)

// DummyService is a canned generator for development and tests. Set Fail to
// force the error path.
type DummyService struct {
	Fail bool
}

var _ core.PlanGenerator = (*DummyService)(nil)

func NewDummyService() *DummyService {
	return &DummyService{}
}

func (svc *DummyService) GeneratePlan(ctx context.Context, studentName, goal string) (string, error) {
	if svc.Fail {
		return "", errors.New("plan generator unavailable")
	}
	return "Weekly plan for " + studentName + " (" + goal + ")\n" +
		"Mon: squats 4x10, lunges 3x12\n" +
		"Wed: bench press 4x8, rows 4x10\n" +
		"Fri: deadlifts 4x6, planks 3x60s\n", nil
}
