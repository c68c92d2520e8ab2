package domain

import (
	"encoding/json"
	"fmt"
)

// Step is a stage of the transfer flow.
type Step int

// Steps of the transfer flow in pipeline order.
const (
	StepInputAmount Step = iota
	StepInitial
	StepReview
	StepAuthorize
	StepStatus
)

var stepNames = map[Step]string{
	StepInputAmount: "inputAmount",
	StepInitial:     "initial",
	StepReview:      "review",
	StepAuthorize:   "authorize",
	StepStatus:      "status",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Step(%d)", int(s))
}

// ParseStep returns the step with the given name.
func ParseStep(name string) (Step, error) {
	for s, n := range stepNames {
		if n == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("unknown step %q", name)
}

// MarshalJSON encodes the step by name.
func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a step name.
func (s *Step) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}

	parsed, err := ParseStep(name)
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// TransferStatus is the sub-state of the status step.
type TransferStatus string

// Transfer statuses shown in the status step.
const (
	TransferStatusProgressing TransferStatus = "progressing"
	TransferStatusSuccess     TransferStatus = "success"
	TransferStatusFailed      TransferStatus = "failed"
)
