package booking

type Step string

const (
	StepSearch       Step = "search"
	StepAvailability Step = "availability"
	StepDetails      Step = "details"
	StepConfirmation Step = "confirmation"
)

func (s Step) String() string {
	return string(s)
}

func (s Step) IsValid() bool {
	switch s {
	case StepSearch, StepAvailability, StepDetails, StepConfirmation:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusFailed:
		return true
	default:
		return false
	}
}
