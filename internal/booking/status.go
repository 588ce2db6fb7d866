package booking

import "fmt"

type Status string

const (
	StatusUnconfirmed Status = "unconfirmed"
	StatusCheckedIn   Status = "checked-in"
	StatusCheckedOut  Status = "checked-out"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusUnconfirmed, StatusCheckedIn, StatusCheckedOut:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}

var allowedTransitions = map[Status]map[Status]bool{
	StatusUnconfirmed: {StatusCheckedIn: true},
	StatusCheckedIn:   {StatusCheckedOut: true},
	StatusCheckedOut:  {},
}

func CanTransition(from, to Status) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}
