package borrow

type Status string

const (
	StatusActive   Status = "active"
	StatusReturned Status = "returned"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusReturned:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}
