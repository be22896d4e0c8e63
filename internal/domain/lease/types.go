package lease

type Status string

const (
	StatusCreated   Status = "created"
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
	StatusError     Status = "error"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusActive, StatusCancelled, StatusExpired, StatusError:
		return true
	default:
		return false
	}
}

// Holds reports whether a lease in this status occupies its window.
func (s Status) Holds() bool {
	return s == StatusCreated || s == StatusActive
}

// HoldingStatuses are the statuses that block other reservations.
var HoldingStatuses = []Status{StatusCreated, StatusActive}

func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusExpired
}
