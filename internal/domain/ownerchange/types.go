package ownerchange

type Status string

const (
	StatusCreated   Status = "created"
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusActive, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) Pending() bool {
	return s == StatusCreated || s == StatusActive
}

var PendingStatuses = []Status{StatusCreated, StatusActive}

func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}
