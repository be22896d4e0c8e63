package offer

type Status string

const (
	StatusAvailable Status = "available"
	StatusClaimed   Status = "claimed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusClaimed, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// Blocks reports whether an offer in this status keeps its window from other
// offers, leases and owner changes on the resource.
func (s Status) Blocks() bool {
	return s == StatusAvailable
}

// Terminal statuses are final; an update cannot move an offer out of them.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusExpired
}
