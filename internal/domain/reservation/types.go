package reservation

type Status string

const (
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status can never change again. Holds are
// never resurrected; a new add-to-cart creates a new hold.
func (s Status) IsTerminal() bool {
	return s == StatusExpired || s == StatusCompleted
}
