package deal

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusCompleted Status = "COMPLETED"
	StatusExpired   Status = "EXPIRED"
	StatusInactive  Status = "INACTIVE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusCompleted, StatusExpired, StatusInactive:
		return true
	default:
		return false
	}
}

// AcceptsJoins is true only for OPEN; every other state is terminal for joins.
func (s Status) AcceptsJoins() bool {
	return s == StatusOpen
}
