package notification

import (
	"fmt"

	"github.com/google/uuid"
)

type Kind string

const (
	KindJoin          Kind = "JOIN"
	KindNearThreshold Kind = "NEAR_THRESHOLD"
	KindCompleted     Kind = "COMPLETED"
	KindLeft          Kind = "LEFT"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindJoin, KindNearThreshold, KindCompleted, KindLeft:
		return true
	default:
		return false
	}
}

// Message is one delivery request addressed to a single user.
type Message struct {
	UserID uuid.UUID
	Kind   Kind
	Body   string
}

func JoinMessage(dealName string) string {
	return fmt.Sprintf("You joined the group deal %q.", dealName)
}

func NearThresholdMessage(dealName string, remaining int) string {
	if remaining == 1 {
		return fmt.Sprintf("Just 1 more participant and the group deal %q closes!", dealName)
	}
	return fmt.Sprintf("Just %d more participants and the group deal %q closes!", remaining, dealName)
}

func CompletedMessage(dealName string) string {
	return fmt.Sprintf("The group deal %q reached its target. Your order is on the way!", dealName)
}

func LeftMessage(dealName string) string {
	return fmt.Sprintf("You left the group deal %q. Your pending order was cancelled.", dealName)
}
