package utility

import (
	"github.com/google/uuid"
)

type ExecutionID = uuid.UUID

// NewExecutionID returns a time ordered identifier, so reports produced by one
// batch sort in creation order.
func NewExecutionID() ExecutionID {
	return uuid.Must(uuid.NewV7())
}

func ParseExecutionID(s string) (ExecutionID, error) {
	return uuid.Parse(s)
}
