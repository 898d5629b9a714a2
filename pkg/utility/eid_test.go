package utility

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtilityExecutionID_New(t *testing.T) {
	a := NewExecutionID()
	b := NewExecutionID()

	assert.NotEqual(t, a, b)
	assert.Equal(t, uuid.Version(7), a.Version())
	assert.LessOrEqual(t, a.String(), b.String())
}

func TestUtilityExecutionID_Parse(t *testing.T) {
	id := NewExecutionID()

	parsed, err := ParseExecutionID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseExecutionID("not-a-uuid")
	assert.Error(t, err)
}
