package contestdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate(t *testing.T) {
	g := NewGate()

	assert.False(t, g.Closed())

	// Only the first Close performs the transition.
	assert.True(t, g.Close())
	assert.False(t, g.Close())
	assert.True(t, g.Closed())

	g.Reopen()
	assert.False(t, g.Closed())
	assert.True(t, g.Close())
}
