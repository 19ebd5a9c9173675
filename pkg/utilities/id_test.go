package utilities

import (
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKSUID(t *testing.T) {
	a := NewKSUID()
	b := NewKSUID()

	assert.NotEqual(t, a, b)
	_, err := ksuid.Parse(a)
	require.NoError(t, err)
}

func TestNewSnowflakeID(t *testing.T) {
	a := NewSnowflakeID()
	b := NewSnowflakeID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
