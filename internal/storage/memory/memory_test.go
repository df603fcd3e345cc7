package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	m := New()

	_, ok, err := m.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Save("one"))
	require.NoError(t, m.Save("two"))

	got, ok, err := m.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", got)
	assert.Equal(t, 2, m.Saves())
}

func TestMemory_SaveErrKeepsSnapshot(t *testing.T) {
	m := NewWithSnapshot("kept")
	m.SaveErr = errors.New("read-only")

	assert.ErrorIs(t, m.Save("lost"), m.SaveErr)

	got, _, _ := m.Load()
	assert.Equal(t, "kept", got)
	assert.Equal(t, 0, m.Saves())
}
