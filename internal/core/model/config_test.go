package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartPolicy(t *testing.T) {
	policy, err := ParseStartPolicy(" Restart ")
	require.NoError(t, err)
	assert.Equal(t, StartRestart, policy)

	policy, err = ParseStartPolicy("ignore")
	require.NoError(t, err)
	assert.Equal(t, StartIgnore, policy)

	_, err = ParseStartPolicy("extend")
	assert.Error(t, err)
}

func TestNormalized(t *testing.T) {
	config := PomodoroConfig{Work: -time.Second, Break: 0}.Normalized()

	assert.Equal(t, DefaultPomodoroConfig(), config)

	custom := PomodoroConfig{Work: 8 * time.Second, Break: 3 * time.Second, StartPolicy: StartRestart}
	assert.Equal(t, custom, custom.Normalized())
}
