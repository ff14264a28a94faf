package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, verbose := range []bool{true, false} {
		log, err := New(verbose)
		require.NoError(t, err, "verbose=%v", verbose)
		assert.NotNil(t, log)
	}
}

func TestNewNop_AcceptsAllCalls(t *testing.T) {
	log := NewNop()

	log.Debug("debug", String("k", "v"))
	log.Info("info", Int("n", 1))
	log.Warn("warn", Bool("b", true))
	log.Error("error", Error(assert.AnError))

	child := log.With(Strings("tags", []string{"a", "b"}))
	require.NotNil(t, child)
	child.Info("from child")

	assert.NoError(t, log.Sync())
}
