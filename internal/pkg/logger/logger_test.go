package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"delegacia/internal/pkg/logger"
)

func TestLogger_WritesFieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.New(zap.New(core))

	log.Info("agente criado", map[string]interface{}{"id": 7})
	log.Error("falha no DB", errors.New("conexão recusada"))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "agente criado", entries[0].Message)
	assert.EqualValues(t, 7, entries[0].ContextMap()["id"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "conexão recusada", entries[1].ContextMap()["error"])
}

func TestLogger_WithAddsFixedFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.New(zap.New(core)).With(map[string]interface{}{"request_id": "abc"})

	log.Debug("descartado pelo nível", nil)
	log.Warn("aviso", map[string]interface{}{"path": "/casos"})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "/casos", entries[0].ContextMap()["path"])
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	assert.NotPanics(t, func() {
		log := logger.NewLogger("verbose")
		log.Info("ok", nil)
	})
}
