package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesRoleAndCaller(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role")

	l.Info().Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "test-role", line["role"])
	assert.Equal(t, "hello", line["message"])
	assert.Contains(t, line["func"], "TestNewLogger_WritesRoleAndCaller")
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "ctx")

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	assert.Contains(t, buf.String(), "from ctx")
}

func TestFromRequest_UsesRequestContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "req")

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))
	FromRequest(r).Warn().Msg("from request")

	assert.Contains(t, buf.String(), "from request")
}

func TestGetChildLogger_DoesNotAffectParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "parent")

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})

	parent.Info().Msg("parent line")
	assert.NotContains(t, buf.String(), "trace_id")

	child.Info().Msg("child line")
	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}

func TestNop_DiscardsOutput(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error().Msg("ignored")
	})
}
