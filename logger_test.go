package gridkit_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	l := gridkit.Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger_RoutesAndRestores(t *testing.T) {
	var buf bytes.Buffer
	gridkit.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	gridkit.Logger().Warn("dimension mismatch", "want", 3)
	assert.Contains(t, buf.String(), "dimension mismatch")

	gridkit.SetLogger(nil)
	buf.Reset()
	gridkit.Logger().Warn("dropped")
	assert.Empty(t, buf.String())
}
