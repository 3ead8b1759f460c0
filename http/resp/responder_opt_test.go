package resp

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchbacklabs/switchback/http/negotiate"
	"github.com/switchbacklabs/switchback/http/template/templatetest"
	"github.com/switchbacklabs/switchback/logger"
)

func TestResponderWithAcceptMap(t *testing.T) {
	expected := negotiate.NewAcceptMap(map[string]string{"application/vnd.api+json": "json"})
	d := NewResponder(WithAcceptMap(expected))
	require.Equal(t, expected, d.accepts)
}

func TestResponderWithCharset(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		d := NewResponder()
		require.Equal(t, defaultCharset, d.charset)
	})

	t.Run("Zero-Value", func(t *testing.T) {
		d := NewResponder(WithCharset(""))
		require.Equal(t, defaultCharset, d.charset)
	})

	t.Run("Custom", func(t *testing.T) {
		d := NewResponder(WithCharset("iso-8859-1"))
		require.Equal(t, "iso-8859-1", d.charset)
	})
}

func TestResponderWithLogger(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := log.New(b, "", log.LstdFlags)
	ll := logger.New(logger.WithLogger(l))
	d := NewResponder(WithLogger(ll))

	msg := "unit testing is fun!"

	// Act
	d.logger.Info(msg, nil)

	// Assert
	actual := b.String()
	require.Contains(t, actual, "[INFO]")
	require.Contains(t, actual, "responder_opt_test.go")
	require.Contains(t, actual, msg)
}

func TestResponderWithRenderer(t *testing.T) {
	re := templatetest.NewRenderer()
	d := NewResponder(WithRenderer(re))
	require.Equal(t, re, d.renderer)
}

func TestResponderWithStrategy(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		d := NewResponder()
		require.Equal(t, negotiate.BestMatch().Fallback(), d.strategy.Fallback())
	})

	t.Run("Nil", func(t *testing.T) {
		d := NewResponder(WithStrategy(nil))
		require.Equal(t, negotiate.BestMatch().Fallback(), d.strategy.Fallback())
	})

	t.Run("Custom", func(t *testing.T) {
		d := NewResponder(WithStrategy(negotiate.PathExtension()))
		require.Equal(t, negotiate.PathExtension(), d.strategy)
	})
}

func TestResponderWithVary(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		d := NewResponder()
		require.False(t, d.vary)
	})

	t.Run("Set", func(t *testing.T) {
		d := NewResponder(WithVary())
		require.True(t, d.vary)
	})
}
