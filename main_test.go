package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func TestDemo(t *testing.T) {
	t.Run("full depth plays to a draw", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, demo(&out, 9))

		require.True(t, strings.HasSuffix(out.String(), "result: draw\n"))
		require.Equal(t, 10, strings.Count(out.String(), ",-----,"), "Empty board and one board per move")
	})

	t.Run("zero depth reports no result", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, demo(&out, 0))

		require.NotContains(t, out.String(), "result:")
		require.Equal(t, 1, strings.Count(out.String(), ",-----,"))
	})
}
