package trigo

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat_String(t *testing.T) {
	require.Equal(t, "1.5rd", Rad(1.5).String())
	require.Equal(t, "90°", Deg(90.0).String())
	require.Equal(t, "-0.25rd", Rad(-0.25).String())

	t.Run("float32", func(t *testing.T) {
		require.Equal(t, "1.5rd", Rad[float32](1.5).String())
		require.Equal(t, "0.1°", Deg[float32](0.1).String())
	})
}

func TestFormat_Verbs(t *testing.T) {
	require.Equal(t, "1.5rd", fmt.Sprintf("%v", Rad(1.5)))
	require.Equal(t, "90°", fmt.Sprintf("%s", Deg(90.0)))
	require.Equal(t, "90.00°", fmt.Sprintf("%.2f", Deg(90.0)))
	require.Equal(t, "1.500rd", fmt.Sprintf("%.3f", Rad(1.5)))
	require.Equal(t, "  90°", fmt.Sprintf("%4.0f", Deg(90.0)))
}

func TestFormat_Streaming(t *testing.T) {
	var sb strings.Builder
	_, err := fmt.Fprint(&sb, Rad(1.5))
	require.NoError(t, err)
	require.Equal(t, Rad(1.5).String(), sb.String())
}

func TestFormat_MarshalText(t *testing.T) {
	b, err := Rad(1.5).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "1.5rd", string(b))

	b, err = Deg(90.0).AppendText([]byte("angle: "))
	require.NoError(t, err)
	require.Equal(t, "angle: 90°", string(b))
}
