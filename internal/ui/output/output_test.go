package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskmap/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR must disable styling")
}

func TestColorProfile_Detected(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "profile out of range")
}

func TestNew_WritesPlainUnderNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf)

	styled := out.String("rendered Taskfile.svg").Foreground(termenv.RGBColor("#D93025"))
	_, err := out.WriteString(styled.String())
	require.NoError(t, err)

	assert.Equal(t, "rendered Taskfile.svg", buf.String(), "Ascii profile must strip color codes")
}

func TestNew_NilWriterDefaultsToStderr(t *testing.T) {
	require.NotPanics(t, func() {
		_ = output.New(nil)
	})
}
