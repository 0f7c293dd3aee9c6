package integrationtests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bargeparse"
	"github.com/vk/bargeparse/internal/testutil"
)

func TestInvocation_PositionalsAndFlags(t *testing.T) {
	// Arrange
	type args struct {
		Source string
		Dest   string
		Limit  int `kind:"keyword" default:"10"`
	}
	var got args
	cmd := testutil.MustCommand(t, func(a args) { got = a }, bargeparse.WithName("tool"))

	// Act
	res := testutil.RunCommand(t, cmd, "a.txt", "b.txt", "--limit", "5")

	// Assert
	require.NoError(t, res.Err)
	assert.Equal(t, args{Source: "a.txt", Dest: "b.txt", Limit: 5}, got)
}

func TestInvocation_DefaultsApply(t *testing.T) {
	type args struct {
		Source string
		Limit  int     `kind:"keyword" default:"10"`
		Rate   float64 `kind:"keyword" default:"1.5"`
		Mode   string  `kind:"positional" default:"fast"`
	}
	var got args
	cmd := testutil.MustCommand(t, func(a args) { got = a }, bargeparse.WithName("tool"))

	res := testutil.RunCommand(t, cmd, "a.txt")

	require.NoError(t, res.Err)
	assert.Equal(t, args{Source: "a.txt", Limit: 10, Rate: 1.5, Mode: "fast"}, got)
}

func TestInvocation_HandlerErrorPropagates(t *testing.T) {
	wantErr := assert.AnError
	cmd := testutil.MustCommand(t, func() error { return wantErr }, bargeparse.WithName("tool"))

	res := testutil.RunCommand(t, cmd)

	require.ErrorIs(t, res.Err, wantErr)
	assert.Equal(t, 1, res.ExitCode)
}

func TestInvocation_KebabCasedFlagNames(t *testing.T) {
	type args struct {
		OutputFile string `kind:"keyword" default:""`
	}
	var got args
	cmd := testutil.MustCommand(t, func(a args) { got = a }, bargeparse.WithName("tool"))

	res := testutil.RunCommand(t, cmd, "--output-file", "out.txt")

	require.NoError(t, res.Err)
	assert.Equal(t, "out.txt", got.OutputFile)
}
