package integrationtests

import (
	"fmt"
	"net/netip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bargeparse"
	"github.com/vk/bargeparse/internal/testutil"
)

type endpoint struct {
	Host string
	Port string
}

func parseEndpoint(raw string) (endpoint, error) {
	host, port, ok := strings.Cut(raw, ":")
	if !ok {
		return endpoint{}, fmt.Errorf("want host:port, got %q", raw)
	}
	return endpoint{Host: host, Port: port}, nil
}

func TestFactory_ConvertsCustomType(t *testing.T) {
	type args struct {
		Target endpoint
	}
	var got args
	cmd := testutil.MustCommand(t, func(a args) { got = a },
		bargeparse.WithName("tool"),
		bargeparse.WithFactory(parseEndpoint))

	res := testutil.RunCommand(t, cmd, "db.local:5432")

	require.NoError(t, res.Err)
	assert.Equal(t, endpoint{Host: "db.local", Port: "5432"}, got.Target)
}

func TestFactory_FailureIsDiagnostic(t *testing.T) {
	type args struct {
		Target endpoint
	}
	cmd := testutil.MustCommand(t, func(args) {},
		bargeparse.WithName("tool"),
		bargeparse.WithFactory(parseEndpoint))

	res := testutil.RunCommand(t, cmd, "no-port")

	assert.Equal(t, 2, res.ExitCode)
	assert.Contains(t, res.Stderr, "tool: error: argument target:")
}

func TestFactory_AppliesToListElements(t *testing.T) {
	type args struct {
		Targets []endpoint `kind:"keyword" default:""`
	}
	var got args
	cmd := testutil.MustCommand(t, func(a args) { got = a },
		bargeparse.WithName("tool"),
		bargeparse.WithFactory(parseEndpoint))

	res := testutil.RunCommand(t, cmd, "--targets", "a:1", "b:2")

	require.NoError(t, res.Err)
	assert.Equal(t, []endpoint{{Host: "a", Port: "1"}, {Host: "b", Port: "2"}}, got.Targets)
}

func TestFactory_InheritedBySubcommands(t *testing.T) {
	type subArgs struct {
		Target endpoint
	}
	var got subArgs
	root := testutil.MustCommand(t, func() {},
		bargeparse.WithName("tool"),
		bargeparse.WithFactory(parseEndpoint))
	_, err := root.Subcommand(func(a subArgs) { got = a }, bargeparse.WithName("ping"))
	require.NoError(t, err)

	res := testutil.RunCommand(t, root, "ping", "db.local:5432")

	require.NoError(t, res.Err)
	assert.Equal(t, "db.local", got.Target.Host)
}

func TestTextUnmarshaler_UsedWithoutFactory(t *testing.T) {
	type args struct {
		Addr netip.Addr
	}
	var got args
	cmd := testutil.MustCommand(t, func(a args) { got = a }, bargeparse.WithName("tool"))

	res := testutil.RunCommand(t, cmd, "10.0.0.1")

	require.NoError(t, res.Err)
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), got.Addr)
}
