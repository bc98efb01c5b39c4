package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskmap/cmd/taskmap/commands"
	"go.trai.ch/taskmap/internal/app"
	"go.trai.ch/taskmap/internal/build"
)

type mockApp struct {
	runFunc func(ctx context.Context, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

// fakeLogger records the logging configuration applied by the CLI.
type fakeLogger struct {
	verbose bool
	json    bool
}

func (l *fakeLogger) Debug(_ string) {}
func (l *fakeLogger) Info(_ string)  {}
func (l *fakeLogger) Warn(_ string)  {}
func (l *fakeLogger) Error(_ error)  {}

func (l *fakeLogger) SetVerbose(enable bool) { l.verbose = enable }
func (l *fakeLogger) SetJSON(enable bool)    { l.json = enable }

func TestCommands_Root(t *testing.T) {
	t.Run("runs the pipeline by default", func(t *testing.T) {
		var capturedOpts app.RunOptions
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		cli.SetArgs([]string{})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.False(t, capturedOpts.Silent)
		assert.False(t, capturedOpts.Watch)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		cli.SetArgs([]string{"--silent", "--watch"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, capturedOpts.Silent)
		assert.True(t, capturedOpts.Watch)
	})

	t.Run("wires short flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		cli.SetArgs([]string{"-s", "-w"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, capturedOpts.Silent)
		assert.True(t, capturedOpts.Watch)
	})

	t.Run("surfaces pipeline failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) error {
				return errors.New("layout failed")
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		cli.SetArgs([]string{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "layout failed")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) error {
				panic("pipeline must not run")
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		cli.SetArgs([]string{"unexpected"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_LoggingFlags(t *testing.T) {
	t.Run("verbose enables debug logging", func(t *testing.T) {
		log := &fakeLogger{}
		cli := commands.New(&mockApp{}, log)
		cli.SetArgs([]string{"-v", "-s"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, log.verbose)
		assert.False(t, log.json)
	})

	t.Run("log-json switches the format", func(t *testing.T) {
		log := &fakeLogger{}
		cli := commands.New(&mockApp{}, log)
		cli.SetArgs([]string{"--log-json", "-s"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, log.json)
		assert.False(t, log.verbose)
	})

	t.Run("defaults leave the logger untouched", func(t *testing.T) {
		log := &fakeLogger{}
		cli := commands.New(&mockApp{}, log)
		cli.SetArgs([]string{"-s"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.False(t, log.verbose)
		assert.False(t, log.json)
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock, &fakeLogger{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "taskmap version")
	assert.Contains(t, buf.String(), build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	mock := &mockApp{
		runFunc: func(_ context.Context, _ app.RunOptions) error {
			panic("pipeline must not run")
		},
	}
	cli := commands.New(mock, &fakeLogger{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "taskmap version "+build.Version)
}
