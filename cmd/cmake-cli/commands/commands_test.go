package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rgreenblatt/cmake-cli/cmd/cmake-cli/commands"
	"github.com/rgreenblatt/cmake-cli/internal/app"
	"github.com/rgreenblatt/cmake-cli/internal/build"
	"github.com/rgreenblatt/cmake-cli/internal/core/domain"
	"github.com/rgreenblatt/cmake-cli/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	buildFunc           func(ctx context.Context, cfg domain.BuildConfig, opts app.BuildOptions) error
	compileCommandsFunc func(ctx context.Context, cfg domain.BuildConfig) error
	cleanFunc           func(ctx context.Context) error
	formatFunc          func(ctx context.Context) error
	stagedFormattedFunc func(ctx context.Context) error
	watchFunc           func(ctx context.Context, cfg domain.BuildConfig, opts app.BuildOptions) error
}

func (m *mockApp) Build(ctx context.Context, cfg domain.BuildConfig, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, cfg, opts)
	}
	return nil
}

func (m *mockApp) CompileCommands(ctx context.Context, cfg domain.BuildConfig) error {
	if m.compileCommandsFunc != nil {
		return m.compileCommandsFunc(ctx, cfg)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx)
	}
	return nil
}

func (m *mockApp) Format(ctx context.Context) error {
	if m.formatFunc != nil {
		return m.formatFunc(ctx)
	}
	return nil
}

func (m *mockApp) StagedFormatted(ctx context.Context) error {
	if m.stagedFormattedFunc != nil {
		return m.stagedFormattedFunc(ctx)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, cfg domain.BuildConfig, opts app.BuildOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, cfg, opts)
	}
	return nil
}

type stubLoader struct {
	defaults ports.Defaults
	err      error
}

func (s *stubLoader) Load(string) (ports.Defaults, error) {
	return s.defaults, s.err
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedCfg domain.BuildConfig
		var capturedOpts app.BuildOptions
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, cfg domain.BuildConfig, opts app.BuildOptions) error {
				capturedCfg = cfg
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{
			"build", "--release", "--ccache", "-j", "4", "-k",
			"--target", "install", "--gen-args", "-DFOO=1",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, domain.BuildTypeRelWithDebInfo, capturedCfg.BuildType)
		assert.Equal(t, "build/release", capturedCfg.Directory)
		assert.True(t, capturedCfg.CCache)
		assert.Equal(t, 4, capturedCfg.Threads)
		assert.True(t, capturedCfg.KeepGoing)
		assert.Equal(t, "-DFOO=1", capturedCfg.GenArgs)
		assert.Equal(t, []string{"--target", "install"}, capturedOpts.ExtraBuildArgs)
	})

	t.Run("defaults to a debug tree", func(t *testing.T) {
		var capturedCfg domain.BuildConfig
		mock := &mockApp{
			buildFunc: func(_ context.Context, cfg domain.BuildConfig, _ app.BuildOptions) error {
				capturedCfg = cfg
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"build"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.BuildTypeDebug, capturedCfg.BuildType)
		assert.Equal(t, "build/debug", capturedCfg.Directory)
		assert.Equal(t, domain.TristateUnset, capturedCfg.TestBuilding)
		assert.False(t, capturedCfg.CCache)
		assert.False(t, capturedCfg.Paginate)
	})

	t.Run("release without debug info", func(t *testing.T) {
		var capturedCfg domain.BuildConfig
		mock := &mockApp{
			buildFunc: func(_ context.Context, cfg domain.BuildConfig, _ app.BuildOptions) error {
				capturedCfg = cfg
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"build", "--release", "--no-debug-info"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.BuildTypeRelease, capturedCfg.BuildType)
	})

	t.Run("debug without debug info is fatal", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ domain.BuildConfig, _ app.BuildOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build", "--debug", "--no-debug-info"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrDebugWithoutDebugInfo)
	})

	t.Run("no-pager wins over pager", func(t *testing.T) {
		var capturedCfg domain.BuildConfig
		mock := &mockApp{
			buildFunc: func(_ context.Context, cfg domain.BuildConfig, _ app.BuildOptions) error {
				capturedCfg = cfg
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"build", "-p", "-P"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.False(t, capturedCfg.Paginate)
	})

	t.Run("build testing tristate", func(t *testing.T) {
		var capturedCfg domain.BuildConfig
		mock := &mockApp{
			buildFunc: func(_ context.Context, cfg domain.BuildConfig, _ app.BuildOptions) error {
				capturedCfg = cfg
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"build", "--no-build-testing"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.TristateOff, capturedCfg.TestBuilding)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ domain.BuildConfig, _ app.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"build"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_CompileCommands(t *testing.T) {
	var capturedCfg domain.BuildConfig
	mock := &mockApp{
		compileCommandsFunc: func(_ context.Context, cfg domain.BuildConfig) error {
			capturedCfg = cfg
			return nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"compile-commands"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "build/compile_commands_dir", capturedCfg.Directory)
	assert.Equal(t, domain.BuildTypeDebug, capturedCfg.BuildType)
}

func TestCommands_CleanAndFormat(t *testing.T) {
	cleanCalled := false
	formatCalled := false
	stagedCalled := false

	mock := &mockApp{
		cleanFunc:           func(context.Context) error { cleanCalled = true; return nil },
		formatFunc:          func(context.Context) error { formatCalled = true; return nil },
		stagedFormattedFunc: func(context.Context) error { stagedCalled = true; return nil },
	}

	cli := commands.New(mock, nil)

	for _, args := range [][]string{{"clean"}, {"format"}, {"staged-is-formatted"}} {
		cli.SetArgs(args)
		require.NoError(t, cli.Execute(context.Background()))
	}

	assert.True(t, cleanCalled)
	assert.True(t, formatCalled)
	assert.True(t, stagedCalled)
}

func TestCommands_ProjectDefaults(t *testing.T) {
	t.Run("applies file defaults to unset flags", func(t *testing.T) {
		generator := domain.GeneratorMakefiles
		threads := 2
		loader := &stubLoader{defaults: ports.Defaults{
			Generator: &generator,
			Threads:   &threads,
		}}

		var capturedCfg domain.BuildConfig
		mock := &mockApp{
			buildFunc: func(_ context.Context, cfg domain.BuildConfig, _ app.BuildOptions) error {
				capturedCfg = cfg
				return nil
			},
		}

		cli := commands.New(mock, loader)
		cli.SetArgs([]string{"build"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.GeneratorMakefiles, capturedCfg.Generator)
		assert.Equal(t, 2, capturedCfg.Threads)
	})

	t.Run("explicit flags beat file defaults", func(t *testing.T) {
		generator := domain.GeneratorMakefiles
		loader := &stubLoader{defaults: ports.Defaults{Generator: &generator}}

		var capturedCfg domain.BuildConfig
		mock := &mockApp{
			buildFunc: func(_ context.Context, cfg domain.BuildConfig, _ app.BuildOptions) error {
				capturedCfg = cfg
				return nil
			},
		}

		cli := commands.New(mock, loader)
		cli.SetArgs([]string{"build", "--generator", "Xcode"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "Xcode", capturedCfg.Generator)
	})

	t.Run("malformed defaults file is fatal", func(t *testing.T) {
		loader := &stubLoader{err: errors.New("yaml: bad")}

		cli := commands.New(&mockApp{}, loader)
		cli.SetArgs([]string{"build"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "yaml: bad")
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
