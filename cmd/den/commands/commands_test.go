package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/den/cmd/den/commands"
	"go.trai.ch/den/internal/adapters/telemetry"
	"go.trai.ch/den/internal/app"
	"go.trai.ch/den/internal/core/domain"
	"go.trai.ch/den/internal/core/ports/mocks"
	"go.trai.ch/den/internal/engine/clone"
	"go.trai.ch/den/internal/engine/install"
	"go.trai.ch/den/internal/engine/locate"
	"go.trai.ch/den/internal/engine/reconcile"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	db       *mocks.MockPackageDB
	cache    *mocks.MockArchiveCache
	channels *mocks.MockChannelResolver
	index    *mocks.MockIndexClient
	hasher   *mocks.MockHasher
	sorter   *mocks.MockDependencySorter
	planner  *mocks.MockLinkPlanner
	exec     *mocks.MockPlanExecutor
	host     *mocks.MockHost
	log      *mocks.MockLogger
}

func newCLI(t *testing.T, cfg domain.Config) (*commands.CLI, *cliMocks, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &cliMocks{
		db:       mocks.NewMockPackageDB(ctrl),
		cache:    mocks.NewMockArchiveCache(ctrl),
		channels: mocks.NewMockChannelResolver(ctrl),
		index:    mocks.NewMockIndexClient(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		sorter:   mocks.NewMockDependencySorter(ctrl),
		planner:  mocks.NewMockLinkPlanner(ctrl),
		exec:     mocks.NewMockPlanExecutor(ctrl),
		host:     mocks.NewMockHost(ctrl),
		log:      mocks.NewMockLogger(ctrl),
	}
	m.log.EXPECT().Info(gomock.Any()).AnyTimes()

	recon := reconcile.New(m.db, domain.DefaultIgnoreConfig(runtime.GOOS))
	installer := install.New(m.db, m.cache, m.channels, m.index, m.hasher, m.exec, m.log)
	cloner := clone.New(recon, m.db, m.channels, m.index, m.sorter, m.planner, m.exec, m.log, "linux-64")
	locator := locate.New(m.db)
	a := app.New(installer, cloner, recon, locator, m.host, telemetry.NewNoOpTelemetry(), m.log)

	cli := commands.New(a, cfg)
	var out bytes.Buffer
	cli.SetOutput(&out)
	return cli, m, &out
}

func expectRegistered(m *cliMocks, prefix string) {
	m.host.EXPECT().RegisterEnv(prefix).Return(nil)
	m.host.EXPECT().TouchNonAdmin(prefix).Return(nil)
}

func TestInstall_NoArgsShowsHelp(t *testing.T) {
	cli, _, out := newCLI(t, domain.Config{})

	cli.SetArgs([]string{"install"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "Usage:")
}

func TestInstall_DefaultsToRootPrefix(t *testing.T) {
	root := t.TempDir()
	cli, m, out := newCLI(t, domain.Config{RootPrefix: root})

	m.db.EXPECT().Linked(root).Return(nil, nil)
	m.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	expectRegistered(m, root)

	cli.SetArgs([]string{"install", "@EXPLICIT"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "nothing to do")
	assert.Contains(t, out.String(), root)
}

func TestInstall_FromFile(t *testing.T) {
	prefix := t.TempDir()
	specPath := filepath.Join(t.TempDir(), "specs.txt")
	require.NoError(t, os.WriteFile(specPath, []byte("# platform: linux-64\n@EXPLICIT\n"), 0o644))
	cli, m, out := newCLI(t, domain.Config{})

	m.db.EXPECT().Linked(prefix).Return(nil, nil)
	m.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	expectRegistered(m, prefix)

	cli.SetArgs([]string{"install", "--prefix", prefix, "--file", specPath})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "nothing to do")
}

func TestClone_PrintsCounts(t *testing.T) {
	src, dst := t.TempDir(), filepath.Join(t.TempDir(), "copy")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "share"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(src, "share", "readme.txt"), []byte("kept"), 0o644))
	cli, m, out := newCLI(t, domain.Config{})

	m.db.EXPECT().Linked(src).Return(nil, nil).Times(2)
	m.channels.EXPECT().Collections("linux-64").Return(nil)
	m.sorter.EXPECT().Sort(gomock.Any(), gomock.Any()).Return(nil)
	m.planner.EXPECT().EnsureLinked(gomock.Any(), dst).Return(domain.NewPlan(dst), nil)
	m.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	expectRegistered(m, dst)

	cli.SetArgs([]string{"clone", src, dst})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "Packages: 0\nFiles: 1\n", out.String())
}

func TestUntracked_SortedOutput(t *testing.T) {
	prefix := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "share"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(prefix, "share", "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(prefix, "share", "a.txt"), []byte("a"), 0o644))
	cli, m, out := newCLI(t, domain.Config{})

	m.db.EXPECT().Linked(prefix).Return(nil, nil)

	cli.SetArgs([]string{"untracked", prefix})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "share/a.txt\nshare/b.txt\n", out.String())
}

func TestWhich_NotFound(t *testing.T) {
	prefix := t.TempDir()
	require.NoError(t, os.MkdirAll(domain.MetaDir(prefix), 0o750))
	target := filepath.Join(prefix, "bin", "tool")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o750))
	require.NoError(t, os.WriteFile(target, []byte("#!/bin/sh\n"), 0o644))
	cli, m, out := newCLI(t, domain.Config{})

	m.db.EXPECT().Linked(prefix).Return(nil, nil)

	cli.SetArgs([]string{"which", target})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "prefix: "+prefix)
	assert.Contains(t, out.String(), "package: not found")
}

func TestWhich_OutsideEnvironment(t *testing.T) {
	cli, _, _ := newCLI(t, domain.Config{})

	cli.SetArgs([]string{"which", filepath.Join(t.TempDir(), "loose.txt")})
	err := cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoEnvironment)
}

func TestEnvs(t *testing.T) {
	cli, m, out := newCLI(t, domain.Config{})

	m.host.EXPECT().ListPrefixes().Return([]string{"/opt/den/envs/science", "/opt/den"}, nil)

	cli.SetArgs([]string{"envs"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "/opt/den/envs/science\n/opt/den\n", out.String())
}

func TestVersion(t *testing.T) {
	cli, _, out := newCLI(t, domain.Config{})

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "den version dev")
}

func TestRoot_Help(t *testing.T) {
	cli, _, out := newCLI(t, domain.Config{})

	cli.SetArgs([]string{"--help"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "den")
}
