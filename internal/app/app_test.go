package app_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

type appMocks struct {
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

func newApp(t *testing.T) (*app.App, *appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &appMocks{
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
	return a, m
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestApp_Install_RegistersPrefix(t *testing.T) {
	a, m := newApp(t)
	prefix := t.TempDir()

	m.db.EXPECT().Linked(prefix).Return(nil, nil)
	m.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.host.EXPECT().RegisterEnv(prefix).Return(nil)
	m.host.EXPECT().TouchNonAdmin(prefix).Return(nil)

	plan, err := a.Install(context.Background(), []string{domain.ExplicitMarker}, prefix)
	require.NoError(t, err)
	assert.True(t, plan.Empty())
}

func TestApp_Install_HostHookFailureIsNotFatal(t *testing.T) {
	a, m := newApp(t)
	prefix := t.TempDir()

	m.db.EXPECT().Linked(prefix).Return(nil, nil)
	m.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.host.EXPECT().RegisterEnv(prefix).Return(assert.AnError)
	m.host.EXPECT().TouchNonAdmin(prefix).Return(assert.AnError)
	m.log.EXPECT().Warn(gomock.Any()).Times(2)

	_, err := a.Install(context.Background(), []string{domain.ExplicitMarker}, prefix)
	require.NoError(t, err)
}

func TestApp_Install_ExecutionFailureSkipsHooks(t *testing.T) {
	a, m := newApp(t)
	prefix := t.TempDir()

	m.db.EXPECT().Linked(prefix).Return(nil, nil)
	m.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

	_, err := a.Install(context.Background(), []string{domain.ExplicitMarker}, prefix)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestApp_InstallFile(t *testing.T) {
	a, m := newApp(t)
	prefix := t.TempDir()
	specPath := filepath.Join(t.TempDir(), "specs.txt")
	writeFile(t, specPath, "# platform: linux-64\n@EXPLICIT\n")

	m.db.EXPECT().Linked(prefix).Return(nil, nil)
	m.exec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.host.EXPECT().RegisterEnv(prefix).Return(nil)
	m.host.EXPECT().TouchNonAdmin(prefix).Return(nil)

	plan, err := a.InstallFile(context.Background(), specPath, prefix)
	require.NoError(t, err)
	assert.True(t, plan.Empty())
}

func TestApp_InstallFile_Missing(t *testing.T) {
	a, _ := newApp(t)

	_, err := a.InstallFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open specification file")
}

func TestApp_Clone_RegistersDestination(t *testing.T) {
	a, m := newApp(t)
	src, dst := t.TempDir(), filepath.Join(t.TempDir(), "copy")
	writeFile(t, filepath.Join(src, "share", "readme.txt"), "kept")

	m.db.EXPECT().Linked(src).Return(nil, nil).Times(2)
	m.channels.EXPECT().Collections("linux-64").Return(nil)
	m.sorter.EXPECT().Sort(gomock.Any(), gomock.Any()).Return(nil)
	plan := domain.NewPlan(dst)
	m.planner.EXPECT().EnsureLinked(gomock.Any(), dst).Return(plan, nil)
	m.exec.EXPECT().Execute(gomock.Any(), plan, gomock.Any()).Return(nil)
	m.host.EXPECT().RegisterEnv(dst).Return(nil)
	m.host.EXPECT().TouchNonAdmin(dst).Return(nil)

	got, untracked, err := a.Clone(context.Background(), src, dst)
	require.NoError(t, err)
	assert.Same(t, plan, got)
	assert.True(t, untracked.Has("share/readme.txt"))
	assert.FileExists(t, filepath.Join(dst, "share", "readme.txt"))
}

func TestApp_Clone_RefusesExistingPrefix(t *testing.T) {
	a, _ := newApp(t)

	_, _, err := a.Clone(context.Background(), t.TempDir(), t.TempDir())
	assert.ErrorIs(t, err, domain.ErrPrefixExists)
}

func TestApp_Untracked(t *testing.T) {
	a, m := newApp(t)
	prefix := t.TempDir()
	writeFile(t, filepath.Join(prefix, "share", "notes.txt"), "scratch")

	m.db.EXPECT().Linked(prefix).Return(nil, nil)

	got, err := a.Untracked(prefix, false)
	require.NoError(t, err)
	assert.True(t, got.Has("share/notes.txt"))
}

func TestApp_Which(t *testing.T) {
	a, m := newApp(t)
	prefix := t.TempDir()
	require.NoError(t, os.MkdirAll(domain.MetaDir(prefix), 0o750))
	target := filepath.Join(prefix, "bin", "tool")
	writeFile(t, target, "#!/bin/sh\n")

	m.db.EXPECT().Linked(prefix).Return([]domain.Dist{"toolkit-1.0-0"}, nil)
	m.db.EXPECT().Meta(prefix, domain.Dist("toolkit-1.0-0")).Return(&domain.PackageRecord{
		Name:  "toolkit",
		Files: []string{"bin/tool"},
	}, nil)

	gotPrefix, owners, err := a.Which(target)
	require.NoError(t, err)
	assert.Equal(t, prefix, gotPrefix)
	assert.Equal(t, []domain.Dist{"toolkit-1.0-0"}, owners)
}

func TestApp_Envs(t *testing.T) {
	a, m := newApp(t)

	m.host.EXPECT().ListPrefixes().Return([]string{"/opt/den/envs/science", "/opt/den"}, nil)

	got, err := a.Envs()
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/den/envs/science", "/opt/den"}, got)
}

func TestApp_ActivationEnv(t *testing.T) {
	a, m := newApp(t)

	m.host.EXPECT().ActivationEnv("/opt/den/envs/science").
		Return([]string{"PATH=/opt/den/envs/science/bin"})

	assert.Equal(t, []string{"PATH=/opt/den/envs/science/bin"}, a.ActivationEnv("/opt/den/envs/science"))
}
