package config

import (
	"os"
	"path/filepath"
	"testing"

	"listgrip/internal/controller"
	"listgrip/internal/domain"
	"listgrip/internal/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	bus := eventbus.New()
	var loaded []domain.ConfigLoadedEvent
	bus.Subscribe(domain.EventConfigLoaded, eventbus.Observe(func(e domain.DomainEvent) {
		loaded = append(loaded, e.(domain.ConfigLoadedEvent))
	}))
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := NewConfigServiceWithBus(path, bus).Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.Len(t, loaded, 1)
	assert.Equal(t, path, loaded[0].Path)
}

func TestSaveAndLoad(t *testing.T) {
	bus := eventbus.New()
	saved := 0
	bus.Subscribe(domain.EventConfigSaved, eventbus.Observe(func(domain.DomainEvent) { saved++ }))
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceWithBus(path, bus)

	cfg := DefaultConfig()
	cfg.Items = []string{"alpha", "beta"}
	cfg.Selection.MouseMode = "toggle"
	cfg.Selection.Loop = true
	cfg.UI.PrintIDs = true
	require.NoError(t, svc.Save(cfg))
	assert.Equal(t, 1, saved)

	got, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[selection]\nmulti = false\nevent = \"hybrid\"\n"), 0644))

	cfg, err := NewConfigService(path).Load()

	require.NoError(t, err)
	assert.False(t, cfg.Selection.Multi)
	assert.Equal(t, "hybrid", cfg.Selection.Event)
	assert.Equal(t, "selected", cfg.Selection.SelectedClass)
	assert.True(t, cfg.Selection.Keyboard)
	assert.Equal(t, "listgrip.log", cfg.LogFile)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LISTGRIP_SELECTION_LOOP", "true")
	t.Setenv("LISTGRIP_LOG_FILE", "/tmp/other.log")

	cfg, err := NewConfigService(filepath.Join(t.TempDir(), "config.toml")).Load()

	require.NoError(t, err)
	assert.True(t, cfg.Selection.Loop)
	assert.Equal(t, "/tmp/other.log", cfg.LogFile)
}

func TestLoadFromPath(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "config file not found")

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[selection\nmulti ="), 0644))
	_, err = svc.LoadFromPath(bad)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestSelectionConfigOptions(t *testing.T) {
	sel := DefaultConfig().Selection
	sel.Filter = "ap"
	sel.MouseMode = "toggle"
	sel.SelectedClass = "picked"
	sel.Event = ""

	o := sel.Options(controller.DefaultOptions())

	assert.Equal(t, controller.MouseToggle, o.MouseMode)
	assert.Equal(t, controller.TriggerMouseDown, o.Event, "empty values keep the base")
	assert.Equal(t, "picked", o.SelectedClass)
	assert.True(t, o.Keyboard)
	require.NotNil(t, o.Filter)
	assert.True(t, o.Filter(domain.NewItem("", "apple")))
	assert.False(t, o.Filter(domain.NewItem("", "cherry")))

	back := FromOptions(o)
	assert.Equal(t, "ap", back.Filter)
	assert.Equal(t, "picked", back.SelectedClass)
}
