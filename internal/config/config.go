package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"listgrip/internal/controller"
	"listgrip/internal/domain"
	"listgrip/internal/eventbus"
	"listgrip/internal/logic"
)

// EnvPrefix prefixes environment overrides, e.g. LISTGRIP_SELECTION_MULTI
const EnvPrefix = "LISTGRIP"

// Config represents the application configuration
type Config struct {
	Version   int             `toml:"version" mapstructure:"version"`
	LogFile   string          `toml:"log_file" mapstructure:"log_file"`
	Items     []string        `toml:"items,omitempty" mapstructure:"items"` // used when no items are given on the command line
	Selection SelectionConfig `toml:"selection" mapstructure:"selection"`
	UI        UISettings      `toml:"ui" mapstructure:"ui"`
}

// SelectionConfig holds the selection controller options
type SelectionConfig struct {
	Filter        string `toml:"filter" mapstructure:"filter"`
	Multi         bool   `toml:"multi" mapstructure:"multi"`
	MouseMode     string `toml:"mouse_mode" mapstructure:"mouse_mode"`
	Event         string `toml:"event" mapstructure:"event"`
	FocusBlur     bool   `toml:"focus_blur" mapstructure:"focus_blur"`
	SelectionBlur bool   `toml:"selection_blur" mapstructure:"selection_blur"`
	Handle        string `toml:"handle" mapstructure:"handle"`
	TextSelection bool   `toml:"text_selection" mapstructure:"text_selection"`
	Keyboard      bool   `toml:"keyboard" mapstructure:"keyboard"`
	AutoScroll    string `toml:"auto_scroll" mapstructure:"auto_scroll"`
	Loop          bool   `toml:"loop" mapstructure:"loop"`
	PreventInputs bool   `toml:"prevent_inputs" mapstructure:"prevent_inputs"`
	ListClass     string `toml:"list_class" mapstructure:"list_class"`
	FocusClass    string `toml:"focus_class" mapstructure:"focus_class"`
	SelectedClass string `toml:"selected_class" mapstructure:"selected_class"`
	DisabledClass string `toml:"disabled_class" mapstructure:"disabled_class"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelpFooter bool   `toml:"show_help_footer" mapstructure:"show_help_footer"`
	ShowCounter    bool   `toml:"show_counter" mapstructure:"show_counter"`
	PrintIDs       bool   `toml:"print_ids" mapstructure:"print_ids"`
	Sort           string `toml:"sort" mapstructure:"sort"` // input, label or id
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "listgrip", "config.toml")
}

// NewConfigService creates a config service for path, or for DefaultPath
// when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      eventbus.NullBus{},
		filePath: path,
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	if bus != nil {
		cs.bus = bus
	}
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults;
// environment overrides apply either way.
func (cs *configService) Load() (*Config, error) {
	cfg, err := load(cs.filePath, false)
	if err != nil {
		return nil, err
	}

	cs.bus.Publish(domain.ConfigLoadedEvent{
		Path:  cs.filePath,
		Items: len(cfg.Items),
	})
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	cs.bus.Publish(domain.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return load(path, true)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func load(path string, mustExist bool) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	} else if mustExist {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("log_file", d.LogFile)

	s := d.Selection
	v.SetDefault("selection.filter", s.Filter)
	v.SetDefault("selection.multi", s.Multi)
	v.SetDefault("selection.mouse_mode", s.MouseMode)
	v.SetDefault("selection.event", s.Event)
	v.SetDefault("selection.focus_blur", s.FocusBlur)
	v.SetDefault("selection.selection_blur", s.SelectionBlur)
	v.SetDefault("selection.handle", s.Handle)
	v.SetDefault("selection.text_selection", s.TextSelection)
	v.SetDefault("selection.keyboard", s.Keyboard)
	v.SetDefault("selection.auto_scroll", s.AutoScroll)
	v.SetDefault("selection.loop", s.Loop)
	v.SetDefault("selection.prevent_inputs", s.PreventInputs)
	v.SetDefault("selection.list_class", s.ListClass)
	v.SetDefault("selection.focus_class", s.FocusClass)
	v.SetDefault("selection.selected_class", s.SelectedClass)
	v.SetDefault("selection.disabled_class", s.DisabledClass)

	v.SetDefault("ui.show_help_footer", d.UI.ShowHelpFooter)
	v.SetDefault("ui.show_counter", d.UI.ShowCounter)
	v.SetDefault("ui.print_ids", d.UI.PrintIDs)
	v.SetDefault("ui.sort", d.UI.Sort)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	sel := FromOptions(controller.DefaultOptions())
	// the terminal host is keyboard driven
	sel.Keyboard = true

	return &Config{
		Version:   1,
		LogFile:   "listgrip.log",
		Selection: sel,
		UI: UISettings{
			ShowHelpFooter: true,
			ShowCounter:    true,
			Sort:           "input",
		},
	}
}

// FromOptions captures controller options for saving. Callbacks and filter
// functions are not representable and are dropped.
func FromOptions(o controller.Options) SelectionConfig {
	return SelectionConfig{
		Filter:        o.FilterQuery,
		Multi:         o.Multi,
		MouseMode:     string(o.MouseMode),
		Event:         string(o.Event),
		FocusBlur:     o.FocusBlur,
		SelectionBlur: o.SelectionBlur,
		Handle:        o.Handle,
		TextSelection: o.TextSelection,
		Keyboard:      o.Keyboard,
		AutoScroll:    o.AutoScroll,
		Loop:          o.Loop,
		PreventInputs: o.PreventInputs,
		ListClass:     o.ListClass,
		FocusClass:    o.FocusClass,
		SelectedClass: o.SelectedClass,
		DisabledClass: o.DisabledClass,
	}
}

// Options turns the configuration into controller options on top of base.
// Empty strings keep the base value.
func (s SelectionConfig) Options(base controller.Options) controller.Options {
	o := base
	o.Multi = s.Multi
	o.FocusBlur = s.FocusBlur
	o.SelectionBlur = s.SelectionBlur
	o.TextSelection = s.TextSelection
	o.Keyboard = s.Keyboard
	o.Loop = s.Loop
	o.PreventInputs = s.PreventInputs
	o.Handle = s.Handle
	o.AutoScroll = s.AutoScroll

	if q := strings.TrimSpace(s.Filter); q != "" {
		o.Filter, o.FilterQuery = logic.FilterFunc(q), q
	}
	if mode := strings.TrimSpace(s.MouseMode); mode != "" {
		o.MouseMode = controller.MouseMode(mode)
	}
	if ev := strings.TrimSpace(s.Event); ev != "" {
		o.Event = controller.Trigger(ev)
	}
	setString(&o.ListClass, s.ListClass)
	setString(&o.FocusClass, s.FocusClass)
	setString(&o.SelectedClass, s.SelectedClass)
	setString(&o.DisabledClass, s.DisabledClass)
	return o
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
