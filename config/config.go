package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/entity"
)

// DefaultPath is the config file looked up when no -config flag is given
const DefaultPath = "road-fighter.ini"

// keysSection holds action = key bindings, read as a free-form map
const keysSection = "Keys"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the ini file layout, one struct per section
type Config struct {
	Game   GameConfig   `ini:"Game"`
	Assets AssetsConfig `ini:"Assets"`
	Audio  AudioConfig  `ini:"Audio"`
	Log    LogConfig    `ini:"Log"`

	// Keys maps action names to keys, see input.WithBindings
	Keys map[string]string `ini:"-"`
}

type GameConfig struct {
	TickDelay      time.Duration `ini:"TickDelay"`
	EndedTickDelay time.Duration `ini:"EndedTickDelay"`
	DescentRule    string        `ini:"DescentRule"`
	Seed           int64         `ini:"Seed"` // 0 picks a time-based seed
	Track          string        `ini:"Track"`
	Width          int           `ini:"Width"`  // 0 fits the terminal
	Height         int           `ini:"Height"` // 0 fits the terminal
}

type AssetsConfig struct {
	Dir string `ini:"Dir"` // Empty uses the embedded assets
}

type AudioConfig struct {
	Enabled bool    `ini:"Enabled"`
	Volume  float64 `ini:"Volume"`
}

type LogConfig struct {
	Level  string `ini:"Level"`
	Format string `ini:"Format"`
	File   string `ini:"File"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			TickDelay:      constants.TickDelay,
			EndedTickDelay: constants.EndedTickDelay,
			DescentRule:    entity.DescentNone.String(),
			Track:          constants.DefaultTrack,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constants.DefaultMasterVolume,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   "road-fighter.log",
		},
		Keys: map[string]string{},
	}
}

// Load reads path over the defaults; a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := f.MapTo(cfg); err != nil {
		return nil, fmt.Errorf("map config %s: %w", path, err)
	}
	if f.HasSection(keysSection) {
		for k, v := range f.Section(keysSection).KeysHash() {
			cfg.Keys[k] = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path
func (c *Config) Save(path string) error {
	f := ini.Empty()
	if err := f.ReflectFrom(c); err != nil {
		return fmt.Errorf("reflect config: %w", err)
	}
	if len(c.Keys) > 0 {
		sec := f.Section(keysSection)
		for k, v := range c.Keys {
			sec.Key(k).SetValue(v)
		}
	}
	return f.SaveTo(path)
}

// Validate enforces value ranges
func (c *Config) Validate() error {
	if c.Game.TickDelay <= 0 {
		return fmt.Errorf("%w: Game.TickDelay must be positive, got %v", ErrInvalid, c.Game.TickDelay)
	}
	if c.Game.EndedTickDelay <= 0 {
		return fmt.Errorf("%w: Game.EndedTickDelay must be positive, got %v", ErrInvalid, c.Game.EndedTickDelay)
	}
	if _, ok := entity.ParseDescentRule(c.Game.DescentRule); !ok {
		return fmt.Errorf("%w: Game.DescentRule %q (want none or graduated)", ErrInvalid, c.Game.DescentRule)
	}
	if c.Game.Width < 0 || c.Game.Height < 0 {
		return fmt.Errorf("%w: Game.Width/Height must not be negative", ErrInvalid)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: Audio.Volume must be within 0..1, got %v", ErrInvalid, c.Audio.Volume)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: Log.Level: %v", ErrInvalid, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: Log.Format %q (want text or json)", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Descent returns the parsed descent rule; validation guarantees it is known
func (c *Config) Descent() entity.DescentRule {
	rule, _ := entity.ParseDescentRule(c.Game.DescentRule)
	return rule
}

// ResolveSeed returns the configured seed, or a time-based one when unset
func (c *Config) ResolveSeed() int64 {
	if c.Game.Seed != 0 {
		return c.Game.Seed
	}
	return time.Now().UnixNano()
}
