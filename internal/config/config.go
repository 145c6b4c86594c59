// Package config loads game settings: the embedded defaults, optionally
// overridden by a user YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"belsin/assets"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Seed     int64           `yaml:"seed"`
	Map      MapConfig       `yaml:"map"`
	Player   ActorTemplate   `yaml:"player"`
	Monsters []ActorTemplate `yaml:"monsters"`
	Items    []ItemTemplate  `yaml:"items"`
	Spawn    SpawnConfig     `yaml:"spawn"`
	UI       UIConfig        `yaml:"ui"`
	Log      LogConfig       `yaml:"log"`
}

// MapConfig sizes the level and drives the BSP generator.
type MapConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	MinLeaf     int    `yaml:"min_leaf"`
	MaxLeaf     int    `yaml:"max_leaf"`
	MinRoom     int    `yaml:"min_room"`
	RoomPadding int    `yaml:"room_padding"`
	Corridor    string `yaml:"corridor"` // l, z or straight
}

// ActorTemplate describes the player or a monster kind.
type ActorTemplate struct {
	Name        string `yaml:"name"`
	Glyph       string `yaml:"glyph"`
	Color       string `yaml:"color"`
	RenderOrder int    `yaml:"render_order"`
	MaxHP       int    `yaml:"max_hp"`
	Defense     int    `yaml:"defense"`
	Power       int    `yaml:"power"`
	Sight       int    `yaml:"sight"`
}

// ItemTemplate describes an item kind. HealAmount > 0 makes it drinkable;
// a non-empty Slot makes it equippable. Both may be set.
type ItemTemplate struct {
	Name        string `yaml:"name"`
	Glyph       string `yaml:"glyph"`
	Color       string `yaml:"color"`
	RenderOrder int    `yaml:"render_order"`
	HealAmount  int    `yaml:"heal_amount"`
	Slot        string `yaml:"slot"`
}

type SpawnEntry struct {
	Name     string `yaml:"name"`
	Weight   int    `yaml:"weight"`
	PerDepth int    `yaml:"per_depth"`
}

// WeightAt returns the entry's weight on the given dungeon depth.
func (e SpawnEntry) WeightAt(depth int) int {
	return e.Weight + e.PerDepth*depth
}

type SpawnConfig struct {
	MaxMonsters int          `yaml:"max_monsters"`
	Table       []SpawnEntry `yaml:"table"`
}

type UIConfig struct {
	LogLines int `yaml:"log_lines"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Default returns the embedded configuration. It panics if the embedded
// document is broken, which is a build defect.
func Default() *Config {
	cfg, err := parse(assets.Defaults, nil)
	if err != nil {
		panic(fmt.Sprintf("embedded defaults: %v", err))
	}
	return cfg
}

// Load returns the defaults merged with the YAML file at path. An empty path
// yields the defaults alone. Keys present in the file override the defaults;
// lists are replaced wholesale.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parse(data, Default())
}

func parse(data []byte, base *Config) (*Config, error) {
	cfg := base
	if cfg == nil {
		cfg = &Config{}
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can build a playable level.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		bad("map size %dx%d must be positive", c.Map.Width, c.Map.Height)
	}
	if c.Map.MinLeaf <= 0 || c.Map.MaxLeaf < c.Map.MinLeaf {
		bad("map leaf sizes min=%d max=%d", c.Map.MinLeaf, c.Map.MaxLeaf)
	}
	if c.Map.MinRoom < 3 {
		bad("map min_room %d must be at least 3", c.Map.MinRoom)
	} else if c.Map.Width < c.Map.MinRoom+2 || c.Map.Height < c.Map.MinRoom+2 {
		bad("map size %dx%d cannot hold a walled %d-tile room", c.Map.Width, c.Map.Height, c.Map.MinRoom)
	}
	switch c.Map.Corridor {
	case "", "l", "z", "straight":
	default:
		bad("unknown corridor style %q", c.Map.Corridor)
	}

	if err := c.Player.check("player"); err != nil {
		bad("%v", err)
	}

	known := map[string]bool{}
	for i, m := range c.Monsters {
		if err := m.check(fmt.Sprintf("monsters[%d]", i)); err != nil {
			bad("%v", err)
		}
		known[m.Name] = true
	}
	for i, it := range c.Items {
		if it.Name == "" {
			bad("items[%d] has no name", i)
		}
		if utf8.RuneCountInString(it.Glyph) != 1 {
			bad("items[%d] glyph %q must be one character", i, it.Glyph)
		}
		switch it.Slot {
		case "", "weapon", "shield":
		default:
			bad("items[%d] unknown slot %q", i, it.Slot)
		}
		known[it.Name] = true
	}

	if c.Spawn.MaxMonsters < 0 {
		bad("spawn max_monsters %d is negative", c.Spawn.MaxMonsters)
	}
	for i, e := range c.Spawn.Table {
		if !known[e.Name] {
			bad("spawn table[%d] names unknown entity %q", i, e.Name)
		}
		if e.Weight < 0 || e.PerDepth < 0 {
			bad("spawn table[%d] has a negative weight", i)
		}
	}

	if c.UI.LogLines < 0 {
		bad("ui log_lines %d is negative", c.UI.LogLines)
	}
	return errors.Join(errs...)
}

func (a ActorTemplate) check(where string) error {
	switch {
	case a.Name == "":
		return fmt.Errorf("%s has no name", where)
	case utf8.RuneCountInString(a.Glyph) != 1:
		return fmt.Errorf("%s glyph %q must be one character", where, a.Glyph)
	case a.MaxHP <= 0:
		return fmt.Errorf("%s max_hp %d must be positive", where, a.MaxHP)
	case a.Sight < 0:
		return fmt.Errorf("%s sight %d is negative", where, a.Sight)
	}
	return nil
}

// Monster returns the monster template with the given name.
func (c *Config) Monster(name string) (ActorTemplate, bool) {
	for _, m := range c.Monsters {
		if m.Name == name {
			return m, true
		}
	}
	return ActorTemplate{}, false
}

// Item returns the item template with the given name.
func (c *Config) Item(name string) (ItemTemplate, bool) {
	for _, it := range c.Items {
		if it.Name == name {
			return it, true
		}
	}
	return ItemTemplate{}, false
}
