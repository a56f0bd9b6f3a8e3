// Package config loads editor defaults from a TOML file and server
// settings from the environment.
//
// Editor defaults control the geometry of newly created blocks and the
// output of the render commands. They live in an optional TOML file so a
// project can pin its own house style; missing files and missing keys
// fall back to the built-in defaults, which match the model package.
//
// Server settings (bind address, snapshot store backend) come from the
// environment with a BLOCKFORGE_ prefix.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/blockforge/blockforge/pkg/model"
)

// Editor holds the tunable defaults applied to newly created blocks and
// to rendering. Zero values mean "use the built-in default".
type Editor struct {
	BlockWidth       float64 `toml:"block_width"`
	BlockHeight      float64 `toml:"block_height"`
	HeaderHeight     float64 `toml:"header_height"`
	PortSectionWidth float64 `toml:"port_section_width"`
	Padding          float64 `toml:"padding"`
	ChildSpacing     float64 `toml:"child_spacing"`

	Render Render `toml:"render"`
}

// Render holds output options for the render commands.
type Render struct {
	Format     string `toml:"format"`
	Background string `toml:"background"`
}

// DefaultEditor returns the built-in editor defaults.
func DefaultEditor() Editor {
	return Editor{
		BlockWidth:       model.DefaultWidth,
		BlockHeight:      model.DefaultHeight,
		HeaderHeight:     model.DefaultHeaderHeight,
		PortSectionWidth: model.DefaultPortSectionWidth,
		Padding:          model.DefaultPadding,
		ChildSpacing:     model.DefaultChildSpacing,
		Render: Render{
			Format:     "svg",
			Background: "#fafafa",
		},
	}
}

// LoadEditor reads editor defaults from the TOML file at path, layered
// over the built-in defaults. A missing file is not an error: the
// built-in defaults are returned unchanged.
func LoadEditor(path string) (Editor, error) {
	cfg := DefaultEditor()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

// normalized replaces non-positive geometry values with the built-in
// defaults so a sparse config file never produces degenerate blocks.
func (e Editor) normalized() Editor {
	def := DefaultEditor()
	if e.BlockWidth <= 0 {
		e.BlockWidth = def.BlockWidth
	}
	if e.BlockHeight <= 0 {
		e.BlockHeight = def.BlockHeight
	}
	if e.HeaderHeight <= 0 {
		e.HeaderHeight = def.HeaderHeight
	}
	if e.PortSectionWidth <= 0 {
		e.PortSectionWidth = def.PortSectionWidth
	}
	if e.Padding <= 0 {
		e.Padding = def.Padding
	}
	if e.ChildSpacing <= 0 {
		e.ChildSpacing = def.ChildSpacing
	}
	if e.Render.Format == "" {
		e.Render.Format = def.Render.Format
	}
	if e.Render.Background == "" {
		e.Render.Background = def.Render.Background
	}
	return e
}

// Apply copies the editor geometry defaults onto a block. Used when
// creating blocks through the CLI so config-file overrides take effect.
func (e Editor) Apply(b *model.Block) {
	b.Width = e.BlockWidth
	b.Height = e.BlockHeight
	b.HeaderHeight = e.HeaderHeight
	b.PortSectionWidth = e.PortSectionWidth
	b.Padding = e.Padding
	b.ChildSpacing = e.ChildSpacing
}

// Server holds settings for the HTTP API server, read from the
// environment with the BLOCKFORGE_ prefix.
type Server struct {
	Addr     string `envconfig:"ADDR" default:"localhost:8321"`
	Store    string `envconfig:"STORE" default:"file"`
	StoreDir string `envconfig:"STORE_DIR" default:""`
	RedisURL string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	MongoURL string `envconfig:"MONGO_URL" default:"mongodb://localhost:27017"`
	MongoDB  string `envconfig:"MONGO_DB" default:"blockforge"`
}

// LoadServer reads server settings from BLOCKFORGE_-prefixed environment
// variables, falling back to the struct defaults.
func LoadServer() (Server, error) {
	var cfg Server
	if err := envconfig.Process("BLOCKFORGE", &cfg); err != nil {
		return cfg, fmt.Errorf("load server config: %w", err)
	}
	return cfg, nil
}
