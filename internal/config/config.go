package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"galaxy-rl/internal/component"
)

//go:embed schema.json
var schemaJSON string

// ErrInvalid marks a config that passed the schema but is inconsistent.
var ErrInvalid = errors.New("invalid config")

// Config describes one scenario: the grid, the agent, both factions and the
// episode length.
type Config struct {
	Seed      int64     `yaml:"seed"` // 0 picks a time-based seed
	Grid      Grid      `yaml:"grid"`
	Asteroids Asteroids `yaml:"asteroids"`
	Agent     Agent     `yaml:"agent"`
	Hostile   Faction   `yaml:"hostile"`
	Neutral   Faction   `yaml:"neutral"`
	Episode   Episode   `yaml:"episode"`
	Trace     Trace     `yaml:"trace"`
	Log       Log       `yaml:"log"`
}

type Cell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Position converts the cell to a grid position.
func (c Cell) Position() component.Position {
	return component.Position{Row: c.Row, Col: c.Col}
}

type Grid struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type Asteroids struct {
	Density float64 `yaml:"density"`
	Cells   []Cell  `yaml:"cells"`
}

type Agent struct {
	Start Cell `yaml:"start"`
}

type Faction struct {
	Count        int    `yaml:"count"`
	VisionRadius int    `yaml:"vision_radius"`
	MoveEvery    int    `yaml:"move_every"`
	Policy       string `yaml:"policy"`
}

// Mode maps the policy name onto an AI mode.
func (f Faction) Mode() component.AIMode {
	if f.Policy == "deterministic" {
		return component.ModeDeterministic
	}
	return component.ModeStochastic
}

type Episode struct {
	MaxTicks int `yaml:"max_ticks"`
}

type Trace struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // empty means the user data directory
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default is the stock scenario: a 10x10 sector, three ships per faction.
func Default() Config {
	return Config{
		Grid:    Grid{Rows: 10, Cols: 10},
		Agent:   Agent{Start: Cell{Row: 5, Col: 5}},
		Hostile: Faction{Count: 3, VisionRadius: 3, MoveEvery: 2, Policy: "stochastic"},
		Neutral: Faction{Count: 3, VisionRadius: 5, MoveEvery: 2, Policy: "stochastic"},
		Episode: Episode{MaxTicks: 200},
		Log:     Log{Level: "info", Format: "text"},
	}
}

// Load reads and parses a scenario file.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates raw YAML against the scenario schema and decodes it over
// Default, so omitted keys keep their stock values.
func Parse(raw []byte) (Config, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}
	if doc != nil {
		if err := validateSchema(doc); err != nil {
			return Config{}, err
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks what the schema cannot express.
func (c Config) Validate() error {
	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		return fmt.Errorf("grid %dx%d: %w", c.Grid.Rows, c.Grid.Cols, ErrInvalid)
	}
	start := c.Agent.Start
	if start.Row < 0 || start.Row >= c.Grid.Rows || start.Col < 0 || start.Col >= c.Grid.Cols {
		return fmt.Errorf("agent start (%d,%d) outside %dx%d grid: %w",
			start.Row, start.Col, c.Grid.Rows, c.Grid.Cols, ErrInvalid)
	}
	for name, f := range map[string]Faction{"hostile": c.Hostile, "neutral": c.Neutral} {
		if f.MoveEvery < 1 {
			return fmt.Errorf("%s move_every %d: %w", name, f.MoveEvery, ErrInvalid)
		}
		if f.VisionRadius < 0 || f.Count < 0 {
			return fmt.Errorf("%s faction %+v: %w", name, f, ErrInvalid)
		}
	}
	if c.Episode.MaxTicks < 1 {
		return fmt.Errorf("episode max_ticks %d: %w", c.Episode.MaxTicks, ErrInvalid)
	}
	return nil
}

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("config.schema.json", schemaJSON)
})

// validateSchema checks a decoded YAML document against the embedded schema.
// The document goes through a JSON round trip so every number reaches the
// validator as a float64.
func validateSchema(doc any) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config is not a plain mapping: %w", err)
	}
	var inst any
	if err := json.Unmarshal(js, &inst); err != nil {
		return err
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
