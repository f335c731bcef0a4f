// Package config loads gridpath settings from defaults, an optional YAML
// file and GRIDPATH_* environment variables, and validates them.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/logger"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the full application configuration.
type Config struct {
	Grid      GridConfig      `koanf:"grid"`
	Search    SearchConfig    `koanf:"search"`
	Animation AnimationConfig `koanf:"animation"`
	Log       logger.Config   `koanf:"log"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// GridConfig sizes the board and places its endpoints.
type GridConfig struct {
	Rows      int `koanf:"rows" validate:"min=1,max=1000"`
	Cols      int `koanf:"cols" validate:"min=1,max=1000"`
	StartRow  int `koanf:"start_row" validate:"gte=0"`
	StartCol  int `koanf:"start_col" validate:"gte=0"`
	FinishRow int `koanf:"finish_row" validate:"gte=0"`
	FinishCol int `koanf:"finish_col" validate:"gte=0"`
}

// Start returns the configured start cell.
func (g GridConfig) Start() gridgraph.Coord {
	return gridgraph.Coord{Row: g.StartRow, Col: g.StartCol}
}

// Finish returns the configured finish cell.
func (g GridConfig) Finish() gridgraph.Coord {
	return gridgraph.Coord{Row: g.FinishRow, Col: g.FinishCol}
}

// SearchConfig selects the default engine.
type SearchConfig struct {
	Algorithm string `koanf:"algorithm" validate:"required,oneof=dijkstra bellman-ford bellmanford astar a*"`
}

// AnimationConfig paces the --animate replay.
type AnimationConfig struct {
	VisitStep time.Duration `koanf:"visit_step" validate:"gte=0"`
	PathStep  time.Duration `koanf:"path_step" validate:"gte=0"`
	CostDelay time.Duration `koanf:"cost_delay" validate:"gte=0"`
}

// MetricsConfig names the prometheus namespace.
type MetricsConfig struct {
	Namespace string `koanf:"namespace" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their koanf key
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("koanf"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks field constraints, then that both endpoints lie on the
// board. All failures are reported together.
func (c *Config) Validate() error {
	var msgs []string

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
	}

	g := c.Grid
	if g.StartRow >= g.Rows || g.StartCol >= g.Cols {
		msgs = append(msgs, fmt.Sprintf("grid.start %d,%d outside %dx%d board", g.StartRow, g.StartCol, g.Rows, g.Cols))
	}
	if g.FinishRow >= g.Rows || g.FinishCol >= g.Cols {
		msgs = append(msgs, fmt.Sprintf("grid.finish %d,%d outside %dx%d board", g.FinishRow, g.FinishCol, g.Rows, g.Cols))
	}

	if len(msgs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}
	return nil
}

// fieldMessage renders e.g. "grid.rows must satisfy min=1 (got 0)".
func fieldMessage(fe validator.FieldError) string {
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return fmt.Sprintf("%s must satisfy %s (got %v)", key, rule, fe.Value())
}
