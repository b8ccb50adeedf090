package config

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"minmax/experiments"
	"minmax/meta"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "MINMAX"

var (
	Modes           = []string{"play", "demo", "experiment"}
	Humans          = []string{"first", "second", "none"}
	ExperimentKinds = []string{"matchup", "throughput"}
)

type Config struct {
	LogLevel    string
	Mode        string
	Depth       int
	Human       string // Side played from the console in play mode
	Color       bool
	HistoryFile string

	ExperimentKind string
	Experiment     experiments.Config
}

// Load reads the configuration from args, then MINMAX_* environment
// variables, then the YAML file named by --config, falling back to defaults.
// Nested keys map to environment variables with underscores, so
// experiment.games is read from MINMAX_EXPERIMENT_GAMES.
func Load(args []string) (*Config, error) {
	defaults := experiments.DefaultConfig()

	fs := pflag.NewFlagSet("minmax", pflag.ContinueOnError)
	fs.String("config", "", "YAML config file")
	fs.String("log-level", "info", "log level: debug, info, warn, error or disabled")
	fs.String("mode", "play", "one of "+strings.Join(Modes, ", "))
	fs.Int("depth", meta.DEFAULT_DEPTH, "search depth of the engine in play and demo modes")
	fs.String("human", "first", "side played from the console: "+strings.Join(Humans, ", "))
	fs.Bool("color", true, "colour the board")
	fs.String("history-file", "", "readline history file")
	fs.String("experiment-kind", "matchup", "experiment to run: "+strings.Join(ExperimentKinds, ", "))
	fs.String("name", defaults.Name, "experiment name")
	fs.Int("games", defaults.Games, "games per matchup")
	fs.IntSlice("depths", defaults.Depths, "depths of the competing agents")
	fs.Float64("epsilon", defaults.Epsilon, "probability of a random move in experiments")
	fs.Uint64("seed", defaults.Seed, "seed of the experiment agents")
	fs.String("output-dir", defaults.OutputDir, "directory of experiment results, empty to skip writing")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	v := viper.New()
	bindings := map[string]string{
		"log_level":             "log-level",
		"mode":                  "mode",
		"depth":                 "depth",
		"human":                 "human",
		"color":                 "color",
		"history_file":          "history-file",
		"experiment.kind":       "experiment-kind",
		"experiment.name":       "name",
		"experiment.games":      "games",
		"experiment.depths":     "depths",
		"experiment.epsilon":    "epsilon",
		"experiment.seed":       "seed",
		"experiment.output_dir": "output-dir",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	depths, err := parseDepths(v.Get("experiment.depths"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:       v.GetString("log_level"),
		Mode:           v.GetString("mode"),
		Depth:          v.GetInt("depth"),
		Human:          v.GetString("human"),
		Color:          v.GetBool("color"),
		HistoryFile:    v.GetString("history_file"),
		ExperimentKind: v.GetString("experiment.kind"),
		Experiment: experiments.Config{
			Name:      v.GetString("experiment.name"),
			Games:     v.GetInt("experiment.games"),
			Depths:    depths,
			Epsilon:   v.GetFloat64("experiment.epsilon"),
			Seed:      v.GetUint64("experiment.seed"),
			OutputDir: v.GetString("experiment.output_dir"),
		},
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if !lo.Contains(Modes, c.Mode) {
		return fmt.Errorf("unknown mode %q, expected one of %s", c.Mode, strings.Join(Modes, ", "))
	}
	if !lo.Contains(Humans, c.Human) {
		return fmt.Errorf("unknown human side %q, expected one of %s", c.Human, strings.Join(Humans, ", "))
	}
	if !lo.Contains(ExperimentKinds, c.ExperimentKind) {
		return fmt.Errorf("unknown experiment kind %q, expected one of %s", c.ExperimentKind, strings.Join(ExperimentKinds, ", "))
	}
	if c.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", c.Depth)
	}
	if c.Experiment.Epsilon < 0 || c.Experiment.Epsilon > 1 {
		return fmt.Errorf("epsilon must be within [0, 1], got %v", c.Experiment.Epsilon)
	}
	if len(c.Experiment.Depths) == 0 {
		return fmt.Errorf("experiment needs at least one depth")
	}
	if lo.SomeBy(c.Experiment.Depths, func(depth int) bool { return depth < 0 }) {
		return fmt.Errorf("experiment depths must not be negative, got %v", c.Experiment.Depths)
	}
	return nil
}

// parseDepths reads experiment.depths, which is a list when it comes from a
// flag or the config file and a string like "1,2" or "1 2" when it comes from
// the environment.
func parseDepths(value any) ([]int, error) {
	switch value := value.(type) {
	case []int:
		return value, nil
	case []any:
		return parseDepths(lo.Map(value, func(item any, _ int) string {
			return fmt.Sprint(item)
		}))
	case []string:
		depths := make([]int, 0, len(value))
		for _, text := range value {
			depth, err := strconv.Atoi(strings.TrimSpace(text))
			if err != nil {
				return nil, fmt.Errorf("invalid experiment depth %q: %w", text, err)
			}
			depths = append(depths, depth)
		}
		return depths, nil
	case string:
		fields := strings.FieldsFunc(strings.Trim(value, "[]"), func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) == 0 {
			return nil, fmt.Errorf("experiment depths %q lists no depth", value)
		}
		return parseDepths(fields)
	default:
		return nil, fmt.Errorf("unsupported experiment depths %v (%T)", value, value)
	}
}
