// Package config loads the engine's runtime configuration from, in
// ascending precedence: built-in defaults, environment variables, a flat
// key/value file, then CLI flags. The flat-file reader is hand-rolled,
// since the file format is neither YAML, TOML, nor .env and has no
// ecosystem parser; the environment-variable layer is lifted onto
// github.com/caarlos0/env/v11.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

// TiePolicy is the day-vote tie-break rule.
type TiePolicy string

const (
	TieNone   TiePolicy = "none"
	TieRandom TiePolicy = "random"
)

// Backend selects which PhaseBarrier / Engine implementation drives a match.
type Backend string

const (
	BackendThreads Backend = "threads"
	BackendCoro    Backend = "coro"
)

// LogVerbosity controls the "full" vs "short" logging format.
type LogVerbosity string

const (
	LogShort LogVerbosity = "short"
	LogFull  LogVerbosity = "full"
)

// Config is every runtime knob the engine accepts. Struct tags feed the
// env-var overlay; the flat-file reader addresses fields by lowercase key
// names (n_players, k_mafia_div, ...) and ApplyFlags by the CLI flag names
// (n, k-mafia-div, exec, ...).
type Config struct {
	NPlayers          int          `env:"MAFIA_N_PLAYERS"`
	Seed              uint64       `env:"MAFIA_SEED"`
	Human             bool         `env:"MAFIA_HUMAN"`
	Log               LogVerbosity `env:"MAFIA_LOG"`
	OpenAnnouncements bool         `env:"MAFIA_OPEN"`
	LogsDir           string       `env:"MAFIA_LOGS_DIR"`
	Tie               TiePolicy    `env:"MAFIA_TIE"`
	KMafiaDiv         int          `env:"MAFIA_K_MAFIA_DIV"`
	ExecutionerCount  int          `env:"MAFIA_EXECUTIONER_COUNT"`
	JournalistCount   int          `env:"MAFIA_JOURNALIST_COUNT"`
	EavesdropperCount int          `env:"MAFIA_EAVESDROPPER_COUNT"`
	UseCoroutines     bool         `env:"MAFIA_USE_COROUTINES"`
	Engine            Backend      `env:"MAFIA_ENGINE"`
}

// Defaults returns the built-in baseline, the lowest-precedence layer.
func Defaults() *Config {
	return &Config{
		NPlayers:          9,
		Seed:              0,
		Human:             false,
		Log:               LogShort,
		OpenAnnouncements: false,
		LogsDir:           "logs",
		Tie:               TieNone,
		KMafiaDiv:         3,
		ExecutionerCount:  0,
		JournalistCount:   0,
		EavesdropperCount: 0,
		UseCoroutines:     false,
		Engine:            BackendThreads,
	}
}

// LoadEnv overlays process environment variables named by the struct tags
// above onto cfg, in place.
func LoadEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("load env config: %w", err)
	}
	return nil
}

// LoadFile overlays the flat key/value config file at path onto cfg.
// Unknown keys produce a warning string (returned, never fatal); malformed
// values produce a warning and leave that key untouched.
func LoadFile(path string, cfg *Config) (warnings []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			warnings = append(warnings, fmt.Sprintf("line %d: missing ':' separator, skipped", lineNo))
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)

		if w := applyKey(cfg, key, val); w != "" {
			warnings = append(warnings, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return warnings, fmt.Errorf("read config file: %w", err)
	}
	return warnings, nil
}

func applyKey(cfg *Config, key, val string) string {
	switch key {
	case "n_players":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Sprintf("n_players: malformed int %q, skipped", val)
		}
		cfg.NPlayers = n
	case "seed":
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return fmt.Sprintf("seed: malformed uint %q, skipped", val)
		}
		cfg.Seed = n
	case "human":
		b, ok := parseBool(val)
		if !ok {
			return fmt.Sprintf("human: malformed bool %q, skipped", val)
		}
		cfg.Human = b
	case "log":
		v := strings.ToLower(val)
		if v != string(LogShort) && v != string(LogFull) {
			return fmt.Sprintf("log: must be short|full, got %q, skipped", val)
		}
		cfg.Log = LogVerbosity(v)
	case "open", "open_announcements":
		b, ok := parseBool(val)
		if !ok {
			return fmt.Sprintf("%s: malformed bool %q, skipped", key, val)
		}
		cfg.OpenAnnouncements = b
	case "logs_dir":
		cfg.LogsDir = val
	case "tie":
		v := strings.ToLower(val)
		if v != string(TieNone) && v != string(TieRandom) {
			return fmt.Sprintf("tie: must be none|random, got %q, skipped", val)
		}
		cfg.Tie = TiePolicy(v)
	case "k_mafia_div":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Sprintf("k_mafia_div: malformed int %q, skipped", val)
		}
		cfg.KMafiaDiv = n
	case "executioner_count":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Sprintf("executioner_count: malformed int %q, skipped", val)
		}
		cfg.ExecutionerCount = n
	case "journalist_count":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Sprintf("journalist_count: malformed int %q, skipped", val)
		}
		cfg.JournalistCount = n
	case "eavesdropper_count":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Sprintf("eavesdropper_count: malformed int %q, skipped", val)
		}
		cfg.EavesdropperCount = n
	case "use_coroutines":
		b, ok := parseBool(val)
		if !ok {
			return fmt.Sprintf("use_coroutines: malformed bool %q, skipped", val)
		}
		cfg.UseCoroutines = b
	case "engine":
		v := strings.ToLower(val)
		if v != string(BackendCoro) && v != string(BackendThreads) {
			return fmt.Sprintf("engine: must be coro|threads, got %q, skipped", val)
		}
		cfg.Engine = Backend(v)
	default:
		return fmt.Sprintf("unknown config key %q, ignored", key)
	}
	return ""
}

func parseBool(val string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	default:
		return false, false
	}
}

// ApplyFlags overlays any CLI flags the user actually set (flag.Changed)
// onto cfg, the highest-precedence layer.
func ApplyFlags(cfg *Config, flags *pflag.FlagSet) {
	if v, err := flags.GetInt("n"); err == nil && flags.Changed("n") {
		cfg.NPlayers = v
	}
	if v, err := flags.GetUint64("seed"); err == nil && flags.Changed("seed") {
		cfg.Seed = v
	}
	if v, err := flags.GetBool("human"); err == nil && flags.Changed("human") {
		cfg.Human = v
	}
	if v, err := flags.GetString("log"); err == nil && flags.Changed("log") {
		cfg.Log = LogVerbosity(v)
	}
	if v, err := flags.GetBool("open"); err == nil && flags.Changed("open") {
		cfg.OpenAnnouncements = v
	}
	if v, err := flags.GetString("logs-dir"); err == nil && flags.Changed("logs-dir") {
		cfg.LogsDir = v
	}
	if v, err := flags.GetString("tie"); err == nil && flags.Changed("tie") {
		cfg.Tie = TiePolicy(v)
	}
	if v, err := flags.GetInt("k-mafia-div"); err == nil && flags.Changed("k-mafia-div") {
		cfg.KMafiaDiv = v
	}
	if v, err := flags.GetInt("exec"); err == nil && flags.Changed("exec") {
		cfg.ExecutionerCount = v
	}
	if v, err := flags.GetInt("journ"); err == nil && flags.Changed("journ") {
		cfg.JournalistCount = v
	}
	if v, err := flags.GetInt("ears"); err == nil && flags.Changed("ears") {
		cfg.EavesdropperCount = v
	}
	if v, err := flags.GetBool("coro"); err == nil && flags.Changed("coro") {
		cfg.UseCoroutines = v
		if v {
			cfg.Engine = BackendCoro
		} else {
			cfg.Engine = BackendThreads
		}
	}
}

// Validate checks every numeric range and cross-field constraint, and
// silently downgrades a Human+Coroutine combination to the threaded
// backend, since a blocking console prompt cannot run inside a
// cooperative continuation.
func (c *Config) Validate() error {
	if c.NPlayers < 1 {
		return fmt.Errorf("n_players must be >= 1, got %d", c.NPlayers)
	}
	if c.KMafiaDiv < 1 {
		return fmt.Errorf("k_mafia_div must be >= 1, got %d", c.KMafiaDiv)
	}
	if c.ExecutionerCount < 0 || c.ExecutionerCount > 1 {
		return fmt.Errorf("executioner_count must be 0 or 1, got %d", c.ExecutionerCount)
	}
	if c.JournalistCount < 0 || c.JournalistCount > 1 {
		return fmt.Errorf("journalist_count must be 0 or 1, got %d", c.JournalistCount)
	}
	if c.EavesdropperCount < 0 || c.EavesdropperCount > 1 {
		return fmt.Errorf("eavesdropper_count must be 0 or 1, got %d", c.EavesdropperCount)
	}
	if c.Log != LogShort && c.Log != LogFull {
		return fmt.Errorf("log must be short|full, got %q", c.Log)
	}
	if c.Tie != TieNone && c.Tie != TieRandom {
		return fmt.Errorf("tie must be none|random, got %q", c.Tie)
	}
	if c.LogsDir == "" {
		return fmt.Errorf("logs_dir must not be empty")
	}

	if c.Human && (c.UseCoroutines || c.Engine == BackendCoro) {
		c.UseCoroutines = false
		c.Engine = BackendThreads
	}
	if c.UseCoroutines {
		c.Engine = BackendCoro
	}
	return nil
}
