// Package config loads dispatch engine settings from YAML files and
// environment variables and converts them into engine options.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/embedlog/sinker/backend"
	"github.com/embedlog/sinker/core"
	"github.com/embedlog/sinker/dispatch"
)

// Worker configures the background dispatch task. Stack size, priority and
// core affinity are passed through to the backend untouched.
type Worker struct {
	Name      string `yaml:"name"`
	StackSize int    `yaml:"stack_size"`
	Priority  int    `yaml:"priority"`
	Core      int    `yaml:"core"` // -1 = any core
}

// Config holds the engine settings loadable from YAML.
type Config struct {
	Level          string `yaml:"level"`
	QueueCapacity  int    `yaml:"queue_capacity"`
	FlushTimeoutMS int64  `yaml:"flush_timeout_ms"`
	Worker         Worker `yaml:"worker"`
}

// Default returns the built-in configuration.
func Default() Config {
	task := backend.DefaultTaskConfig()
	return Config{
		Level:          core.LevelInfo.String(),
		QueueCapacity:  dispatch.DefaultQueueCapacity,
		FlushTimeoutMS: dispatch.DefaultFlushTimeout.Milliseconds(),
		Worker: Worker{
			Name:      task.Name,
			StackSize: task.StackSize,
			Priority:  task.Priority,
			Core:      task.Core,
		},
	}
}

// Load reads a YAML file over the defaults. Fields absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overrides cfg from SINKER_* environment variables. Unset or
// malformed variables leave the corresponding field untouched.
func FromEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv("SINKER_LEVEL")); v != "" {
		cfg.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("SINKER_QUEUE_CAPACITY")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.QueueCapacity = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("SINKER_FLUSH_TIMEOUT_MS")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.FlushTimeoutMS = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("SINKER_WORKER_NAME")); v != "" {
		cfg.Worker.Name = v
	}
	if v := strings.TrimSpace(os.Getenv("SINKER_WORKER_STACK_SIZE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Worker.StackSize = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("SINKER_WORKER_PRIORITY")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Worker.Priority = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("SINKER_WORKER_CORE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Worker.Core = n
		}
	}
	return cfg
}

// Severity parses the configured level name.
func (c Config) Severity() core.Level {
	return core.ParseLevel(c.Level)
}

// Options converts the configuration into hub options. The backend is
// supplied by the caller since it is a live collaborator, not a setting.
func (c Config) Options(be backend.Backend) dispatch.Options {
	return dispatch.Options{
		Backend:       be,
		QueueCapacity: c.QueueCapacity,
		FlushTimeout:  time.Duration(c.FlushTimeoutMS) * time.Millisecond,
	}
}

// TaskConfig converts the worker settings into a backend task description.
func (c Config) TaskConfig() backend.TaskConfig {
	return backend.TaskConfig{
		Name:      c.Worker.Name,
		StackSize: c.Worker.StackSize,
		Priority:  c.Worker.Priority,
		Core:      c.Worker.Core,
	}
}
