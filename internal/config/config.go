// Package config resolves runtime settings. Precedence, highest first:
// command-line flags, environment variables, the TOML config file, defaults.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultHTTPAddr   = ":8080"
	DefaultTasksFile  = "tasks.json"
	DefaultConfigFile = "taskman.toml"
)

type Config struct {
	Env             string
	HTTPAddr        string
	TasksFile       string
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

// Overrides carries flag values from the CLI; empty fields are unset.
type Overrides struct {
	Env       string
	HTTPAddr  string
	TasksFile string
	File      string
}

type fileConfig struct {
	Env             string `toml:"env"`
	HTTPAddr        string `toml:"http_addr"`
	TasksFile       string `toml:"tasks_file"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
	ReadTimeout     string `toml:"read_timeout"`
	WriteTimeout    string `toml:"write_timeout"`
}

func Load(o Overrides) Config {
	path := o.File
	if path == "" {
		path = getenv("TASKMAN_CONFIG", DefaultConfigFile)
	}
	var fc fileConfig
	// A missing or unreadable config file is not an error; defaults apply.
	_, _ = toml.DecodeFile(path, &fc)

	cfg := Config{
		Env:             pick(o.Env, getenv("APP_ENV", pick(fc.Env, "dev"))),
		HTTPAddr:        pick(o.HTTPAddr, getenv("HTTP_ADDR", pick(fc.HTTPAddr, DefaultHTTPAddr))),
		TasksFile:       pick(o.TasksFile, getenv("TASKS_FILE", pick(fc.TasksFile, DefaultTasksFile))),
		ShutdownTimeout: getdur("SHUTDOWN_TIMEOUT", filedur(fc.ShutdownTimeout, 5*time.Second)),
		ReadTimeout:     getdur("READ_TIMEOUT", filedur(fc.ReadTimeout, 10*time.Second)),
		WriteTimeout:    getdur("WRITE_TIMEOUT", filedur(fc.WriteTimeout, 10*time.Second)),
	}
	return cfg
}

func pick(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getdur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func filedur(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
