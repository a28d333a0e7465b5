// Package config loads the view configuration of the ledgertree commands
// from a YAML file and the environment. The configuration is read-only:
// nothing is ever written back.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/ledgertree/pkg/account"
	"github.com/joshuapare/ledgertree/pkg/accountrows"
	"github.com/joshuapare/ledgertree/pkg/table"
)

// ErrInvalidConfig wraps every validation error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Environment variables.
const (
	EnvConfig    = "LEDGERTREE_CONFIG"
	EnvMode      = "LEDGERTREE_MODE"
	EnvSort      = "LEDGERTREE_SORT"
	EnvRowColors = "LEDGERTREE_ROW_COLORS"
)

// Config is the resolved view configuration.
type Config struct {
	Mode          account.Mode
	Accounts      string
	Sort          table.SortSpec
	RowColors     table.RowColors
	ExpandTrading bool
	Threshold     decimal.Decimal
	IndentNested  bool
	Bottom        bool
	RoundValues   bool
	Columns       []string
}

// file is the YAML document.
type file struct {
	Mode          string   `yaml:"mode"`
	Accounts      string   `yaml:"accounts"`
	Sort          string   `yaml:"sort"`
	RowColors     string   `yaml:"row_colors"`
	ExpandTrading bool     `yaml:"expand_trading"`
	Threshold     string   `yaml:"threshold"`
	IndentNested  *bool    `yaml:"indent_nested"`
	Bottom        bool     `yaml:"bottom"`
	RoundValues   bool     `yaml:"round_values"`
	Columns       []string `yaml:"columns"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode:         account.ModeParent,
		Accounts:     accountrows.Sets[0].Name,
		RowColors:    table.ColorsParent,
		IndentNested: true,
		Columns:      append([]string(nil), accountrows.DefaultColumns...),
	}
}

// Load reads a YAML configuration. Keys not present keep their default.
// Unknown keys are errors.
func Load(r io.Reader) (Config, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return f.resolve()
}

// LoadFile reads a YAML configuration from disk.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c, err := Load(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Resolve loads the configuration for a command: the file at path, else the
// file named by LEDGERTREE_CONFIG, else the defaults; then the environment
// overrides are applied.
func Resolve(path string, getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if path == "" {
		path = getenv(EnvConfig)
	}

	c := Default()
	if path != "" {
		var err error
		if c, err = LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := c.ApplyEnv(getenv); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ApplyEnv overrides the mode, sort and row colors from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvMode); v != "" {
		m, err := account.ParseMode(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvMode, err)
		}
		c.Mode = m
	}
	if v := getenv(EnvSort); v != "" {
		s, err := table.ParseSort(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvSort, err)
		}
		c.Sort = s
	}
	if v := getenv(EnvRowColors); v != "" {
		rc, err := table.ParseRowColors(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvRowColors, err)
		}
		c.RowColors = rc
	}
	return nil
}

func (f file) resolve() (Config, error) {
	c := Default()
	var err error

	if f.Mode != "" {
		if c.Mode, err = account.ParseMode(f.Mode); err != nil {
			return Config{}, fmt.Errorf("%w: mode: %w", ErrInvalidConfig, err)
		}
	}
	if f.Accounts != "" {
		set, err := accountrows.FindSet(f.Accounts)
		if err != nil {
			return Config{}, fmt.Errorf("%w: accounts: %w", ErrInvalidConfig, err)
		}
		c.Accounts = set.Name
	}
	if c.Sort, err = table.ParseSort(f.Sort); err != nil {
		return Config{}, fmt.Errorf("%w: sort: %w", ErrInvalidConfig, err)
	}
	if f.RowColors != "" {
		if c.RowColors, err = table.ParseRowColors(f.RowColors); err != nil {
			return Config{}, fmt.Errorf("%w: row_colors: %w", ErrInvalidConfig, err)
		}
	}
	if f.Threshold != "" {
		if c.Threshold, err = decimal.NewFromString(f.Threshold); err != nil {
			return Config{}, fmt.Errorf("%w: threshold %s: %w", ErrInvalidConfig, strconv.Quote(f.Threshold), err)
		}
	}
	if f.IndentNested != nil {
		c.IndentNested = *f.IndentNested
	}
	if len(f.Columns) > 0 {
		if _, err := accountrows.Columns(f.Columns); err != nil {
			return Config{}, fmt.Errorf("%w: columns: %w", ErrInvalidConfig, err)
		}
		c.Columns = f.Columns
	}

	c.ExpandTrading = f.ExpandTrading
	c.Bottom = f.Bottom
	c.RoundValues = f.RoundValues
	return c, nil
}

// Settings returns the account row settings of the configuration.
func (c Config) Settings() accountrows.Settings {
	return accountrows.Settings{
		Mode:          c.Mode,
		ExpandTrading: c.ExpandTrading,
		RoundValues:   c.RoundValues,
	}
}

// WindowOptions returns the window options of the configuration.
func (c Config) WindowOptions() table.WindowOptions {
	return table.WindowOptions{
		RowColors:      c.RowColors,
		IndentNested:   c.IndentNested,
		ScrollToBottom: c.Bottom,
	}
}
