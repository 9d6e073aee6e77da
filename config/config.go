// Package config handles opvm.toml driver configuration.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/opvm/machine"
	"github.com/ezrec/opvm/translate"
)

var f = translate.From

// ErrUnderflowPolicy is returned for an unknown machine.underflow value.
type ErrUnderflowPolicy string

func (ep ErrUnderflowPolicy) Error() string {
	return f("underflow policy '%v' unknown", string(ep))
}

func (ep ErrUnderflowPolicy) Is(err error) (ok bool) {
	_, ok = err.(ErrUnderflowPolicy)
	return
}

// Config represents an opvm.toml file.
type Config struct {
	Verbose bool    `toml:"verbose"`
	Script  string  `toml:"script"`
	Machine Machine `toml:"machine"`
}

// Machine configures the stack machine.
type Machine struct {
	Underflow string `toml:"underflow"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Machine: Machine{Underflow: machine.UNDERFLOW_ZERO.String()},
	}
}

// Load parses the configuration file at path. An empty path yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = Parse(string(data), cfg)
	if err != nil {
		return nil, &ErrConfig{Path: path, Err: err}
	}

	return cfg, nil
}

// Parse decodes TOML text over cfg and validates the result.
func Parse(text string, cfg *Config) (err error) {
	_, err = toml.Decode(text, cfg)
	if err != nil {
		return
	}

	_, err = cfg.Underflow()
	return
}

// Underflow returns the configured machine underflow policy.
func (cfg *Config) Underflow() (policy machine.Underflow, err error) {
	for _, policy = range []machine.Underflow{machine.UNDERFLOW_ZERO, machine.UNDERFLOW_ERROR} {
		if policy.String() == cfg.Machine.Underflow {
			return
		}
	}

	return machine.UNDERFLOW_ZERO, ErrUnderflowPolicy(cfg.Machine.Underflow)
}

// MachineOpts returns the machine options selected by the configuration.
func (cfg *Config) MachineOpts() (opts []machine.MachineOpt, err error) {
	policy, err := cfg.Underflow()
	if err != nil {
		return
	}

	opts = append(opts, machine.UnderflowOpt(policy))
	return
}

// ErrConfig indicates the file of a configuration error.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
