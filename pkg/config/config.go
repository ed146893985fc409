// Package config loads gojni.toml, which selects the VM bridge and its
// start-up options and configures logging.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/daimatz/gojni/pkg/bridge"
	"github.com/daimatz/gojni/pkg/bridge/cjni"
	"github.com/daimatz/gojni/pkg/hostvm"
	"github.com/daimatz/gojni/pkg/jni"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "gojni.toml"

// Bridges.
const (
	BridgeHost = "host" // the in-process runtime of package hostvm
	BridgeJNI  = "jni"  // a real libjvm through cgo
)

type Config struct {
	JVM JVM `toml:"jvm"`
	Log Log `toml:"log"`
}

// JVM is the [jvm] section.
type JVM struct {
	// Library is the path of libjvm. Empty means locate it.
	Library            string   `toml:"library"`
	Options            []string `toml:"options"`
	ClassPath          []string `toml:"class_path"`
	Version            string   `toml:"version"`
	IgnoreUnrecognized bool     `toml:"ignore_unrecognized"`
	DestroyOnClose     bool     `toml:"destroy_on_close"`
	Bridge             string   `toml:"bridge"`
}

// Log is the [log] section.
type Log struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		JVM: JVM{Version: "1.8", Bridge: BridgeJNI},
		Log: Log{Level: "info"},
	}
}

// Load reads a configuration file on top of Default. Unknown keys are
// errors.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes TOML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("failed to parse config file: %s", strict.String())
		}
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var versions = map[string]int32{
	"1.1": bridge.Version1_1,
	"1.2": bridge.Version1_2,
	"1.4": bridge.Version1_4,
	"1.6": bridge.Version1_6,
	"1.8": bridge.Version1_8,
	"9":   bridge.Version9,
	"10":  bridge.Version10,
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := c.InterfaceVersion(); err != nil {
		return err
	}
	switch c.JVM.Bridge {
	case BridgeHost, BridgeJNI:
	default:
		return fmt.Errorf("invalid jvm.bridge %q: want %q or %q", c.JVM.Bridge, BridgeHost, BridgeJNI)
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	return nil
}

// InterfaceVersion returns the JNI version jvm.version names.
func (c *Config) InterfaceVersion() (int32, error) {
	v, ok := versions[c.JVM.Version]
	if !ok {
		return 0, fmt.Errorf("invalid jvm.version %q", c.JVM.Version)
	}
	return v, nil
}

// Loader returns the bridge loader jvm.bridge selects. hostOpts configure
// the in-process runtime and are ignored for the jni bridge.
func (c *Config) Loader(hostOpts ...hostvm.Option) (bridge.Loader, error) {
	if c.JVM.Bridge == BridgeJNI {
		return cjni.NewLoader(), nil
	}
	rt, err := hostvm.New(hostOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start host runtime: %w", err)
	}
	return rt.Loader(), nil
}

// VMOptions converts the [jvm] section into options for jni.NewVM.
func (c *Config) VMOptions(hostOpts ...hostvm.Option) ([]jni.Option, error) {
	version, err := c.InterfaceVersion()
	if err != nil {
		return nil, err
	}
	loader, err := c.Loader(hostOpts...)
	if err != nil {
		return nil, err
	}
	opts := []jni.Option{jni.WithLoader(loader), jni.WithVersion(version)}
	if c.JVM.Library != "" {
		opts = append(opts, jni.WithLibrary(c.JVM.Library))
	}
	if len(c.JVM.Options) > 0 {
		opts = append(opts, jni.WithOptions(c.JVM.Options...))
	}
	if len(c.JVM.ClassPath) > 0 {
		opts = append(opts, jni.WithClassPath(c.JVM.ClassPath...))
	}
	if c.JVM.IgnoreUnrecognized {
		opts = append(opts, jni.WithIgnoreUnrecognized())
	}
	if c.JVM.DestroyOnClose {
		opts = append(opts, jni.WithDestroyOnClose())
	}
	return opts, nil
}

// Logger builds the zap logger the [log] section describes.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log.level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}
