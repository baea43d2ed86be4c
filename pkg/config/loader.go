package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GlobalConfigDir is the directory of the global config under the user
// config directory.
const GlobalConfigDir = "fixturegen"

// LocalConfigFileNames are the names searched in the current directory.
var LocalConfigFileNames = []string{".fixturegen.yaml", ".fixturegen.yml"}

// GlobalConfigFileNames are the names searched in the global directory.
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindLocalConfig returns the local config path, or "" when there is none.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return firstExisting(cwd, LocalConfigFileNames), nil
}

// FindGlobalConfig returns the global config path, or "" when there is none.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		//nolint:nilerr // no config dir means no global config
		return "", nil
	}
	return firstExisting(filepath.Join(configDir, GlobalConfigDir), GlobalConfigFileNames), nil
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadFile loads a Config from a YAML file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, newConfigError(path, err)
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, newConfigError(path, err)
	}

	cfg.Sources = make(map[string]string)
	cfg.SetFields = make(map[string]bool, len(keys))
	for key := range keys {
		cfg.SetFields[key] = true
	}
	return &cfg, nil
}

// ConfigError is a configuration file error with location info.
type ConfigError struct {
	Path    string
	Line    int
	Message string
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return e.Path + " (line " + strconv.Itoa(e.Line) + "): " + e.Message
	}
	return e.Path + ": " + e.Message
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func newConfigError(path string, err error) *ConfigError {
	ce := &ConfigError{Path: path, Message: err.Error()}
	if m := yamlLine.FindStringSubmatch(ce.Message); m != nil {
		ce.Line, _ = strconv.Atoi(m[1])
	}
	return ce
}

// LoadAll merges every configuration layer below flags. explicitPath, or
// FIXTUREGEN_CONFIG when it is empty, names a file that must exist.
func LoadAll(explicitPath string) (*Config, error) {
	cfg := NewDefault()

	if globalPath, err := FindGlobalConfig(); err == nil && globalPath != "" {
		globalCfg, err := LoadFile(globalPath)
		if err != nil {
			return nil, err
		}
		Merge(cfg, globalCfg, SourceGlobal)
	}

	if localPath, err := FindLocalConfig(); err == nil && localPath != "" {
		localCfg, err := LoadFile(localPath)
		if err != nil {
			return nil, err
		}
		Merge(cfg, localCfg, SourceLocal)
	}

	if explicitPath == "" {
		explicitPath = os.Getenv(EnvConfig)
	}
	if explicitPath != "" {
		fileCfg, err := LoadFile(explicitPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &ConfigError{Path: explicitPath, Message: "config file not found"}
			}
			return nil, err
		}
		Merge(cfg, fileCfg, SourceFile)
	}

	LoadEnv(cfg)
	return cfg, nil
}
