package am

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/teranos/pseudocode/errors"
	"github.com/teranos/pseudocode/logger"
)

const maxBackups = 3

// UserConfigPath returns ~/.pseudocode/am.toml
func UserConfigPath() string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, ConfigFileName)
}

// createBackup rotates .back1..3 before the config file is modified
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil
	}

	oldest := backupPath(configPath, maxBackups)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		logger.Warnw("Failed to delete old backup", logger.FieldFile, oldest, logger.FieldError, err)
	}

	for n := maxBackups - 1; n >= 1; n-- {
		from := backupPath(configPath, n)
		if _, err := os.Stat(from); err != nil {
			continue
		}
		if err := os.Rename(from, backupPath(configPath, n+1)); err != nil {
			return errors.Wrapf(err, "failed to rotate %s", filepath.Base(from))
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(backupPath(configPath, 1), content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}
	return nil
}

func backupPath(configPath string, n int) string {
	return configPath + ".back" + strconv.Itoa(n)
}

// loadOrInitialize reads a TOML config file into a map, or returns an empty
// map when it does not exist yet
func loadOrInitialize(configPath string) (map[string]interface{}, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), DefaultDirPermissions); err != nil {
		return nil, errors.Wrap(err, "failed to create config directory")
	}

	config := make(map[string]interface{})
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", configPath)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", configPath)
	}
	return config, nil
}

// save writes the config with backup, marking the write so the watcher skips it
func save(config map[string]interface{}, configPath string) error {
	if err := createBackup(configPath); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if w := GetGlobalWatcher(); w != nil {
		w.MarkOwnWrite()
	}

	if err := os.WriteFile(configPath, data, DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", configPath)
	}
	return nil
}

// SetValue stores one dotted key in the TOML file at configPath. The raw
// value is converted to the type of the key's default, and the resulting
// configuration must still validate.
func SetValue(configPath, key, raw string) error {
	section, name, ok := strings.Cut(key, ".")
	if !ok || name == "" || strings.Contains(name, ".") {
		return errors.NewInvalidRequestError("key %q must be section.name", key)
	}

	defaults := viper.New()
	SetDefaults(defaults)
	if !defaults.IsSet(key) {
		return errors.WithHint(
			errors.Wrapf(errors.ErrNotFound, "unknown setting %q", key),
			"run 'pseudocode am show' to list settings")
	}

	value, err := convertValue(defaults.Get(key), raw)
	if err != nil {
		return errors.Wrapf(err, "invalid value for %s", key)
	}

	config, err := loadOrInitialize(configPath)
	if err != nil {
		return err
	}
	table, _ := config[section].(map[string]interface{})
	if table == nil {
		table = make(map[string]interface{})
	}
	table[name] = value
	config[section] = table

	if err := validateMap(config); err != nil {
		return err
	}
	if err := save(config, configPath); err != nil {
		return err
	}
	logger.AMInfow("Configuration value written", "key", key, logger.FieldPath, configPath)
	return nil
}

// convertValue parses raw into the kind of value def holds
func convertValue(def interface{}, raw string) (interface{}, error) {
	switch def.(type) {
	case bool:
		return strconv.ParseBool(raw)
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Newf("%q is not an integer", raw)
		}
		return n, nil
	case []string:
		var items []string
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	default:
		return raw, nil
	}
}

// validateMap checks a partial config on top of the defaults
func validateMap(config map[string]interface{}) error {
	v := viper.New()
	SetDefaults(v)
	if err := v.MergeConfigMap(config); err != nil {
		return errors.Wrap(err, "failed to merge config")
	}
	cfg, err := LoadWithViper(v)
	if err != nil {
		return err
	}
	return cfg.Validate()
}

// WriteDefaults creates configPath holding every default setting. An
// existing file is left untouched.
func WriteDefaults(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return errors.WithHint(
			errors.Newf("%s already exists", configPath),
			"use 'pseudocode am set' to change individual settings")
	}
	if _, err := loadOrInitialize(configPath); err != nil {
		return err
	}

	v := viper.New()
	SetDefaults(v)
	return save(v.AllSettings(), configPath)
}
