package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/pseudocode/completion"
	"github.com/teranos/pseudocode/errors"
	"github.com/teranos/pseudocode/logger"
)

// LoadMacros reads a KaTeX macro table from path. An empty path is an empty
// table. The format follows the extension: .toml, or .yaml/.yml/.json
// (JSON is read as YAML).
//
//	# macros.toml
//	"\\RR" = "\\mathbb{R}"
//	pair = "\\langle #1, #2 \\rangle"
func LoadMacros(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrNotFound, "macros file %s", path),
			"set render.macros_file to an existing file or leave it empty")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read macros file %s", path)
	}

	raw, err := decodeMacroFile(path, data)
	if err != nil {
		return nil, err
	}

	table, err := completion.ParseMacroTable(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "macros file %s", path)
	}
	return table, nil
}

func decodeMacroFile(path string, data []byte) (any, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		var raw map[string]any
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, errors.Wrapf(errors.Mark(err, errors.ErrInvalidMacro), "failed to parse %s", path)
		}
		return raw, nil

	case ".yaml", ".yml", ".json":
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(errors.Mark(err, errors.ErrInvalidMacro), "failed to parse %s", path)
		}
		return raw, nil

	default:
		return nil, errors.WithHint(
			errors.NewInvalidMacroError("unsupported macros file extension %q", ext),
			"use .toml, .yaml, .yml or .json")
	}
}

// LoadBundle builds the completion bundle for cfg. A broken macros file is
// logged and the bundle falls back to the builtin catalog; the error is
// returned only for callers that report it (am validate).
func LoadBundle(cfg *Config) (*completion.Bundle, error) {
	path := cfg.Render.MacrosFile

	table, loadErr := LoadMacros(path)
	bundle, err := completion.NewBundle(table)
	if bundle == nil {
		return nil, err
	}
	if loadErr != nil {
		err = loadErr
	}
	if err != nil {
		logger.MacroWarnw("Custom macros ignored",
			logger.FieldFile, path,
			logger.FieldError, err)
		return bundle, err
	}

	if len(bundle.Macros) > 0 {
		logger.MacroInfow("Custom macros imported",
			logger.FieldFile, path,
			logger.FieldMacros, len(bundle.Macros))
	}
	return bundle, nil
}
