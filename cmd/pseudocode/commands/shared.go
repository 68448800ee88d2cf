// Package commands implements the pseudocode CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/pseudocode/am"
	"github.com/teranos/pseudocode/completion"
	"github.com/teranos/pseudocode/errors"
)

// AnnotationLogStderr marks commands whose stdout carries data or a
// protocol. Their logs go to stderr.
const AnnotationLogStderr = "log-stderr"

// LogsToStderr reports whether cmd sends its logs to stderr
func LogsToStderr(cmd *cobra.Command) bool {
	return cmd.Annotations[AnnotationLogStderr] == "true"
}

var stderrLogging = map[string]string{AnnotationLogStderr: "true"}

// loadProvider loads and validates the configuration and builds the
// completion provider. A broken macros file is logged and skipped.
func loadProvider() (*am.Config, *completion.Provider, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "invalid configuration")
	}

	bundle, _ := am.LoadBundle(cfg)
	if bundle == nil {
		return nil, nil, errors.AssertionFailedf("builtin completion catalog failed to build")
	}
	return cfg, completion.NewProvider(bundle), nil
}
