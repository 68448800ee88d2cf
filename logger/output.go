package logger

// OutputCategory is a kind of output that is shown from some verbosity on.
//
// Unlike log levels, which filter by severity, categories decide WHAT is
// displayed:
//
//	0 (default) - results and errors with hints
//	1 (-v)      - startup, connections, config reloads
//	2 (-vv)     - each completion request, timing, config values
//	3 (-vvv)    - LSP and MCP messages, classifier decisions
//	4 (-vvvv)   - full documents and suggestion lists
type OutputCategory int

const (
	// Level 0 - always shown
	OutputResults OutputCategory = iota
	OutputErrors

	// Level 1 (-v)
	OutputStartup
	OutputConnections
	OutputReload

	// Level 2 (-vv)
	OutputCompletions
	OutputTiming
	OutputConfig

	// Level 3 (-vvv)
	OutputProtocol
	OutputClassification

	// Level 4 (-vvvv)
	OutputDocuments
	OutputSuggestions
)

var categoryLevels = map[OutputCategory]int{
	OutputResults: VerbosityUser,
	OutputErrors:  VerbosityUser,

	OutputStartup:     VerbosityInfo,
	OutputConnections: VerbosityInfo,
	OutputReload:      VerbosityInfo,

	OutputCompletions: VerbosityDebug,
	OutputTiming:      VerbosityDebug,
	OutputConfig:      VerbosityDebug,

	OutputProtocol:       VerbosityTrace,
	OutputClassification: VerbosityTrace,

	OutputDocuments:   VerbosityAll,
	OutputSuggestions: VerbosityAll,
}

var categoryNames = map[OutputCategory]string{
	OutputResults:        "results",
	OutputErrors:         "errors",
	OutputStartup:        "startup",
	OutputConnections:    "connections",
	OutputReload:         "reload",
	OutputCompletions:    "completions",
	OutputTiming:         "timing",
	OutputConfig:         "config",
	OutputProtocol:       "protocol",
	OutputClassification: "classification",
	OutputDocuments:      "documents",
	OutputSuggestions:    "suggestions",
}

// ShouldOutput returns true if the category is shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
