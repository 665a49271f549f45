package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
//	0 (default) - Written files, diagnostics, final status
//	1 (-v)      - + Package progress, aggregate counts
//	2 (-vv)     - + Timing, config loaded, per-aggregate event schemas
//	3 (-vvv)    - + Parsed tag trees per field

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults     OutputCategory = iota // Written files, check results
	OutputDiagnostics                       // Annotation diagnostics
	OutputUserStatus                        // Final success/failure status

	// Level 1 (-v) - Informational
	OutputProgress // Per-package progress

	// Level 2 (-vv) - Detailed
	OutputTiming // Generation timing
	OutputConfig // Config values loaded/applied
	OutputSchema // Synthesized event schemas

	// Level 3 (-vvv) - Debug
	OutputTagTrees // Parsed tag trees per field
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:     VerbosityUser,
	OutputDiagnostics: VerbosityUser,
	OutputUserStatus:  VerbosityUser,

	OutputProgress: VerbosityInfo,

	OutputTiming: VerbosityDebug,
	OutputConfig: VerbosityDebug,
	OutputSchema: VerbosityDebug,

	OutputTagTrees: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:     "results",
	OutputDiagnostics: "diagnostics",
	OutputUserStatus:  "status",
	OutputProgress:    "progress",
	OutputTiming:      "timing",
	OutputConfig:      "config",
	OutputSchema:      "schema",
	OutputTagTrees:    "tag-trees",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
