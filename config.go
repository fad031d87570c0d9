package backre

// Config controls matcher behavior and resource limits.
//
// Example:
//
//	config := backre.DefaultConfig()
//	config.EnablePrefilter = false // force the plain probe-every-position search
//	re, err := backre.CompileWithConfig(`foo|bar|baz`, config)
type Config struct {
	// EnablePrefilter enables the literal-alternation fast path (backed by
	// an Aho-Corasick automaton, see internal/prefilter) for the searches of
	// a compiled Regex (Match, Find, FindAll and the like); the package-level
	// Unanchored function does not use it. When the regex is not a pure
	// literal alternation, or has a single determined first byte (which uses
	// the first-byte scan instead), the prefilter is simply not built,
	// regardless of this setting.
	//
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the minimum byte length every literal alternative must
	// have for the prefilter automaton to be built; if any alternative is
	// shorter, no prefilter is built at all. Shorter literals produce too
	// many candidate positions to be worth the indirection.
	//
	// Default: 2
	MinLiteralLen int

	// MaxRecursionDepth bounds the native call-stack depth the engine will
	// use for a single Anchored/Unanchored call, guarding against stack
	// exhaustion on deeply nested or pathologically repetitive regexes
	// (spec.md §5 "Stack discipline"). Matching that would exceed this
	// depth fails with ErrRecursionLimit instead of crashing the process.
	//
	// Default: 10000
	MaxRecursionDepth int
}

// DefaultConfig returns the default configuration used by Compile.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:   true,
		MinLiteralLen:     2,
		MaxRecursionDepth: 10000,
	}
}
