package config

// ColorMode selects whether the prompt carries ANSI color codes
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // color when stdout is a terminal
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// PromptOptions holds how the `HOST::<cwd> $ ` prompt is rendered.
// No terminal types are exposed here.
type PromptOptions struct {
	Host  string    // Label left of "::" (Default N3XUS)
	Color ColorMode // (Default auto)
}
