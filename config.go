package contribgif

import "time"

// Environment variables read by the command.
const (
	EnvUsername = "USERNAME"
	EnvToken    = "GITHUB_TOKEN"
)

// Config is everything one run needs.
type Config struct {
	Username string
	Token    string
	Endpoint string

	Output    string // GIF path
	SVGOutput string // Optional static SVG path

	Motion string
	Frames int
	Delay  time.Duration
	Glow   float64
	Title  string

	Preview          bool // Print the base canvas as braille
	PreviewAnimation bool // Play the finished frames as braille
}

func DefaultConfig() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Output:   "assets/contributions.gif",
		Motion:   PolicyWalk,
		Frames:   DefaultFrames,
		Delay:    DefaultDelay,
	}
}

// Validate checks the config without touching the network.
func (c Config) Validate() error {
	if c.Username == "" {
		return &ConfigError{Var: EnvUsername, Reason: "is not set"}
	}
	if c.Token == "" {
		return &ConfigError{Var: EnvToken, Reason: "is not set"}
	}
	if c.Output == "" {
		return &ConfigError{Var: "OUTPUT", Reason: "is empty"}
	}
	if c.Frames < 2 {
		return &ConfigError{Var: "FRAMES", Reason: "must be at least 2"}
	}
	if c.Delay < 10*time.Millisecond {
		return &ConfigError{Var: "FRAME_DELAY", Reason: "must be at least 10ms"}
	}
	if c.Glow < 0 {
		return &ConfigError{Var: "GLOW", Reason: "must not be negative"}
	}
	if _, err := ParsePolicy(c.Motion); err != nil {
		return &ConfigError{Var: "MOTION", Reason: err.Error()}
	}
	return nil
}
