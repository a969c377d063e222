package model

// BrewOptions is the alert configuration captured when a brew starts.
// Changing preferences mid-brew does not affect a running brew.
type BrewOptions struct {
	Bounce    bool
	Sound     bool
	Alert     bool
	ShowTimer bool
	Notify    bool
	Speak     bool
}

// DefaultBrewOptions mirrors a fresh install.
func DefaultBrewOptions() BrewOptions {
	return BrewOptions{
		Bounce:    true,
		Sound:     true,
		Alert:     false,
		ShowTimer: true,
		Notify:    true,
		Speak:     false,
	}
}
