package types

// Mode is the presentation currently on screen.
type Mode int

const (
	// ModeCalculator shows the innocuous four-function calculator.
	ModeCalculator Mode = iota
	// ModeCovertTool shows the encrypt/decrypt tool.
	ModeCovertTool
)

// String returns the string form of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCalculator:
		return "calculator"
	case ModeCovertTool:
		return "covert-tool"
	default:
		return "unknown"
	}
}

// Fingerprint is a short identifier for a blob presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
