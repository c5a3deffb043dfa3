package models

import "fmt"

// Console identifies the gaming platform a VideoGame runs on.
// The zero value is ConsoleUnknown and is rejected by validation and encoding.
type Console int

const (
	ConsoleUnknown Console = iota
	ConsoleXbox
	ConsolePlayStation
	ConsoleSwitch
)

var consoleCodes = map[Console]string{
	ConsoleXbox:        "xbox",
	ConsolePlayStation: "playstation",
	ConsoleSwitch:      "switch",
}

var consoleNames = map[Console]string{
	ConsoleXbox:        "Xbox",
	ConsolePlayStation: "Playstation",
	ConsoleSwitch:      "Switch",
}

// Consoles returns every known console in display order.
func Consoles() []Console {
	return []Console{ConsoleXbox, ConsolePlayStation, ConsoleSwitch}
}

// ParseConsole maps a wire code ("xbox", "playstation", "switch") to a Console.
func ParseConsole(s string) (Console, error) {
	for c, code := range consoleCodes {
		if code == s {
			return c, nil
		}
	}
	return ConsoleUnknown, fmt.Errorf("unknown console %q", s)
}

// Valid reports whether c is one of the known consoles.
func (c Console) Valid() bool {
	_, ok := consoleCodes[c]
	return ok
}

// String returns the wire code, or "unknown".
func (c Console) String() string {
	if code, ok := consoleCodes[c]; ok {
		return code
	}
	return "unknown"
}

// DisplayName returns the human-readable platform name used in descriptions.
func (c Console) DisplayName() string {
	if name, ok := consoleNames[c]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler. Unknown consoles cannot be encoded.
func (c Console) MarshalText() ([]byte, error) {
	code, ok := consoleCodes[c]
	if !ok {
		return nil, fmt.Errorf("cannot encode console %d", int(c))
	}
	return []byte(code), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Console) UnmarshalText(b []byte) error {
	parsed, err := ParseConsole(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
