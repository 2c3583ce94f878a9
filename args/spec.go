package args

import (
	"slices"
	"strings"
)

const (
	HelpName    = "help"    // HelpName is the result key of the built-in help switch.
	VersionName = "version" // VersionName is the result key of the built-in version switch.
)

// Spec describes one expected parameter.
type Spec struct {
	Name        string   // Name is the key of this parameter in the [Result], and must be unique.
	Description string   // Description is only used for help output.
	Switches    []string // Switches select this parameter. A Spec without switches is positional.
	ValueLabel  string   // ValueLabel makes a switch take a value. It's shown in help output, and in missing required errors.
	Required    bool
	Default     *string // Default is bound before parsing starts, and used for a valued switch given without a value.
}

// Default is a convenience for setting [Spec.Default].
func Default(val string) *string {
	return &val
}

// IsPositional reports whether this Spec is bound by position rather than a switch.
func (s Spec) IsPositional() bool {
	return len(s.Switches) == 0
}

// TakesValue reports whether this switch needs a value, as opposed to being a boolean flag.
func (s Spec) TakesValue() bool {
	return len(s.ValueLabel) > 0
}

// label is used to refer to this Spec in missing required errors.
func (s Spec) label() string {
	if len(s.ValueLabel) > 0 {
		return s.ValueLabel
	}
	return s.Name
}

func (s Spec) clone() *Spec {
	cp := s
	cp.Description = strings.TrimSpace(s.Description)
	cp.Switches = slices.Clone(s.Switches)
	if s.Default != nil {
		cp.Default = Default(*s.Default)
	}
	return &cp
}

func builtinSpecs() []Spec {
	return []Spec{
		{Name: HelpName, Description: "display help & usage", Switches: []string{"-h", "--help"}},
		{Name: VersionName, Description: "display cli name & version", Switches: []string{"-v", "--version"}},
	}
}
