/*
Package specfile loads parameter declarations for an [args.Parser] from YAML or TOML files.

A YAML file looks like this, and a TOML file uses the same keys with a [[params]] table array.

	program: greet
	version: "1.0"
	description: Prints a greeting
	params:
	  - name: name
	    description: who to greet
	    switches: ["-n", "--name"]
	    value: who
	    default: World
	  - name: text
	    description: extra text
*/
package specfile

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/saylorsolutions/argparse/args"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported spec file format")
	ErrDecode            = errors.New("failed to decode spec file")
)

// Param is the file representation of an [args.Spec].
type Param struct {
	Name        string   `yaml:"name" toml:"name"`
	Description string   `yaml:"description,omitempty" toml:"description,omitempty"`
	Desc        string   `yaml:"desc,omitempty" toml:"desc,omitempty"` // Desc is a short alias of Description.
	Switches    []string `yaml:"switches,omitempty" toml:"switches,omitempty"`
	Value       string   `yaml:"value,omitempty" toml:"value,omitempty"`
	Required    bool     `yaml:"required,omitempty" toml:"required,omitempty"`
	Default     *string  `yaml:"default,omitempty" toml:"default,omitempty"`
}

// Spec converts a Param to an [args.Spec].
func (p Param) Spec() args.Spec {
	desc := p.Description
	if len(desc) == 0 {
		desc = p.Desc
	}
	return args.Spec{
		Name:        p.Name,
		Description: desc,
		Switches:    p.Switches,
		ValueLabel:  p.Value,
		Required:    p.Required,
		Default:     p.Default,
	}
}

// File is a complete set of declarations for a program.
type File struct {
	Program     string  `yaml:"program,omitempty" toml:"program,omitempty"`
	Version     string  `yaml:"version,omitempty" toml:"version,omitempty"`
	Description string  `yaml:"description,omitempty" toml:"description,omitempty"`
	Samples     string  `yaml:"samples,omitempty" toml:"samples,omitempty"`
	Lenient     bool    `yaml:"lenient,omitempty" toml:"lenient,omitempty"`
	Params      []Param `yaml:"params" toml:"params"`
}

// DecodeYAML reads a File from YAML.
// Unknown keys are rejected.
func DecodeYAML(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &f, nil
}

// DecodeTOML reads a File from TOML.
// Unknown keys are rejected.
func DecodeTOML(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrDecode, strings.Join(keys, ", "))
	}
	return &f, nil
}

// Load reads a File from path, choosing the format by extension.
// Recognized extensions are .yaml, .yml, and .toml.
func Load(path string) (*File, error) {
	var decode func(io.Reader) (*File, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decode = DecodeYAML
	case ".toml":
		decode = DecodeTOML
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	file, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Specs converts every declared parameter in order.
func (f *File) Specs() []args.Spec {
	specs := make([]args.Spec, len(f.Params))
	for i, p := range f.Params {
		specs[i] = p.Spec()
	}
	return specs
}

// Parser creates an [args.Parser] with every parameter in the File declared.
// Options from the File are applied first, so opts may override them.
func (f *File) Parser(opts ...args.Option) (*args.Parser, error) {
	var fileOpts []args.Option
	if len(f.Description) > 0 {
		fileOpts = append(fileOpts, args.Description(f.Description))
	}
	if len(f.Samples) > 0 {
		fileOpts = append(fileOpts, args.Samples(f.Samples))
	}
	if len(f.Program) > 0 {
		fileOpts = append(fileOpts, args.Program(f.Program))
	}
	if f.Lenient {
		fileOpts = append(fileOpts, args.Lenient())
	}
	name := f.Program
	if len(name) == 0 {
		name = "program"
	}
	p := args.New(name, f.Version, append(fileOpts, opts...)...)
	for i, spec := range f.Specs() {
		if err := p.Add(spec); err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
	}
	return p, nil
}
