package args

import (
	"errors"
	"fmt"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Option configures a [Parser].
type Option func(p *Parser)

// Description is shown at the top of help output, and under the version banner.
func Description(text string) Option {
	return func(p *Parser) {
		p.description = strings.TrimSpace(text)
	}
}

// Samples is free text appended to help output, usually with example invocations.
func Samples(text string) Option {
	return func(p *Parser) {
		p.samples = text
	}
}

// Program overrides the program name shown in the usage line.
// It defaults to the base name of os.Args[0] without an extension.
func Program(name string) Option {
	return func(p *Parser) {
		p.program = name
	}
}

// WithPrinter sets the [Printer] used to report help, version, and errors.
func WithPrinter(printer *Printer) Option {
	return func(p *Parser) {
		if printer != nil {
			p.printer = printer
		}
	}
}

// WithLogger sets a logger for debug events while parsing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Lenient makes a [Parser] drop unrecognized arguments instead of reporting them.
func Lenient() Option {
	return func(p *Parser) {
		p.lenient = true
	}
}

// Parser declares expected parameters, and binds argument lists to them.
// A Parser is not safe for concurrent use.
type Parser struct {
	name        string
	version     string
	description string
	samples     string
	program     string
	lenient     bool
	printer     *Printer
	logger      *slog.Logger

	declared    []*Spec
	switches    []*Spec
	positionals []*Spec
	byToken     map[string]*Spec
	byName      map[string]*Spec
	collator    *collate.Collator

	result  *Result
	tracker *Tracker
}

// New creates a [Parser] for a program with the given name and version, which are shown by the version switch.
// The help and version switches are always declared.
func New(name, version string, opts ...Option) *Parser {
	p := &Parser{
		name:     name,
		version:  version,
		program:  defaultProgram(),
		byToken:  map[string]*Spec{},
		byName:   map[string]*Spec{},
		collator: collate.New(language.English),
		result:   NewResult(),
		tracker:  NewTracker(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.printer == nil {
		p.printer = NewPrinter()
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	for _, spec := range builtinSpecs() {
		p.MustAdd(spec)
	}
	return p
}

func defaultProgram() string {
	if len(os.Args) == 0 {
		return ""
	}
	base := filepath.Base(os.Args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Add declares a parameter.
// A spec whose name or any switch was already declared is rejected, and the earlier declaration is kept.
func (p *Parser) Add(spec Spec) error {
	if len(strings.TrimSpace(spec.Name)) == 0 {
		return fmt.Errorf("%w: empty name", ErrInvalidSpec)
	}
	if _, ok := p.byName[spec.Name]; ok {
		return fmt.Errorf("%w: '%s'", ErrDuplicateName, spec.Name)
	}
	seen := map[string]bool{}
	for _, sw := range spec.Switches {
		if len(sw) < 2 || !isSwitchLike(sw) || strings.ContainsAny(sw, "= ") {
			return fmt.Errorf("%w: parameter '%s' has malformed switch '%s'", ErrInvalidSpec, spec.Name, sw)
		}
		if other, ok := p.byToken[sw]; ok {
			return fmt.Errorf("%w: '%s' is already used by parameter '%s'", ErrDuplicateSwitch, sw, other.Name)
		}
		if seen[sw] {
			return fmt.Errorf("%w: '%s' is repeated in parameter '%s'", ErrDuplicateSwitch, sw, spec.Name)
		}
		seen[sw] = true
	}

	s := spec.clone()
	p.declared = append(p.declared, s)
	p.byName[s.Name] = s
	if s.IsPositional() {
		p.positionals = append(p.positionals, s)
	} else {
		for _, sw := range s.Switches {
			p.byToken[sw] = s
		}
		p.switches = append(p.switches, s)
		slices.SortStableFunc(p.switches, func(a, b *Spec) int {
			return p.collator.CompareString(a.Switches[0], b.Switches[0])
		})
	}
	p.seed(s)
	return nil
}

// MustAdd calls [Parser.Add] and panics if the spec is rejected.
func (p *Parser) MustAdd(spec Spec) *Parser {
	if err := p.Add(spec); err != nil {
		panic(err)
	}
	return p
}

// seed applies the declaration-time effects of a spec: required demand and default binding.
func (p *Parser) seed(s *Spec) {
	if s.Required {
		p.tracker.Demand(s.Name, s.label())
	}
	if s.Default != nil {
		p.result.set(s.Name, StringValue(*s.Default))
		if s.Required {
			p.tracker.Satisfy(s.Name)
		}
	}
}

func (p *Parser) reset() {
	p.result = NewResult()
	p.tracker = NewTracker()
	for _, s := range p.declared {
		p.seed(s)
	}
}

// Switches returns the declared switches sorted alphabetically by their first switch token.
func (p *Parser) Switches() []Spec {
	return derefAll(p.switches)
}

// Positionals returns the declared positional parameters in declaration order.
func (p *Parser) Positionals() []Spec {
	return derefAll(p.positionals)
}

// Lookup finds the switch selected by a token.
func (p *Parser) Lookup(switchToken string) (Spec, bool) {
	s, ok := p.byToken[switchToken]
	if !ok {
		return Spec{}, false
	}
	return *s.clone(), true
}

func derefAll(specs []*Spec) []Spec {
	out := make([]Spec, len(specs))
	for i, s := range specs {
		out[i] = *s.clone()
	}
	return out
}

// Result returns the values bound by the last call to [Parser.Parse], or only defaults if it hasn't been called.
func (p *Parser) Result() *Result {
	return p.result
}

// Tracker returns the required parameter state of the last call to [Parser.Parse].
func (p *Parser) Tracker() *Tracker {
	return p.tracker
}

// Printer returns the [Printer] used for reporting.
func (p *Parser) Printer() *Printer {
	return p.printer
}

// Parse binds tokens to declared parameters, usually os.Args[1:].
// State from a previous call is discarded first.
//
// If the version or help switch was given then [ErrVersion] or [ErrHelp] is returned, in that order of precedence, without checking anything else.
// Otherwise, a [*ParseError] is returned with everything that went wrong, or nil if the caller may proceed.
func (p *Parser) Parse(tokens []string) error {
	p.reset()
	stream := newTokenStream(tokens)
	b := &binder{
		result:      p.result,
		tracker:     p.tracker,
		positionals: p.positionals,
		lenient:     p.lenient,
		errs:        new(ParseError),
		logger:      p.logger,
	}
	for {
		tok, ok := p.nextToken(stream)
		if !ok {
			break
		}
		if !tok.switchLike() {
			b.bindPositional(tok)
			continue
		}
		spec, ok := p.byToken[tok.text]
		if !ok {
			b.unrecognized(tok)
			continue
		}
		b.bindSwitch(spec, tok, stream)
	}

	if p.result.Bool(VersionName) {
		return ErrVersion
	}
	if p.result.Bool(HelpName) {
		return ErrHelp
	}
	b.errs.require(p.tracker.Missing())
	return b.errs.result()
}

// Proceed parses tokens and reports the outcome with the [Printer].
// True is returned only if the caller should continue, meaning all required parameters were given, nothing went wrong, and neither help nor version was requested.
func (p *Parser) Proceed(tokens []string) bool {
	err := p.Parse(tokens)
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrVersion):
		p.PrintVersion()
	case errors.Is(err, ErrHelp):
		p.PrintHelp()
	default:
		p.PrintError(err)
	}
	return false
}
