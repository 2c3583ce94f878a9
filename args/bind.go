package args

import "log/slog"

// binder writes classified tokens into a [Result] for a single parse pass.
type binder struct {
	result      *Result
	tracker     *Tracker
	positionals []*Spec
	cursor      int
	lenient     bool
	errs        *ParseError
	logger      *slog.Logger
}

// bindSwitch binds a matched switch, pulling its value from the stream if needed.
func (b *binder) bindSwitch(spec *Spec, tok token, stream *tokenStream) {
	if !spec.TakesValue() {
		if tok.hasInline {
			b.logger.Debug("Ignored value given to boolean switch", "switch", tok.text, "value", tok.inline)
		}
		b.bind(spec, FlagValue())
		return
	}
	switch {
	case tok.hasInline:
		b.bind(spec, StringValue(tok.inline))
	case b.nextIsValue(stream):
		val, _ := stream.pop()
		b.bind(spec, StringValue(val))
	case spec.Default != nil:
		b.bind(spec, StringValue(*spec.Default))
	default:
		b.errs.add(&ValueRequiredError{Switch: tok.text})
	}
}

func (b *binder) nextIsValue(stream *tokenStream) bool {
	next, ok := stream.peek()
	return ok && len(next) > 0 && !isSwitchLike(next)
}

// bindPositional binds a token to the next positional parameter in declaration order.
// Once every positional parameter has a token, the rest accumulate onto the last one.
func (b *binder) bindPositional(tok token) {
	if len(b.positionals) == 0 {
		b.unrecognized(tok)
		return
	}
	idx := b.cursor
	if idx >= len(b.positionals) {
		idx = len(b.positionals) - 1
	} else {
		b.cursor++
	}
	spec := b.positionals[idx]
	current, ok := b.result.Get(spec.Name)
	switch {
	case !ok || !current.Bool():
		b.bind(spec, StringValue(tok.text))
	case spec.Default != nil && current.String() == *spec.Default:
		b.bind(spec, StringValue(tok.text))
	default:
		b.bind(spec, StringValue(current.String()+" "+tok.text))
	}
}

func (b *binder) bind(spec *Spec, val Value) {
	b.result.set(spec.Name, val)
	if spec.Required && b.tracker.Satisfy(spec.Name) {
		b.logger.Debug("Required parameter satisfied", "name", spec.Name, "given", b.tracker.Given(), "demanded", b.tracker.Demanded())
	}
	b.logger.Debug("Bound parameter", "name", spec.Name, "value", val.String())
}

func (b *binder) unrecognized(tok token) {
	if b.lenient {
		b.logger.Debug("Dropped unrecognized token", "token", tok.raw)
		return
	}
	b.errs.add(&UnrecognizedError{Token: tok.raw})
}
