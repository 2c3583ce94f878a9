package args

import (
	"errors"
	"fmt"
	"strings"
)

// helpPad is the gap between the widest parameter column and the description column.
const helpPad = 4

func switchColumn(s *Spec) string {
	col := strings.Join(s.Switches, ", ")
	if s.TakesValue() {
		col += "=" + strings.ToUpper(s.ValueLabel)
	}
	return col
}

func positionalColumn(s *Spec) string {
	return "<" + s.Name + ">"
}

// Usage renders help text, styled with the [Printer].
//
// Positional parameters are listed before switches, required parameters are bold, and the samples text is appended last.
func (p *Parser) Usage() string {
	var (
		buf     strings.Builder
		pr      = p.printer
		longest int
	)
	if len(p.description) > 0 {
		buf.WriteString(pr.Grey(p.description) + "\n")
	}
	buf.WriteString("usage: " + pr.Bold(p.program))
	if len(p.switches) > 2 {
		buf.WriteString(" [options]")
	}
	for _, s := range p.positionals {
		col := " " + positionalColumn(s)
		buf.WriteString(col)
		longest = max(longest, len(col))
	}
	for _, s := range p.switches {
		longest = max(longest, len(switchColumn(s)))
	}
	longest += helpPad

	writeRows := func(specs []*Spec, column func(*Spec) string) {
		if len(specs) == 0 {
			return
		}
		buf.WriteString("\n")
		for _, s := range specs {
			desc := strings.ReplaceAll(s.Description, "\n", "\n"+strings.Repeat(" ", longest))
			row := fmt.Sprintf(" %-*s%s", longest-1, column(s), desc)
			if s.Required {
				row = pr.Bold(row)
			}
			buf.WriteString("\n" + row)
		}
	}
	writeRows(p.positionals, positionalColumn)
	writeRows(p.switches, switchColumn)

	if len(p.samples) > 0 {
		buf.WriteString("\n\n " + p.samples)
	}
	return buf.String()
}

// VersionText renders the name and version banner, followed by the description if there is one.
func (p *Parser) VersionText() string {
	text := p.printer.Bold(p.name + " v" + p.version)
	if len(p.description) > 0 {
		text += p.printer.Grey("\n" + p.description)
	}
	return text
}

func (p *Parser) PrintHelp() {
	p.printer.Println(p.Usage())
}

func (p *Parser) PrintVersion() {
	p.printer.Println(p.VersionText())
}

// PrintError reports an error from [Parser.Parse], one line for each collected error.
func (p *Parser) PrintError(err error) {
	if err == nil {
		return
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		for _, e := range parseErr.Errors() {
			p.printer.Println(p.printer.Red(e.Error()))
		}
		return
	}
	p.printer.Println(p.printer.Red(err.Error()))
}
