package args

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/saylorsolutions/argparse/internal/env"
	"golang.org/x/term"
	"io"
	"os"
	"slices"
)

const (
	EnvColor   = "ARGPARSE_COLOR" // EnvColor may be set to force styled output on or off.
	EnvNoColor = "NO_COLOR"       // EnvNoColor disables styled output if set to anything other than whitespace.
)

// ColorValues translates [EnvColor] to forcing styled output on or off.
// Anything else leaves the decision to [EnvNoColor] and terminal detection.
var ColorValues = map[bool][]string{
	true:  append(slices.Clone(env.DefaultTrue), "always"),
	false: append(slices.Clone(env.DefaultFalse), "never"),
}

// Printer is the channel for user-facing output like help, version, and errors.
// Output goes to STDERR by default.
type Printer struct {
	out  io.Writer
	bold *color.Color
	red  *color.Color
	grey *color.Color
}

func NewPrinter() *Printer {
	p := &Printer{
		bold: color.New(color.Bold),
		red:  color.New(color.FgRed),
		grey: color.New(color.FgHiBlack),
	}
	p.Redirect(os.Stderr)
	return p
}

// Redirect sends output to writer.
// Styling is enabled only if writer is a terminal, unless overridden by [EnvColor] or [EnvNoColor].
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
	p.SetColor(colorEnabled(writer))
}

// SetColor turns styled output on or off.
func (p *Printer) SetColor(enabled bool) {
	for _, c := range []*color.Color{p.bold, p.red, p.grey} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

func (p *Printer) Bold(text string) string {
	return p.bold.Sprint(text)
}

func (p *Printer) Red(text string) string {
	return p.red.Sprint(text)
}

func (p *Printer) Grey(text string) string {
	return p.grey.Sprint(text)
}

func colorEnabled(writer io.Writer) bool {
	return env.BoolIf(EnvColor, isTerminal(writer) && !env.Given(EnvNoColor), ColorValues)
}

func isTerminal(writer io.Writer) bool {
	f, ok := writer.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
