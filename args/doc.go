/*
Package args declares the parameters a program expects and binds a raw argument list to them.

A [Parser] holds two kinds of parameters, both described with a [Spec].

  - Switches are selected by one or more dash-prefixed tokens, like '-o' and '--output-file'.
    A switch with a ValueLabel takes a value, otherwise it's a boolean flag, and a value given to it with '=' is ignored.
  - Positional parameters have no switches and are bound by the order in which they were declared.

The '-h'/'--help' and '-v'/'--version' switches are always declared.

# Grammar

These forms are recognized for switches.

	--name value   --name=value   -n value   -n=value
	-qVa           (same as -q -V -a)
	-qVo=value     (same as -q -V -o=value)

Any other token is positional.
Extra positional tokens accumulate onto the last positional parameter, separated by a space, so free text doesn't need quoting.

# Results

Values are bound into an ordered [Result], where boolean switches are true and everything else is a string.
Interpreting strings as other types is left to the caller, and [Result.Apply] can hand them to a [pflag.FlagSet] for that.

# Policies

  - The first registrant of a switch token or name wins, later conflicting specs are rejected by [Parser.Add].
  - Every problem found in a pass is reported, not just the last one. See [ParseError].
  - Unknown switches are errors unless the [Parser] is created with [Lenient].
  - [Parser.Parse] resets its state on entry, so a [Parser] may be reused for another argument list.

[pflag.FlagSet]: https://pkg.go.dev/github.com/spf13/pflag#FlagSet
*/
package args
