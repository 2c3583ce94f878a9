package args

import (
	"fmt"
	flag "github.com/spf13/pflag"
)

// Apply sets every bound value on the flag of the same name in flags, so the caller can use typed getters like [flag.FlagSet.GetInt].
// Bound names without a matching flag are skipped, and flags without a bound value keep their defaults.
//
// Every value that can't be set is reported, each wrapping [ErrApply].
func (r *Result) Apply(flags *flag.FlagSet) error {
	errs := new(ParseError)
	for name, val := range r.All() {
		if flags.Lookup(name) == nil {
			continue
		}
		if err := flags.Set(name, val.String()); err != nil {
			errs.add(fmt.Errorf("%w '%s': %w", ErrApply, name, err))
		}
	}
	return errs.result()
}

// MustGet unwraps the result of a typed getter like [flag.FlagSet.GetInt], and panics if it failed.
// Getters only fail if the flag doesn't exist or has a different type, which is a programming error.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
