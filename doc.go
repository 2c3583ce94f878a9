/*
Package argparse binds command-line arguments to declared parameters, without the ceremony of a full flag framework.

  - The [args] package is the engine. Declare switches and positional parameters, then parse.
  - The [specfile] package loads declarations from YAML or TOML files.
  - The argcheck command validates arguments against a spec file, which is handy in shell scripts.

I wrote this for small tools where free text positional arguments and bundled short switches matter more than sub-commands.

[args]: https://pkg.go.dev/github.com/saylorsolutions/argparse/args
[specfile]: https://pkg.go.dev/github.com/saylorsolutions/argparse/specfile
*/
package argparse
