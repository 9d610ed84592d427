// Package pflagx dresses up spf13/pflag-style option parsing for interactive
// command-line tools. It keeps the engine's parsing behavior and changes the
// presentation and a few policies:
//
//   - default values are appended to option help strings ("Default: %default")
//   - options and option groups appear on the help page in alphabetical order
//   - a flag spelling claimed by a new registration moves over to it, as long
//     as the previous owner keeps at least one other spelling
//   - the built-in help and version options live in a "General options" group,
//     and help answers to -? so that -h stays free
//   - line breaks in descriptions and epilogs survive word wrapping
//   - help output is shown through a fullscreen pager when stdout is a
//     terminal
//
// Parsing itself (tokenizing argv, matching flags, value coercion) is
// delegated to pflag; its error behavior for malformed input is unchanged.
package pflagx
