// Package platforms is the rule model behind build artifact detection.
//
// A Platform names the folders a toolchain produces (target, node_modules,
// bin) and the associated file patterns (Cargo.toml, *.csproj) whose
// presence next to such a folder confirms it belongs to that toolchain.
// A RuleSet is a validated, read-only list of platforms built once per
// invocation and handed to every scanner.
//
// Platforms are persisted as a flat list in a JSON, YAML or TOML file. A
// default list is embedded and written on first use.
package platforms
