// Package assets provides embedded files for tui-relay.
package assets

import "embed"

//go:embed bindings.toml
//go:embed docs
var FS embed.FS

// DefaultBindings returns the embedded default binding file for the demo
// board. It is used whenever no user binding file exists.
func DefaultBindings() []byte {
	data, err := FS.ReadFile("bindings.toml")
	if err != nil {
		// The file is compiled into the binary; a failure here is a
		// broken build, not a runtime condition.
		panic("assets: embedded bindings.toml missing: " + err.Error())
	}
	return data
}

// Guide returns the embedded user guide in markdown.
func Guide() []byte {
	data, err := FS.ReadFile("docs/guide.md")
	if err != nil {
		panic("assets: embedded docs/guide.md missing: " + err.Error())
	}
	return data
}
