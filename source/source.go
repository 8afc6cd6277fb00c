// Package source resolves Veureka `include` statements to file
// contents, using a two-location lookup: `<name>.ver` in the working
// directory, falling back to `lib/<name>.ver`.
package source

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the source for an include name, trying "<name>.ver" in
// the current directory first, then "lib/<name>.ver".
func Load(name string) (string, error) {
	primary := name + ".ver"
	if data, err := os.ReadFile(primary); err == nil {
		return string(data), nil
	}

	fallback := filepath.Join("lib", name+".ver")
	data, err := os.ReadFile(fallback)
	if err != nil {
		return "", fmt.Errorf("no such file %q or %q", primary, fallback)
	}
	return string(data), nil
}
