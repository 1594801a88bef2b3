// File: lixenwraith/flags/decode.go
package flags

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Values returns a snapshot of every flag's current destination value,
// keyed by flag name. Defaults are included for flags no source has
// touched.
func (fs *FlagSet) Values() map[string]any {
	out := make(map[string]any, len(fs.flags))
	for _, f := range fs.flags {
		out[f.Name] = f.dest.get()
	}
	return out
}

// Decode maps the current flag values onto target, a struct pointer,
// matching fields by their `flag` tag (falling back to field names).
// Weakly typed input allows reasonable conversions, e.g. an int flag
// into an int64 field.
func (fs *FlagSet) Decode(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "flag",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(fs.Values()); err != nil {
		return fmt.Errorf("failed to decode flag values: %w", err)
	}
	return nil
}
