// File: lixenwraith/flags/env.go
package flags

import (
	"os"
	"strings"
)

// EnvName returns the environment variable consulted for a flag name
// under the given prefix: dashes become underscores and the result is
// uppercased, e.g. "max-retries" with prefix "MYAPP_" becomes
// "MYAPP_MAX_RETRIES".
func EnvName(prefix, name string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// ParseEnv visits flags in declaration order and applies any set
// environment variables using the config-text coercion rules (bools take
// exactly "true" or "false"). Unset variables leave the destination
// untouched. The first failure is recorded and returned.
func (fs *FlagSet) ParseEnv(prefix string) error {
	for _, f := range fs.flags {
		text, ok := os.LookupEnv(EnvName(prefix, f.Name))
		if !ok {
			continue
		}
		if !f.dest.set(text) {
			return fs.fail(ErrCodeInvalidValue, f.Name)
		}
	}
	return nil
}
