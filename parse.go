// File: lixenwraith/flags/parse.go
package flags

// Parse consumes command-line arguments in a single left-to-right pass.
// The first token (the program name) is discarded unconditionally.
// Repeated flags overwrite earlier values; the first failure is recorded
// and returned, and no further tokens are consumed. A nil return means
// every token was handled.
func (fs *FlagSet) Parse(args []string) error {
	if len(args) > 0 {
		args = args[1:]
	}

	for len(args) > 0 {
		token := args[0]
		args = args[1:]

		if fs.isConfigArg(token) {
			if len(args) == 0 {
				return fs.fail(ErrCodeMissingValue, token)
			}
			filename := args[0]
			args = args[1:]
			if err := fs.mergeFile(filename, 0); err != nil {
				return err
			}
			continue
		}

		f := fs.lookupArg(token)
		if f == nil {
			if fs.ignoreUnknown {
				continue
			}
			if isHelpArg(token) {
				return fs.fail(ErrCodeHelp, token)
			}
			return fs.fail(ErrCodeUnknown, token)
		}

		if f.Kind == KindBool {
			f.dest.setBool(true)
			continue
		}

		if len(args) == 0 {
			return fs.fail(ErrCodeMissingValue, f.Name)
		}
		text := args[0]
		args = args[1:]
		if !f.dest.set(text) {
			return fs.fail(ErrCodeInvalidValue, f.Name)
		}
	}

	return nil
}
