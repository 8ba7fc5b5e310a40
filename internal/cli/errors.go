package cli

import "fmt"

// invalidConfigError marks settings that parsed but are not usable, so
// the message names where to fix them.
type invalidConfigError struct {
	err error
}

func (e invalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration (check flags, TASKLIST_* variables and the config file):\n%v", e.err)
}

func (e invalidConfigError) Unwrap() error { return e.err }
