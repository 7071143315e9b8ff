//go:build !ebiten

package app

import (
	"errors"

	"sandfall/internal/config"
)

// Run reports that this binary was built without the GUI. The terminal
// frontend works in every build.
func Run(cfg *config.Config) error {
	return errors.New("this build has no GUI; rebuild with `-tags ebiten` or use `sandfall tui`")
}
