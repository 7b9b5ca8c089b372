package sound

import "errors"

var (
	// ErrUnsupportedPlatform is returned for an OS with no known player.
	ErrUnsupportedPlatform = errors.New("sound: no player for this platform")

	// ErrNoCommand indicates a Player without a command.
	ErrNoCommand = errors.New("sound: player command is empty")
)
