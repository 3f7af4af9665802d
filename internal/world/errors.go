package world

import "errors"

var (
	// ErrRoomPlacementFailed is returned when no top left position keeps a
	// sampled room size inside the interior.
	ErrRoomPlacementFailed = errors.New("room placement failed")

	// ErrPathUnreachable is returned when a descent ends without reaching a
	// zero-cost cell.
	ErrPathUnreachable = errors.New("path unreachable")
)
