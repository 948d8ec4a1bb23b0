package messages

import "github.com/automoto/doomerang-ai/shared/netconfig"

// PlayerInput is sent from a client each frame with the held actions of the
// avatar it drives.
type PlayerInput struct {
	Sequence  uint32                      // Incrementing ID, echoed back in NetTarget
	Actions   map[netconfig.ActionID]bool // Which actions are currently pressed
	Timestamp int64                       // Client timestamp (Unix ms)
}

// NewPlayerInput creates a PlayerInput with initialized map
func NewPlayerInput(seq uint32) PlayerInput {
	return PlayerInput{
		Sequence: seq,
		Actions:  make(map[netconfig.ActionID]bool),
	}
}
