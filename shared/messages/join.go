package messages

// JoinRequest is sent by a client after connecting to ask for an avatar.
type JoinRequest struct {
	Version    string
	PlayerName string
}
