package rpc

import "errors"

// Typed command errors, per spec section 6's TakeRoom result shape. A
// command handler never panics the tick loop (spec section 7): every
// failure mode is one of these, for the transport layer to map onto its
// own status codes.
var (
	// ErrOwned means the requested room already belongs to another user.
	ErrOwned = errors.New("rpc: room already owned")
	// ErrNotRegistered means the caller's UserId has no registered account.
	ErrNotRegistered = errors.New("rpc: user not registered")
	// ErrMissingField means a required field of the command was the zero
	// value (e.g. an empty UserId).
	ErrMissingField = errors.New("rpc: missing required field")
	// ErrUuid means a UserId or ScriptId failed to parse or validate.
	ErrUuid = errors.New("rpc: invalid uuid")
	// ErrInvalidArgument means the command's arguments were individually
	// well-formed but rejected against current world state (PlaceStructure's
	// "invalid-argument" outcome).
	ErrInvalidArgument = errors.New("rpc: invalid argument")
	// ErrInternal wraps an unexpected failure that isn't one of the above
	// typed outcomes.
	ErrInternal = errors.New("rpc: internal error")
)

// MaxRoomsExceededError reports that a user already holds their configured
// room limit; Limit carries the limit itself so the caller can surface it.
type MaxRoomsExceededError struct {
	Limit uint32
}

func (e *MaxRoomsExceededError) Error() string {
	return "rpc: max rooms exceeded"
}
