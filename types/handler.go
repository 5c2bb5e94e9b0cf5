package types

// Msg is one host-dispatched operation against the engine. The host
// authenticates the signer addresses before dispatch; ValidateBasic
// covers only the stateless checks.
type Msg interface {
	// Route returns the name of the module the message is addressed to.
	Route() string

	// Type returns the operation name inside the module.
	Type() string

	// ValidateBasic does a simple validation check that doesn't
	// require access to any other information.
	ValidateBasic() Error

	// GetSignBytes returns the canonical byte representation of the
	// message, the form the host signs over.
	GetSignBytes() []byte

	// GetSigners returns the addresses whose authorization the host
	// must have established for this message.
	GetSigners() []AccAddress
}

// Handler executes one Msg to completion against the state reachable
// through ctx. The host guarantees calls are serialized.
type Handler func(ctx Context, msg Msg) Result

// Querier answers a read-only query; it must not mutate state.
type Querier func(ctx Context, path []string, req []byte) ([]byte, Error)
