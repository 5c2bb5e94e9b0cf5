package codec

import (
	amino "github.com/tendermint/go-amino"
)

// Codec is the serialization engine for store values (length-prefixed
// binary) and query responses (JSON). amino behaves deterministically,
// which the store layer relies on.
type Codec = amino.Codec

// New returns a new, unsealed codec.
func New() *Codec {
	return amino.NewCodec()
}

// MarshalJSONIndent provides an auxiliary function to return
// indented JSON output.
func MarshalJSONIndent(cdc *Codec, obj interface{}) ([]byte, error) {
	return cdc.MarshalJSONIndent(obj, "", "  ")
}
