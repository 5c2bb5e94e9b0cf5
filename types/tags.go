package types

import (
	cmn "github.com/tendermint/tendermint/libs/common"
)

// Tag is a single key-value annotation on a Result.
type Tag = cmn.KVPair

// Tags is a list of key-value annotations on a Result.
type Tags []Tag

// NewTags builds Tags from alternating key, value byte slices.
// Panics on an odd argument count; tag construction is programmer
// controlled, never input driven.
func NewTags(keysAndValues ...[]byte) Tags {
	if len(keysAndValues)%2 != 0 {
		panic("odd number of tag arguments")
	}
	tags := make(Tags, 0, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		tags = append(tags, MakeTag(keysAndValues[i], keysAndValues[i+1]))
	}
	return tags
}

// EmptyTags for convenience.
func EmptyTags() Tags {
	return make(Tags, 0)
}

// AppendTag appends a single tag, returning the extended list.
func (t Tags) AppendTag(key, value []byte) Tags {
	return append(t, MakeTag(key, value))
}

// AppendTags appends another list of tags.
func (t Tags) AppendTags(tags Tags) Tags {
	return append(t, tags...)
}

func MakeTag(key, value []byte) Tag {
	return Tag{Key: key, Value: value}
}

// Common tag keys.
const (
	TagAction = "action"
)
