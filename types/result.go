package types

// Result is the union of a handler's outcome: either Code == CodeOK
// with optional Data and Tags, or a failure code plus Log. A failed
// Result implies no state mutation was committed.
type Result struct {
	// Code is zero on success, or the Error code that aborted the call.
	Code CodeType

	// Codespace qualifies a non-zero Code.
	Codespace CodespaceType

	// Data is any data returned from the operation (e.g. a new
	// proposal id), binary encoded by the module's codec.
	Data []byte

	// Log is free-form failure detail.
	Log string

	// Tags describe what happened, for host-side indexing.
	Tags Tags
}

// IsOK reports whether the operation succeeded.
func (res Result) IsOK() bool {
	return res.Code == CodeOK
}
