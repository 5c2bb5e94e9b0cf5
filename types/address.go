package types

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// AddrLen is the expected length of a caller identifier in bytes.
const AddrLen = 20

// AccAddress is the stable identifier of an invoking principal. The
// engine trusts it as given by the host; it carries no key material.
type AccAddress []byte

// AccAddressFromHex creates an AccAddress from a hex string.
func AccAddressFromHex(address string) (AccAddress, error) {
	if len(address) == 0 {
		return nil, errors.New("decoding hex address failed: must provide an address")
	}
	address = strings.TrimPrefix(strings.ToLower(address), "0x")
	bz, err := hex.DecodeString(address)
	if err != nil {
		return nil, errors.Wrap(err, "decoding hex address failed")
	}
	return AccAddress(bz), nil
}

// Returns boolean for whether two AccAddresses are equal.
func (aa AccAddress) Equals(aa2 AccAddress) bool {
	if aa.Empty() && aa2.Empty() {
		return true
	}
	return strings.EqualFold(aa.String(), aa2.String())
}

// Returns boolean for whether an AccAddress is empty.
func (aa AccAddress) Empty() bool {
	return len(aa) == 0
}

func (aa AccAddress) Bytes() []byte {
	return aa
}

func (aa AccAddress) String() string {
	return strings.ToUpper(hex.EncodeToString(aa))
}

// Marshals to JSON using the hex string form.
func (aa AccAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(aa.String())
}

// Unmarshals from JSON assuming hex encoding.
func (aa *AccAddress) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if len(s) == 0 {
		*aa = AccAddress{}
		return nil
	}
	aa2, err := AccAddressFromHex(s)
	if err != nil {
		return err
	}
	*aa = aa2
	return nil
}
