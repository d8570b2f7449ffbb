package address

import (
	errorsmod "cosmossdk.io/errors"
)

// Well-known SS58 network prefixes from the public registry. The set
// here covers the chains this library targets plus the bare key
// formats; anything else can be used through its numeric prefix
// directly.
const (
	PolkadotPrefix  uint16 = 0
	BareSr25519     uint16 = 1
	KusamaPrefix    uint16 = 2
	BareEd25519     uint16 = 3
	SubstratePrefix uint16 = 42
	BareSecp256k1   uint16 = 43
	WestendPrefix          = SubstratePrefix
)

var networksByName = map[string]uint16{
	"polkadot":  PolkadotPrefix,
	"kusama":    KusamaPrefix,
	"westend":   WestendPrefix,
	"substrate": SubstratePrefix,
	"sr25519":   BareSr25519,
	"ed25519":   BareEd25519,
	"secp256k1": BareSecp256k1,
}

// PrefixByName resolves a registered network name to its SS58 prefix.
func PrefixByName(name string) (uint16, error) {
	prefix, ok := networksByName[name]
	if !ok {
		return 0, errorsmod.Wrap(ErrUnknownNetwork, name)
	}
	return prefix, nil
}
