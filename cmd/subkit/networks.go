package main

import (
	"os"
	"strings"

	"cosmossdk.io/log"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/subkit-labs/subkit/address"
	"github.com/subkit-labs/subkit/types"
)

// networkEntry is one custom network in the YAML registry:
//
//	mychain:
//	  ss58_prefix: 77
//	  genesis: "0x..."
//	  spec_version: 100
type networkEntry struct {
	SS58Prefix  uint16 `yaml:"ss58_prefix"`
	Genesis     string `yaml:"genesis"`
	SpecVersion uint32 `yaml:"spec_version"`
}

// loadRegistry reads the custom network registry named by --registry or
// SUBKIT_REGISTRY. A missing flag means an empty registry, not an error.
func loadRegistry(v *viper.Viper, logger log.Logger) (map[string]types.Network, error) {
	path := v.GetString(flagRegistry)
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read network registry")
	}

	var entries map[string]networkEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrap(err, "parse network registry")
	}

	networks := make(map[string]types.Network, len(entries))
	for name, entry := range entries {
		n, err := types.CustomNetworkHex(name, entry.SS58Prefix, entry.Genesis)
		if err != nil {
			return nil, errors.Wrapf(err, "network %q", name)
		}
		n.SpecVersion = entry.SpecVersion
		networks[strings.ToLower(name)] = n
		logger.Debug("registered custom network", "name", name, "ss58_prefix", entry.SS58Prefix)
	}
	return networks, nil
}

// resolvePrefix maps a network name to its SS58 prefix, consulting the
// custom registry first and the built-in networks second.
func resolvePrefix(name string, registry map[string]types.Network) (uint16, error) {
	if n, ok := registry[strings.ToLower(name)]; ok {
		return n.SS58Prefix, nil
	}
	return address.PrefixByName(name)
}
