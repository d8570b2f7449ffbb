package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/subkit-labs/subkit/crypto"
	"github.com/subkit-labs/subkit/crypto/hd"
)

const flagScheme = "scheme"

func keyCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Key generation utilities",
	}

	cmd.AddCommand(keyGenerateCmd(v))
	return cmd
}

func schemeByName(name string) (crypto.Scheme, error) {
	for _, s := range []crypto.Scheme{crypto.Ed25519, crypto.Sr25519, crypto.Secp256k1} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, errors.Errorf("unknown scheme %q (ed25519, sr25519 or secp256k1)", name)
}

func keyGenerateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a keypair with a fresh mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cliLogger(v)

			schemeName, err := cmd.Flags().GetString(flagScheme)
			if err != nil {
				return err
			}
			scheme, err := schemeByName(schemeName)
			if err != nil {
				return err
			}

			network, err := cmd.Flags().GetString(flagNetwork)
			if err != nil {
				return err
			}
			registry, err := loadRegistry(v, logger)
			if err != nil {
				return err
			}
			prefix, err := resolvePrefix(network, registry)
			if err != nil {
				return err
			}

			mnemonic, err := hd.NewMnemonic()
			if err != nil {
				return err
			}
			kp, err := hd.KeyPairFromMnemonic(scheme, mnemonic, "")
			if err != nil {
				return err
			}
			defer kp.Zeroize()

			addr, err := kp.AccountID().ToSS58(prefix)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scheme:     %s\n", scheme)
			fmt.Fprintf(out, "mnemonic:   %s\n", mnemonic)
			fmt.Fprintf(out, "public key: 0x%x\n", kp.PublicKey())
			fmt.Fprintf(out, "address:    %s\n", addr)
			return nil
		},
	}

	cmd.Flags().String(flagScheme, crypto.Sr25519.String(), "signature scheme: ed25519, sr25519 or secp256k1")
	cmd.Flags().String(flagNetwork, "substrate", "network whose SS58 prefix to render the address with")
	return cmd
}
