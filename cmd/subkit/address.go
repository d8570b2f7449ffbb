package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/subkit-labs/subkit/address"
)

const (
	flagNetwork = "network"
	flagPrefix  = "prefix"
)

func addressCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "SS58 address utilities",
	}

	cmd.AddCommand(
		addressEncodeCmd(v),
		addressDecodeCmd(v),
	)
	return cmd
}

func addressEncodeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <public-key-hex>",
		Short: "Encode a public key as an SS58 address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cliLogger(v)

			pubKey, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return errors.Wrap(err, "public key is not hex")
			}

			prefix, err := cmd.Flags().GetUint16(flagPrefix)
			if err != nil {
				return err
			}
			if network, err := cmd.Flags().GetString(flagNetwork); err == nil && network != "" {
				registry, err := loadRegistry(v, logger)
				if err != nil {
					return err
				}
				if prefix, err = resolvePrefix(network, registry); err != nil {
					return err
				}
			}

			addr, err := address.Encode(pubKey, prefix)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}

	cmd.Flags().String(flagNetwork, "", "network name, built-in or from the registry")
	cmd.Flags().Uint16(flagPrefix, address.SubstratePrefix, "numeric SS58 prefix, overridden by --network")
	return cmd
}

func addressDecodeCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <ss58-address>",
		Short: "Decode an SS58 address into its public key and prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pubKey, prefix, err := address.Decode(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "public key: 0x%x\n", pubKey)
			fmt.Fprintf(cmd.OutOrStdout(), "prefix:     %d\n", prefix)
			return nil
		},
	}
}
