package main

import (
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of the environment variables the CLI reads.
	EnvPrefix = "SUBKIT"

	flagRegistry = "registry"
	flagVerbose  = "verbose"
)

// NewRootCmd builds the subkit command tree. Everything here works
// offline on local inputs; nothing talks to a node.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "subkit",
		Short: "Offline tooling for substrate chains",
		Long: `Offline tooling for substrate chains: inspect runtime metadata dumps,
convert SS58 addresses and generate signing keys. No network access is
performed; all inputs are local files or arguments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagRegistry, "", "path to a YAML registry of custom networks")
	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "log details to stderr")
	_ = v.BindPFlag(flagRegistry, rootCmd.PersistentFlags().Lookup(flagRegistry))
	_ = v.BindPFlag(flagVerbose, rootCmd.PersistentFlags().Lookup(flagVerbose))

	rootCmd.AddCommand(
		metadataCommand(v),
		addressCommand(v),
		keyCommand(v),
	)

	return rootCmd
}

// cliLogger returns a stderr logger, silenced unless --verbose is set.
func cliLogger(v *viper.Viper) log.Logger {
	if !v.GetBool(flagVerbose) {
		return log.NewNopLogger()
	}
	return log.NewLogger(os.Stderr)
}
