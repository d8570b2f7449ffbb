package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/subkit-labs/subkit/metadata"
)

const (
	flagModule = "module"
	flagCalls  = "calls"
)

func metadataCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Runtime metadata utilities",
	}

	cmd.AddCommand(metadataInspectCmd(v))
	return cmd
}

func metadataInspectCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize a metadata dump",
		Long: `Summarize a runtime metadata dump: modules with their dispatch
indexes, and per module the declared extrinsics, storage entries, events,
constants and errors. The file holds either the raw JSON-RPC response of
state_getMetadata or the bare hex blob; "-" reads from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cliLogger(v)

			raw, err := readInput(args[0])
			if err != nil {
				return err
			}

			m, err := parseAnyFormat(raw)
			if err != nil {
				return err
			}
			logger.Debug("parsed metadata", "version", m.Version, "modules", len(m.Modules))

			moduleFilter, err := cmd.Flags().GetString(flagModule)
			if err != nil {
				return err
			}
			callsOnly, err := cmd.Flags().GetBool(flagCalls)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "metadata v%d, %d modules, extrinsic format v%d\n",
				m.Version, len(m.Modules), m.Extrinsic.Version)

			for i := range m.Modules {
				mod := &m.Modules[i]
				if moduleFilter != "" && mod.Name != moduleFilter {
					continue
				}
				printModule(out, mod, callsOnly)
			}
			return nil
		},
	}

	cmd.Flags().String(flagModule, "", "print only the named module")
	cmd.Flags().Bool(flagCalls, false, "print extrinsics only")
	return cmd
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		return raw, errors.Wrap(err, "read stdin")
	}
	raw, err := os.ReadFile(path)
	return raw, errors.Wrap(err, "read metadata file")
}

// parseAnyFormat accepts a JSON-RPC response body, a hex blob or raw
// bytes, in that order of detection.
func parseAnyFormat(raw []byte) (*metadata.Metadata, error) {
	trimmed := strings.TrimSpace(string(raw))
	switch {
	case strings.HasPrefix(trimmed, "{"):
		return metadata.ParseJSONRPC([]byte(trimmed))
	case strings.HasPrefix(trimmed, "0x"):
		return metadata.ParseHex(trimmed)
	default:
		return metadata.Parse(raw)
	}
}

func printModule(out io.Writer, mod *metadata.Module, callsOnly bool) {
	fmt.Fprintf(out, "\n%s (index %d)\n", mod.Name, mod.ModuleID)

	for _, call := range mod.Calls {
		args := make([]string, 0, len(call.Args))
		for _, arg := range call.Args {
			args = append(args, fmt.Sprintf("%s: %s", arg.Name, arg.Type))
		}
		fmt.Fprintf(out, "  call %2d  %s(%s)\n", call.DispatchID, call.Name, strings.Join(args, ", "))
	}
	if callsOnly {
		return
	}

	for _, entry := range mod.Storage {
		fmt.Fprintf(out, "  storage  %s.%s\n", mod.StoragePrefix, entry.Name)
	}
	for _, event := range mod.Events {
		fmt.Fprintf(out, "  event    %s(%s)\n", event.Name, strings.Join(event.Args, ", "))
	}
	for _, constant := range mod.Constants {
		fmt.Fprintf(out, "  const    %s: %s\n", constant.Name, constant.Type)
	}
	for _, errDef := range mod.Errors {
		fmt.Fprintf(out, "  error    %s\n", errDef.Name)
	}
}
