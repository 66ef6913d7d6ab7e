package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lwerrors "github.com/lanwatch/lanwatch/internal/errors"
	"github.com/lanwatch/lanwatch/internal/ui"
)

// Persistent flags shared by every command.
var (
	configFlag string
	debugFlag  bool
)

// rootCmd is the base command all subcommands hang off.
var rootCmd = &cobra.Command{
	Use:   "lanwatch",
	Short: "Watch your LAN for hosts going up and down",
	Long: `lanwatch discovers the devices on your local /24 network with a fast
TCP sweep, then keeps probing them and tells you the moment one stops
answering.

Run it with no arguments to detect the local subnet, or pass a prefix:

  lanwatch watch
  lanwatch watch 192.168.0.
  lanwatch scan 10.0.0.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: search for .lanwatch.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Structured errors render their own symbol and suggestion.
		var lwErr *lwerrors.Error
		if errors.As(err, &lwErr) {
			fmt.Fprintln(os.Stderr, lwErr.Error())
		} else {
			fmt.Fprintf(os.Stderr, "%s %v\n", ui.SymbolFail, err)
		}
		os.Exit(1)
	}
}

// ConfigPath returns the --config flag value.
func ConfigPath() string {
	return configFlag
}
