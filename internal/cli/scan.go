package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lanwatch/lanwatch/internal/discovery"
	lwerrors "github.com/lanwatch/lanwatch/internal/errors"
	"github.com/lanwatch/lanwatch/internal/registry"
	"github.com/lanwatch/lanwatch/internal/ui"
)

// Flags for the scan command
var (
	scanNoDNS   bool
	scanTimeout string
	scanWorkers int
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [prefix]",
	Short: "Run a single discovery sweep and print what answered",
	Long: `Probe every address on the /24 subnet once and print the hosts that
answered, without starting the monitoring loop.

With no prefix the local subnet is autodetected.`,
	Example: `  lanwatch scan
  lanwatch scan 10.0.0.
  lanwatch scan --no-dns --timeout 500ms`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return scanCommand(args)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanNoDNS, "no-dns", false, "skip reverse DNS lookups")
	scanCmd.Flags().StringVar(&scanTimeout, "timeout", "", "probe timeout (e.g. 200ms)")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0, "discovery pool size")
}

// scanCommand implements the scan command logic.
func scanCommand(args []string) error {
	cfg, err := effectiveConfig(overrides{
		timeout: scanTimeout,
		workers: scanWorkers,
		noDNS:   scanNoDNS,
	})
	if err != nil {
		return err
	}

	log := newLogger("scan")
	prefix, err := resolvePrefix(args, cfg, log)
	if err != nil {
		return err
	}

	reg := registry.New(newResolver(cfg, log), log)
	scanner := discovery.New(reg, cfg, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	var spin *ui.Spinner
	if term.IsTerminal(int(os.Stdout.Fd())) {
		spin = ui.NewSpinner(fmt.Sprintf("Scanning %s0/24", prefix))
		spin.Start()
	} else {
		fmt.Printf("Scanning %s0/24 ...\n", prefix)
	}

	start := time.Now()
	err = scanner.Run(ctx, prefix)
	if errors.Is(err, context.Canceled) {
		if spin != nil {
			spin.Stop()
		}
		return nil
	}
	if err != nil {
		if spin != nil {
			spin.Fail()
		}
		return lwerrors.Wrap(err, "Discovery sweep failed")
	}
	if spin != nil {
		spin.Success()
	}

	hosts := reg.Snapshot()
	found := 0
	for _, h := range hosts {
		if !h.Sentinel {
			found++
		}
	}

	fmt.Println()
	fmt.Print(ui.RenderHostTable(hosts))
	fmt.Printf("\n%d host(s) answered in %s\n", found, time.Since(start).Round(time.Millisecond))
	return nil
}
