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

	"github.com/lanwatch/lanwatch/internal/config"
	"github.com/lanwatch/lanwatch/internal/dashboard"
	"github.com/lanwatch/lanwatch/internal/discovery"
	lwerrors "github.com/lanwatch/lanwatch/internal/errors"
	"github.com/lanwatch/lanwatch/internal/logger"
	"github.com/lanwatch/lanwatch/internal/monitor"
	"github.com/lanwatch/lanwatch/internal/registry"
	"github.com/lanwatch/lanwatch/internal/ui"
)

// Flags for the watch command
var (
	watchPlain    bool
	watchNoDNS    bool
	watchInterval string
	watchTimeout  string
	watchWorkers  int
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [prefix]",
	Short: "Discover hosts on the LAN and keep probing them",
	Long: `Discover every host on the local /24 subnet with a concurrent TCP
sweep, then probe them on an interval and report status changes.

With no prefix the local subnet is autodetected. On a terminal a live
dashboard is shown; pipe the output or pass --plain for line output.`,
	Example: `  lanwatch watch
  lanwatch watch 192.168.0.
  lanwatch watch --interval 10s --no-dns`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(args)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchPlain, "plain", false, "line output instead of the live dashboard")
	watchCmd.Flags().BoolVar(&watchNoDNS, "no-dns", false, "skip reverse DNS lookups")
	watchCmd.Flags().StringVar(&watchInterval, "interval", "", "sweep interval (e.g. 5s, 30s)")
	watchCmd.Flags().StringVar(&watchTimeout, "timeout", "", "probe timeout (e.g. 200ms)")
	watchCmd.Flags().IntVar(&watchWorkers, "workers", 0, "discovery pool size")
}

// watchCommand implements the watch command logic.
func watchCommand(args []string) error {
	cfg, err := effectiveConfig(overrides{
		interval: watchInterval,
		timeout:  watchTimeout,
		workers:  watchWorkers,
		noDNS:    watchNoDNS,
	})
	if err != nil {
		return err
	}

	useDashboard := term.IsTerminal(int(os.Stdout.Fd())) && !watchPlain

	log := newLogger("watch")
	if useDashboard {
		// The alternate screen owns the terminal; stray log lines would
		// tear the display.
		log = logger.Noop()
	}

	prefix, err := resolvePrefix(args, cfg, log)
	if err != nil {
		return err
	}

	reg := registry.New(newResolver(cfg, log), log)
	scanner := discovery.New(reg, cfg, log)
	mon := monitor.New(reg, cfg, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if useDashboard {
		return dashboard.Run(ctx, scanner, mon, reg, prefix, cfg.Alert.Bell)
	}
	return plainWatch(ctx, scanner, mon, reg, prefix, cfg)
}

// plainWatch runs discovery and the sweep loop with line output, for
// non-TTY runs and --plain. Cancellation is a clean exit, not an error.
func plainWatch(ctx context.Context, scanner *discovery.Scanner, mon *monitor.Monitor, reg *registry.Registry, prefix string, cfg *config.Config) error {
	fmt.Printf("Scanning %s0/24 ...\n", prefix)

	if err := scanner.Run(ctx, prefix); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return lwerrors.Wrap(err, "Discovery sweep failed")
	}

	hosts := reg.Snapshot()
	found := 0
	for _, h := range hosts {
		if !h.Sentinel {
			found++
		}
	}
	fmt.Printf("Found %d host(s)\n\n", found)
	fmt.Print(ui.RenderHostTable(hosts))
	fmt.Println()

	mon.OnSweep = func() {
		c := reg.Counts()
		fmt.Printf("%s  up %d  unstable %d  down %d\n",
			time.Now().Format("15:04:05"), c.Up, c.Unstable, c.Down)
	}
	mon.OnAlert = func(h registry.Host) {
		fmt.Printf("%s  %s %s (%s) went down\n",
			time.Now().Format("15:04:05"), ui.SymbolAlert, h.Name, h.IP)
		if cfg.Alert.Bell {
			fmt.Fprint(os.Stderr, "\a")
		}
	}

	if err := mon.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return lwerrors.Wrap(err, "Monitoring stopped unexpectedly")
	}
	return nil
}
