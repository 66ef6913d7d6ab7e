package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/lanwatch/lanwatch/internal/config"
	"github.com/lanwatch/lanwatch/internal/errors"
	"github.com/lanwatch/lanwatch/internal/logger"
	"github.com/lanwatch/lanwatch/internal/subnet"
	"github.com/lanwatch/lanwatch/internal/ui"
)

// Flags for the init command
var (
	initSubnet         string
	initForce          bool
	initNonInteractive bool
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .lanwatch.yaml config file",
	Long: `Create a .lanwatch.yaml in the current directory, asking for the
subnet, sweep interval, and alert preferences. Every value can be
changed later by editing the file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Subnet:         initSubnet,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initSubnet, "subnet", "", "subnet prefix to write (e.g. 192.168.1.)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config without asking")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts, use defaults")
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Subnet         string // Pre-specified subnet prefix
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// initDefaults holds init values sourced from the environment.
type initDefaults struct {
	Subnet         string
	NonInteractive bool
}

// getInitDefaults reads init defaults from the environment. CI systems set
// CI=true, which forces the non-interactive path so init never hangs on a
// prompt.
func getInitDefaults() initDefaults {
	return initDefaults{
		Subnet:         os.Getenv("LANWATCH_SUBNET"),
		NonInteractive: os.Getenv("LANWATCH_NON_INTERACTIVE") == "true" || os.Getenv("CI") == "true",
	}
}

// mergeInitOptions fills empty option fields from the environment.
// Flags always win over environment values.
func mergeInitOptions(opts InitOptions) InitOptions {
	defaults := getInitDefaults()
	if opts.Subnet == "" {
		opts.Subnet = defaults.Subnet
	}
	if defaults.NonInteractive {
		opts.NonInteractive = true
	}
	return opts
}

// Init creates a new .lanwatch.yaml configuration file.
func Init(opts InitOptions) error {
	opts = mergeInitOptions(opts)
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if opts.NonInteractive {
		// Use provided values or the stock defaults
		if opts.Subnet != "" {
			if err := subnet.ValidatePrefix(opts.Subnet); err != nil {
				return err
			}
			cfg.Subnet = opts.Subnet
		}
	} else {
		subnetVal := opts.Subnet
		intervalVal := cfg.Interval.String()
		bellVal := cfg.Alert.Bell

		subnetDesc := "Leave empty to autodetect at startup"
		if detected, ok := subnet.NewDetector(logger.Noop()).Detect(); ok {
			subnetDesc = fmt.Sprintf("Leave empty to autodetect at startup (currently %s0/24)", detected)
		}

		// Interactive prompts using huh
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Subnet prefix").
					Description(subnetDesc).
					Placeholder("192.168.1.").
					Value(&subnetVal).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return nil // autodetect
						}
						if err := subnet.ValidatePrefix(strings.TrimSpace(s)); err != nil {
							return fmt.Errorf("use the first three octets with a trailing dot, like 192.168.1.")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Sweep interval").
					Description("How often every host is re-probed").
					Placeholder("5s").
					Value(&intervalVal).
					Validate(func(s string) error {
						d, err := time.ParseDuration(strings.TrimSpace(s))
						if err != nil {
							return fmt.Errorf("use a duration like 5s or 30s")
						}
						if d < config.MinInterval {
							return fmt.Errorf("minimum is %v", config.MinInterval)
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Ring the terminal bell when a host goes down?").
					Value(&bellVal),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive")
		}

		cfg.Subnet = strings.TrimSpace(subnetVal)
		// Validated by the form, so this cannot fail.
		if d, err := time.ParseDuration(strings.TrimSpace(intervalVal)); err == nil {
			cfg.Interval = d
		}
		cfg.Alert.Bell = bellVal
	}

	if err := config.Write(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  lanwatch watch   - Scan the subnet and start monitoring")
	fmt.Println("  lanwatch scan    - One-shot discovery sweep")
	fmt.Println("  lanwatch doctor  - Check your environment")

	return nil
}
