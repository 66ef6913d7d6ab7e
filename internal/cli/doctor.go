package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lanwatch/lanwatch/internal/config"
	"github.com/lanwatch/lanwatch/internal/doctor"
	"github.com/lanwatch/lanwatch/internal/ui"
)

// Flags for the doctor command
var doctorJSON bool

// doctorTimeout bounds the whole check run. Every check that dials out
// has its own shorter timeout, so this only catches a wedged resolver.
const doctorTimeout = 30 * time.Second

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the environment lanwatch runs in",
	Long: `Check the local environment lanwatch depends on: network interfaces,
the default gateway, subnet detection, reverse DNS, raw TCP dialing,
and the config file. Exits non-zero when a check fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
}

// DoctorOutput represents the JSON output for the doctor command.
type DoctorOutput struct {
	Checks  []CheckOutput `json:"checks"`
	Summary SummaryOutput `json:"summary"`
}

// CheckOutput is one check result in JSON form.
type CheckOutput struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand implements the doctor command logic.
func doctorCommand() error {
	// The CONFIG checks report load problems themselves, so a broken
	// file only degrades the other checks to stock settings.
	cfg, err := config.LoadOrDefault(ConfigPath())
	if err != nil {
		cfg = config.DefaultConfig()
	}

	checks := doctor.Suite(cfg, ConfigPath(), newLogger("doctor"))

	ctx, cancel := context.WithTimeout(context.Background(), doctorTimeout)
	defer cancel()

	results := doctor.RunAll(ctx, checks)

	if doctorJSON {
		if err := outputDoctorJSON(checks, results); err != nil {
			return err
		}
	} else {
		outputDoctorText(checks, results)
	}

	if doctor.HasFailures(results) {
		os.Exit(1)
	}
	return nil
}

// outputDoctorJSON outputs results in JSON format.
func outputDoctorJSON(checks []doctor.Check, results []doctor.CheckResult) error {
	output := DoctorOutput{
		Checks: make([]CheckOutput, 0, len(results)),
	}

	for i, r := range results {
		output.Checks = append(output.Checks, CheckOutput{
			Name:       r.Name,
			Category:   checks[i].Category(),
			Status:     r.Status.String(),
			Message:    r.Message,
			Suggestion: r.Suggestion,
		})
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		AllClear: counts[doctor.StatusFail] == 0 && counts[doctor.StatusWarn] == 0,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText outputs results in human-readable format.
func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult) {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	headerStyle := lipgloss.NewStyle().Bold(true)

	rows := make([]ui.DoctorCheckRow, 0, len(results))
	for i, r := range results {
		rows = append(rows, ui.DoctorCheckRow{
			Status:     r.Status.String(),
			Category:   checks[i].Category(),
			Message:    r.Message,
			Suggestion: r.Suggestion,
		})
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("lanwatch diagnostic report"))
	fmt.Println()
	fmt.Print(ui.RenderDoctorTable(rows))

	fmt.Println(strings.Repeat("━", 60))
	fmt.Println()

	counts := doctor.CountByStatus(results)
	switch {
	case doctor.HasFailures(results):
		fmt.Printf("%s %s\n", errorStyle.Render(ui.SymbolFail), doctor.Summary(results))
	case counts[doctor.StatusWarn] > 0:
		fmt.Printf("%s %s\n", warnStyle.Render(ui.SymbolUnstable), doctor.Summary(results))
	default:
		fmt.Printf("%s %s\n", successStyle.Render(ui.SymbolSuccess), doctor.Summary(results))
	}
	fmt.Println()
}
