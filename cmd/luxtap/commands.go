package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/luxtap/luxtap/internal/als"
	"github.com/luxtap/luxtap/internal/config"
	"github.com/luxtap/luxtap/internal/ioreg"
	"github.com/luxtap/luxtap/internal/logging"
	"github.com/luxtap/luxtap/internal/tui"
)

// Command flags
var (
	serviceClass  string
	luxProperty   string
	logLevel      string
	outputFormat  string
	watchInterval int
)

func init() {
	// Common flags for sensor commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&serviceClass, "class", "", "Registry service class to query (overrides config)")
	rootCmd.PersistentFlags().StringVar(&luxProperty, "property", "", "Illuminance property key (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Add subcommands directly to root
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(nicknameCmd)
}

// newHub builds the accessor from config plus flag overrides.
func newHub() (*als.Hub, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	class := cfg.ServiceClass
	if serviceClass != "" {
		class = serviceClass
	}
	property := cfg.LuxProperty
	if luxProperty != "" {
		property = luxProperty
	}

	hub := als.NewHub(ioreg.New(),
		als.WithClass(class),
		als.WithLuxProperty(property),
		als.WithLogger(logging.GetLogger()),
	)
	return hub, cfg, nil
}

// reportCmd prints one line per readable sensor
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print every sensor's current lux value",
	Long: `Print one "<name>: <lux> lux" line per ambient light sensor.

This is a best-effort report: sensors whose lux value cannot be read are
skipped silently.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	hub, _, err := newHub()
	if err != nil {
		return err
	}
	return hub.ReportAll()
}

// sensorRow is the list/read output record for --format json
type sensorRow struct {
	Name     string   `json:"name"`
	Nickname string   `json:"nickname,omitempty"`
	Lux      *float64 `json:"lux,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// listCmd enumerates every ambient light sensor
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List ambient light sensors",
	Long: `List every hardware service entry that exposes the illuminance
property, with its current lux value where readable.`,
	Example: `  # Human-readable listing
  luxtap list

  # JSON output for scripting
  luxtap list --format json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, json)")
	readCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, json)")
}

func runList(cmd *cobra.Command, args []string) error {
	hub, cfg, err := newHub()
	if err != nil {
		return err
	}

	it, err := hub.ListSensors()
	if err != nil {
		logging.LogRegistryQuery(hub.Class(), 0, err)
		return fmt.Errorf("failed to enumerate sensors: %w", err)
	}
	defer it.Close()

	var rows []sensorRow
	for {
		s, ok, err := it.Next()
		if err != nil {
			return fmt.Errorf("enumeration failed: %w", err)
		}
		if !ok {
			break
		}

		row := sensorRow{Name: s.Name(), Nickname: cfg.Nickname(s.Name())}
		lux, err := s.CurrentLux()
		logging.LogSensorRead(s.Name(), lux, err)
		if err != nil {
			row.Error = err.Error()
		} else {
			row.Lux = &lux
		}
		s.Close()
		rows = append(rows, row)
	}
	logging.LogRegistryQuery(hub.Class(), len(rows), nil)

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))

	default:
		if len(rows) == 0 {
			fmt.Println("No ambient light sensors found.")
			return nil
		}
		fmt.Printf("Found %d sensor(s):\n\n", len(rows))
		for i, row := range rows {
			fmt.Printf("%d. %s\n", i+1, cfg.DisplayName(row.Name))
			if row.Nickname != "" {
				fmt.Printf("   Service: %s\n", row.Name)
			}
			if row.Lux != nil {
				fmt.Printf("   Lux:     %.1f\n", *row.Lux)
			} else {
				fmt.Printf("   Lux:     unreadable (%s)\n", row.Error)
			}
			fmt.Println()
		}
	}
	return nil
}

// readCmd reads one sensor by registry name
var readCmd = &cobra.Command{
	Use:   "read [name]",
	Short: "Read one sensor by service name",
	Long: `Look up a sensor by its exact registry service name and read its
current lux value.

With no name, the first ambient light sensor the registry yields is used.`,
	Example: `  # Read the first sensor found
  luxtap read

  # Read a specific sensor
  luxtap read AmbientLightSensor

  # JSON output for scripting
  luxtap read AmbientLightSensor --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRead,
}

func runRead(cmd *cobra.Command, args []string) error {
	hub, cfg, err := newHub()
	if err != nil {
		return err
	}

	var sensor *als.Sensor
	if len(args) > 0 {
		sensor, err = hub.OpenSensor(args[0])
	} else {
		sensor, err = hub.FindSensor()
	}
	if err != nil {
		return err
	}
	defer sensor.Close()

	lux, err := sensor.CurrentLux()
	logging.LogSensorRead(sensor.Name(), lux, err)
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		row := sensorRow{Name: sensor.Name(), Nickname: cfg.Nickname(sensor.Name()), Lux: &lux}
		data, err := json.MarshalIndent(row, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	default:
		fmt.Printf("%s: %.1f lux\n", cfg.DisplayName(sensor.Name()), lux)
	}
	return nil
}

// nicknameCmd manages display nicknames for sensors
var nicknameCmd = &cobra.Command{
	Use:   "nickname <service> [nickname]",
	Short: "Set a display nickname for a sensor",
	Long: `Store a user-friendly nickname for a sensor service name.

Nicknames are shown by list, read and watch in place of the raw registry
name. With no nickname argument, the current nickname is printed.`,
	Example: `  # Nickname a sensor
  luxtap nickname AmbientLightSensor "Lid Sensor"

  # Show the current nickname
  luxtap nickname AmbientLightSensor

  # Remove it again
  luxtap nickname AmbientLightSensor --clear`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNickname,
}

var clearNickname bool

func init() {
	nicknameCmd.Flags().BoolVar(&clearNickname, "clear", false, "Remove the nickname")
}

func runNickname(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	service := args[0]

	switch {
	case clearNickname:
		delete(cfg.Nicknames, service)
	case len(args) == 2:
		if cfg.Nicknames == nil {
			cfg.Nicknames = make(map[string]string)
		}
		cfg.Nicknames[service] = args[1]
	default:
		// No nickname argument: just show what is configured
		if nick := cfg.Nickname(service); nick != "" {
			fmt.Printf("%s: %s\n", service, nick)
		} else {
			fmt.Printf("%s has no nickname\n", service)
		}
		return nil
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	if clearNickname {
		fmt.Printf("Removed nickname for %s\n", service)
	} else {
		fmt.Printf("%s: %s\n", service, cfg.Nicknames[service])
	}
	return nil
}

// watchCmd shows a live sensor dashboard
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch sensors live",
	Long: `Continuously re-read every ambient light sensor.

When stdout is a terminal this launches an interactive dashboard; otherwise
it prints a fresh report on every interval until interrupted.`,
	Example: `  # Refresh every second (default)
  luxtap watch

  # Slower refresh
  luxtap watch --interval 5`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchInterval, "interval", 0, "Refresh interval in seconds (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	hub, cfg, err := newHub()
	if err != nil {
		return err
	}

	interval := time.Duration(cfg.WatchInterval) * time.Second
	if watchInterval > 0 {
		interval = time.Duration(watchInterval) * time.Second
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		model := tui.NewModel(hub, cfg.DisplayName, interval)
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	}

	// Not a terminal: plain report lines on every interval
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := hub.ReportAll(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
