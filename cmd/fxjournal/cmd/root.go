package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/config"
	"github.com/rustyeddy/fxjournal/journal"
)

var rootCmd = &cobra.Command{
	Use:   "fxjournal",
	Short: "A personal trading journal for FX and metals",
	Long: `fxjournal records discretionary FX and metals trades, derives pip and
P/L figures from price inputs, and aggregates them into summary
statistics, a monthly chart and a P/L calendar.

It provides commands for:
  - Recording, editing and deleting trades
  - Win rate, profit factor and P/L statistics
  - Monthly performance chart and calendar heat-map
  - CSV export and import of the full journal
  - Per-user journals over a single SQLite file`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgFile string
	dbPath  string
	user    string
	verbose bool

	cfg *config.Config
	log zerolog.Logger
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
	pf.StringVarP(&dbPath, "db", "d", "", "path to the journal database")
	pf.StringVarP(&user, "user", "u", "", "journal user")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func setup(cmd *cobra.Command, args []string) error {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
		if err != nil {
			return err
		}
	} else {
		cfg = config.Default()
	}
	if err := cfg.FromEnv(); err != nil {
		return err
	}

	// Flags beat env and file.
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if user != "" {
		cfg.User = user
	}
	return nil
}

func openStore() (*journal.SQLiteStore, error) {
	store, err := journal.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// openSession opens the store and the journal session for the configured
// user. The caller must Close the returned store.
func openSession() (*journal.Session, *journal.SQLiteStore, error) {
	if cfg.User == "" {
		return nil, nil, fmt.Errorf("no user configured: set --user, FXJOURNAL_USER or the config file")
	}

	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	sess, err := journal.OpenSession(store, cfg.User, log)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("open session: %w", err)
	}
	return sess, store, nil
}

// confirm prompts on stdin unless the command carries --yes.
func confirm(prompt string, yes bool) bool {
	if yes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)

	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y" || answer == "yes"
}
