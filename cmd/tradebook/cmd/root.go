package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mwhitt/tradebook/config"
	"github.com/mwhitt/tradebook/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A personal trading journal with broker-statement reconciliation",
	Long: `Tradebook keeps a trading journal in SQLite and reconciles broker
statement exports into completed round-trip trades.

It provides tools for:
  - Importing thinkorswim Account Statement exports
  - FIFO matching of opening and closing executions
  - Realized P&L per completed trade
  - Win rate, profit factor and per-strategy statistics
  - Strategy tags, trading rules and journal entries`,
	PersistentPreRunE: setup,
}

var (
	cfgFile string
	dbPath  string
	user    string
	verbose bool

	cfg *config.Config
	log *zap.Logger
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to SQLite journal DB")
	rootCmd.PersistentFlags().StringVarP(&user, "user", "u", "", "owning user for journal records")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

func setup(cmd *cobra.Command, args []string) error {
	// A .env file beside the binary is optional.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Flags win over file and environment.
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if user != "" {
		cfg.Account.User = user
	}

	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	return nil
}

func openStore() (*journal.SQLite, error) {
	return journal.NewSQLite(cfg.Database.Path)
}
