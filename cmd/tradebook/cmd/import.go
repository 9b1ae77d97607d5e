package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwhitt/tradebook/importer"
	"github.com/mwhitt/tradebook/journal"
	"github.com/mwhitt/tradebook/statement"
)

var importCmd = &cobra.Command{
	Use:   "import <statement.csv>",
	Short: "Import trades from a thinkorswim account statement",
	Long: `Import reconciles the Account Trade History section of a thinkorswim
account statement export into completed trades and stores them.

Re-importing the same statement is safe: trades that are already stored are
skipped. The summary is printed even when the import partially fails.

Examples:
  tradebook import statement.csv
  tradebook import statement.csv --user alice --atomic`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importAtomic bool

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importAtomic, "atomic", false, "wrap the whole import in one transaction")
}

func runImport(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read statement: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	rec := statement.NewReconciler(
		statement.WithLocation(loc),
		statement.WithLogger(log),
	)

	res, err := rec.Reconcile(string(raw))
	if errors.Is(err, statement.ErrNoTradeSection) {
		fmt.Println("No trades found in statement.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reconcile statement: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	atomic := importAtomic || cfg.Import.Atomic
	gate := importer.NewGate(store, log)

	var sum importer.Summary
	if atomic {
		err = store.WithTx(cmd.Context(), func(tx *journal.SQLite) error {
			sum, err = importer.NewGate(tx, log).Persist(cmd.Context(), cfg.Account.User, res)
			return err
		})
	} else {
		sum, err = gate.Persist(cmd.Context(), cfg.Account.User, res)
	}

	// The summary is reported even when the batch failed partway.
	fmt.Println(sum)
	if err != nil {
		return fmt.Errorf("import failed after %d trades: %w", sum.Created, err)
	}
	return nil
}
