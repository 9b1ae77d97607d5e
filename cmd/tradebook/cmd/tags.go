package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage strategy tags",
}

var tagsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default strategy tags",
	Args:  cobra.NoArgs,
	RunE:  runTagsSeed,
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tags",
	Args:  cobra.NoArgs,
	RunE:  runTagsList,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsSeedCmd)
	tagsCmd.AddCommand(tagsListCmd)
}

func runTagsSeed(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	created, err := store.SeedDefaultTags(cmd.Context())
	if err != nil {
		return fmt.Errorf("seed tags: %w", err)
	}

	if len(created) == 0 {
		fmt.Println("Default tags already present.")
		return nil
	}
	for _, name := range created {
		fmt.Printf("Created tag %q\n", name)
	}
	return nil
}

func runTagsList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	tags, err := store.ListTags(cmd.Context())
	if err != nil {
		return fmt.Errorf("list tags: %w", err)
	}

	for _, t := range tags {
		marker := ""
		if t.IsDefault {
			marker = " (default)"
		}
		fmt.Printf("%-24s %s%s\n", t.Name, t.Description, marker)
	}
	return nil
}
