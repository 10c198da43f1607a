package cmd

import (
	"fmt"
	"time"

	"github.com/finfree-dev/finfree/internal/archive"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Close out the selected month and seed the next one",
	RunE:  runArchive,
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List months that are still open",
	RunE:  runArchiveList,
}

func init() {
	archiveCmd.AddCommand(archiveListCmd)
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	key, err := resolveMonth()
	if err != nil {
		return err
	}

	nextKey, err := archive.CloseMonth(st, key, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("  Archived %s\n", key)
	fmt.Printf("  Seeded %s from its figures; edit with `finfree report set --month %s`\n", nextKey, nextKey)
	return nil
}

func runArchiveList(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	open, err := archive.OpenMonths(st)
	if err != nil {
		return err
	}
	if len(open) == 0 {
		fmt.Println("  No open months.")
		return nil
	}
	for _, m := range open {
		fmt.Printf("  %s\n", m)
	}
	return nil
}
