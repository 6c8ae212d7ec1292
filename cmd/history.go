// Package cmd implements the command-line interface for gardentv.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/gardentv-cli/gardentv/color"
	"github.com/gardentv-cli/gardentv/history"
	"github.com/gardentv-cli/gardentv/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON document")
	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists previously watched channels, most recent first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously watched channels",
	Run: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		saved, err := history.Get()
		handleErr(err)

		records := lo.Values(saved)
		slices.SortFunc(records, func(a, b *history.SavedChannel) int {
			return b.WatchedAt.Compare(a.WatchedAt)
		})

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(records))
			return
		}

		for _, record := range records {
			cmd.Printf(
				"%s %s %s\n",
				style.Bold(record.Name),
				style.Fg(color.Purple)("["+record.Country+"]"),
				style.Faint(record.WatchedAt.Format("2006-01-02 15:04")),
			)
		}
	},
}
