// Package cmd implements the command-line interface for gardentv.
package cmd

import (
	"os"

	"github.com/gardentv-cli/gardentv/catalog"
	"github.com/gardentv-cli/gardentv/garden"
	"github.com/gardentv-cli/gardentv/source"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.SetOut(os.Stdout)
}

// resolveCmd turns a channel address into a playable stream URL.
var resolveCmd = &cobra.Command{
	Use:   "resolve [address]",
	Short: "Resolve a channel address into a playable stream URL",
	Long: `Resolve a channel address into a playable stream URL.

Direct addresses pass through unchanged. Addresses of the form
tvgarden://<country>/<channel-id>, or the pair <country> <channel-id>,
are resolved by scraping the channel page and extracting the first
stream found.`,
	Example: `  gardentv resolve tvgarden://cd/QOfJ38EhuVvyDe
  gardentv resolve cd QOfJ38EhuVvyDe
  gardentv resolve https://example.com/live/master.m3u8`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var stream source.Stream
		if len(args) == 2 {
			stream = source.IndirectStream(args[0], args[1])
		} else {
			stream = source.ParseStream(args[0])
		}

		service := catalog.New(garden.New())
		url, err := service.ResolveIndirect(cmd.Context(), &source.Channel{Stream: stream})
		handleErr(err)

		cmd.Println(url)
	},
}
