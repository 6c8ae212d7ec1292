// Package cmd implements the command-line interface for gardentv.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gardentv-cli/gardentv/catalog"
	"github.com/gardentv-cli/gardentv/filesystem"
	"github.com/gardentv-cli/gardentv/garden"
	"github.com/gardentv-cli/gardentv/icon"
	"github.com/gardentv-cli/gardentv/playlist"
	"github.com/gardentv-cli/gardentv/util"
	"github.com/gardentv-cli/gardentv/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playlistCmd)
}

// playlistCmd serves as the parent command for M3U playlist operations.
var playlistCmd = &cobra.Command{
	Use:   "playlist",
	Short: "Parse and export M3U channel playlists",
}

func init() {
	playlistCmd.AddCommand(playlistParseCmd)

	playlistParseCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON document")
	playlistParseCmd.SetOut(os.Stdout)
}

// playlistParseCmd reads an M3U document and prints its channels.
var playlistParseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an M3U playlist into channels",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		data, err := filesystem.API().ReadFile(args[0])
		handleErr(err)

		channels := playlist.Parse(string(data))

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(channels))
			return
		}

		for _, channel := range channels {
			cmd.Printf("%s (%s, %s)\n", channel.Name, channel.Country, channel.Category)
			cmd.Println("  " + channel.Stream.String())
		}
	},
}

func init() {
	playlistCmd.AddCommand(playlistExportCmd)

	playlistExportCmd.Flags().StringP("country", "c", "", "Country to export the channels of")
	_ = playlistExportCmd.RegisterFlagCompletionFunc("country", completionCountryNames)
	lo.Must0(playlistExportCmd.MarkFlagRequired("country"))

	playlistExportCmd.Flags().StringP("output", "o", "", "Target file (defaults to the playlists directory)")
}

// playlistExportCmd writes a country's channels as an M3U playlist.
var playlistExportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export a country's channels as an M3U playlist",
	Example: `  gardentv playlist export -c France -o france.m3u`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			countryName = lo.Must(cmd.Flags().GetString("country"))
			output      = lo.Must(cmd.Flags().GetString("output"))
		)

		service := catalog.New(garden.New())
		channels := service.ChannelsFor(cmd.Context(), countryName)

		if len(channels) == 0 {
			handleErr(fmt.Errorf("no channels for %q", countryName))
		}

		if output == "" {
			output = filepath.Join(where.Playlists(), util.SanitizeFilename(countryName)+".m3u")
		}

		document := playlist.Write(channels)
		handleErr(filesystem.API().WriteFile(output, []byte(document), 0644))

		fmt.Printf(
			"%s exported %s to %s\n",
			icon.Get(icon.Success),
			util.Quantify(len(channels), "channel", "channels"),
			output,
		)
	},
}
