// Package cmd implements the command-line interface for gardentv.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gardentv-cli/gardentv/catalog"
	"github.com/gardentv-cli/gardentv/garden"
	"github.com/gardentv-cli/gardentv/history"
	"github.com/gardentv-cli/gardentv/icon"
	"github.com/gardentv-cli/gardentv/key"
	"github.com/gardentv-cli/gardentv/open"
	"github.com/gardentv-cli/gardentv/source"
	"github.com/gardentv-cli/gardentv/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("country", "c", "", "Country to look the channel up in")
	_ = watchCmd.RegisterFlagCompletionFunc("country", completionCountryNames)

	watchCmd.Flags().StringP("app", "a", "", "Application to play the stream with (overrides watch.app)")
}

// watchCmd resolves a channel and hands the stream to a local player.
var watchCmd = &cobra.Command{
	Use:   "watch [channel]",
	Short: "Resolve a channel and play it",
	Long: `Resolve a channel and hand the playable address to a local player.
The channel is matched by name within the chosen country; multiple matches
open an interactive picker.`,
	Example: `  gardentv watch RTNC -c "Democratic Republic of the Congo"
  gardentv watch "France 24" --app mpv`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			countryName = lo.Must(cmd.Flags().GetString("country"))
			app         = lo.Must(cmd.Flags().GetString("app"))
		)

		if app == "" {
			app = viper.GetString(key.WatchApp)
		}

		service := catalog.New(garden.New())

		var channels []*source.Channel
		if countryName != "" {
			channels = service.ChannelsFor(cmd.Context(), countryName)
		} else {
			channels = service.AllChannels()
		}

		matches := catalog.Search(channels, args[0])
		if len(matches) == 0 {
			handleErr(fmt.Errorf("no channel matching %q", args[0]))
		}

		channel := matches[0]
		if len(matches) > 1 && isInteractive() {
			names := lo.Map(matches, func(c *source.Channel, _ int) string {
				return fmt.Sprintf("%s [%s]", c.Name, c.Country)
			})

			var picked int
			handleErr(survey.AskOne(&survey.Select{
				Message: util.Quantify(len(matches), "channel matches", "channels match") + ", choose one",
				Options: names,
			}, &picked))

			channel = matches[picked]
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Resolving %s...", icon.Get(icon.Progress), channel.Name))
		url, err := service.ResolveIndirect(cmd.Context(), channel)
		erase()
		handleErr(err)

		if viper.GetBool(key.HistorySaveOnWatch) {
			handleErr(history.Save(channel, url))
		}

		fmt.Printf("%s Watching %s\n", icon.Get(icon.TV), channel.Name)
		handleErr(open.StartWith(url, app))
	},
}
