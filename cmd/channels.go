// Package cmd implements the command-line interface for gardentv.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gardentv-cli/gardentv/catalog"
	"github.com/gardentv-cli/gardentv/country"
	"github.com/gardentv-cli/gardentv/filesystem"
	"github.com/gardentv-cli/gardentv/garden"
	"github.com/gardentv-cli/gardentv/inline"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func completionCountryNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return country.Names(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(channelsCmd)

	channelsCmd.Flags().StringP("country", "c", "", "Country name to list channels for")
	_ = channelsCmd.RegisterFlagCompletionFunc("country", completionCountryNames)

	channelsCmd.Flags().StringP("query", "q", "", "Filter channels by a case-insensitive substring")
	channelsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON document")
	channelsCmd.Flags().BoolP("resolve", "r", false, "Resolve indirect references into playable addresses")
	channelsCmd.Flags().StringP("picker", "p", "", "Narrow the listing to one channel: first, last, exact=<name>, index=<n>")
	channelsCmd.Flags().IntP("limit", "l", -1, "Cap the listing length (-1 keeps the configured free limit, 0 disables it)")
	channelsCmd.Flags().StringP("output", "o", "", "Write the listing to a file instead of stdout")

	channelsCmd.SetOut(os.Stdout)
}

// channelsCmd lists the channels of a country, optionally filtered and resolved.
var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List the channels of a country",
	Long: `List the channels of a country, filtered by an optional query.
Without --country an interactive picker is shown; without a terminal the
curated channel set is served instead.`,
	Example: `  gardentv channels --country "Democratic Republic of the Congo"
  gardentv channels -c France -q news --json
  gardentv channels -c France -p first --resolve`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			countryName = lo.Must(cmd.Flags().GetString("country"))
			query       = lo.Must(cmd.Flags().GetString("query"))
			asJson      = lo.Must(cmd.Flags().GetBool("json"))
			resolve     = lo.Must(cmd.Flags().GetBool("resolve"))
			rawPicker   = lo.Must(cmd.Flags().GetString("picker"))
		)

		if countryName == "" && isInteractive() {
			handleErr(survey.AskOne(&survey.Select{
				Message:  "Choose a country",
				Options:  country.Names(),
				PageSize: 15,
			}, &countryName))
		}

		output := lo.Must(cmd.Flags().GetString("output"))

		out := cmd.OutOrStdout()
		if output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			out = file
		}

		service := catalog.New(garden.New())
		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit >= 0 {
			service.Limit = limit
		}

		options := &inline.Options{
			Out:     out,
			Catalog: service,
			Country: countryName,
			Query:   query,
			Json:    asJson,
			Resolve: resolve,
		}

		if rawPicker != "" {
			kind, value := rawPicker, ""
			if k, v, found := cutPicker(rawPicker); found {
				kind, value = k, v
			}

			picker, err := inline.ParseChannelPicker(kind, value)
			handleErr(err)
			options.ChannelPicker = mo.Some(picker)
		}

		handleErr(inline.Run(cmd.Context(), options))
	},
}

func cutPicker(raw string) (kind, value string, found bool) {
	for i, r := range raw {
		if r == '=' || r == ':' {
			return raw[:i], raw[i+1:], true
		}
	}
	return raw, "", false
}

func isInteractive() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode()&os.ModeCharDevice != 0
}

func init() {
	channelsCmd.AddCommand(channelsSchemaCmd)
	channelsSchemaCmd.SetOut(os.Stdout)
}

// channelsSchemaCmd prints the JSON schema of the channels output document.
var channelsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the channels output document",
	Run: func(cmd *cobra.Command, args []string) {
		schema := jsonschema.Reflect(&inline.Output{})

		data, err := json.MarshalIndent(schema, "", "  ")
		handleErr(err)

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	},
}
