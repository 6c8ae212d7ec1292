// Package cmd implements the command-line interface for gardentv.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gardentv-cli/gardentv/catalog"
	"github.com/gardentv-cli/gardentv/garden"
	"github.com/gardentv-cli/gardentv/inline"
	"github.com/gardentv-cli/gardentv/query"
	"github.com/gardentv-cli/gardentv/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("country", "c", "", "Search only within one country")
	_ = searchCmd.RegisterFlagCompletionFunc("country", completionCountryNames)

	searchCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON document")

	searchCmd.SetOut(os.Stdout)
}

// searchCmd searches channels by a free-text query.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search channels by name, country, or category",
	Example: `  gardentv search news
  gardentv search -c France sport --json`,
	Args: cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			q           = strings.Join(args, " ")
			countryName = lo.Must(cmd.Flags().GetString("country"))
			asJson      = lo.Must(cmd.Flags().GetBool("json"))
		)

		handleErr(query.Remember(q, 1))

		handleErr(inline.Run(cmd.Context(), &inline.Options{
			Out:     cmd.OutOrStdout(),
			Catalog: catalog.New(garden.New()),
			Country: countryName,
			Query:   q,
			Json:    asJson,
		}))

		if !asJson {
			if suggestion := query.Suggest(q); suggestion.IsPresent() && suggestion.MustGet() != strings.ToLower(q) {
				fmt.Fprintln(os.Stderr, style.Faint("Related: "+suggestion.MustGet()))
			}
		}
	},
}
