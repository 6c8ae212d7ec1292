// Package cmd implements the command-line interface for gardentv.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gardentv-cli/gardentv/color"
	"github.com/gardentv-cli/gardentv/country"
	"github.com/gardentv-cli/gardentv/garden"
	"github.com/gardentv-cli/gardentv/style"
	"github.com/gardentv-cli/gardentv/util"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func errUnknownContinent(name string) error {
	closest := lo.MinBy(country.ContinentNames(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return fmt.Errorf(
		"unknown continent %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}

func init() {
	rootCmd.AddCommand(countriesCmd)

	countriesCmd.Flags().StringP("continent", "c", "", "Show only the countries of one continent")
	_ = countriesCmd.RegisterFlagCompletionFunc("continent", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return country.ContinentNames(), cobra.ShellCompDirectiveNoFileComp
	})

	countriesCmd.Flags().Bool("codes", false, "Print the dataset country codes instead of display names")

	countriesCmd.SetOut(os.Stdout)
}

// countriesCmd lists the countries the catalog can be browsed by.
var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List the browsable countries, grouped by continent",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			continent = lo.Must(cmd.Flags().GetString("continent"))
			codes     = lo.Must(cmd.Flags().GetBool("codes"))
		)

		if codes {
			for _, code := range garden.New().AvailableCountries(cmd.Context()) {
				cmd.Println(code)
			}
			return
		}

		width, _, err := util.TerminalSize()
		if err != nil || width <= 0 {
			width = 80
		}

		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render

		continents := country.ContinentNames()
		if continent != "" {
			if country.CountriesIn(continent) == nil {
				handleErr(errUnknownContinent(continent))
			}
			continents = []string{continent}
		}

		for i, name := range continents {
			countries := country.CountriesIn(name)

			cmd.Printf("%s %s\n", headerStyle(name), style.Faint(util.Quantify(len(countries), "country", "countries")))
			cmd.Println(wordwrap.String(strings.Join(countries, ", "), width))

			if i < len(continents)-1 {
				cmd.Println()
			}
		}
	},
}
