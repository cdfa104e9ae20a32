package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/jcal/foundation/core/log"
)

var (
	parseLayout string
	parseOutput string
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parst einen Jalali-Zeitpunkt",
	Long: `Liest einen Zeitpunkt nach einem Muster ein und gibt ihn neu formatiert aus.
Persische und arabisch-indische Ziffern werden akzeptiert.

Beispiele:
  jcal parse "15 مهر 1402" --layout "%d %B %Y" --output "%Y-%m-%d"
  jcal parse "۱۴۰۲/۰۱/۰۱ ۰۳:۱۵ ب.ظ" --layout "%Y/%m/%d %I:%M %p"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseLayout, "layout", "l", "", "Eingabemuster")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Ausgabemuster")
}

func runParse(cmd *cobra.Command, args []string) error {
	f, err := formatter()
	if err != nil {
		return err
	}

	layout := layoutSetting(parseLayout)
	tp, err := f.Parse(args[0], layout)
	if err != nil {
		return err
	}
	logger.Debug("parsed", mdwlog.Fields{"text": args[0], "layout": layout, "value": tp.String()})

	fmt.Fprintln(cmd.OutOrStdout(), f.Format(tp, outputSetting(parseOutput)))
	return nil
}
