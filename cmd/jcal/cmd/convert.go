package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/jcal/foundation/core/error"
	"github.com/msto63/jcal/foundation/utils/timex"
	"github.com/msto63/jcal/pkg/jdate"
	"github.com/msto63/jcal/pkg/jtime"
)

var (
	toGregorian   string
	fromGregorian string
	convertFormat string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Rechnet Daten zwischen Jalali und Gregorianisch um",
	Long: `Rechnet ein Datum zwischen dem Jalali- und dem gregorianischen Kalender um.

Beispiele:
  jcal convert --to-gregorian 1402-01-01          # 2023-03-21
  jcal convert --from-gregorian 2024-03-20        # 1403-01-01
  jcal convert --from-gregorian 21.3.2023 --format "%d %B %Y"`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&toGregorian, "to-gregorian", "", "Jalali-Datum Y-M-D")
	convertCmd.Flags().StringVar(&fromGregorian, "from-gregorian", "", "Gregorianisches Datum")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "%Y-%m-%d", "Ausgabemuster für Jalali-Daten")
	convertCmd.MarkFlagsMutuallyExclusive("to-gregorian", "from-gregorian")
	convertCmd.MarkFlagsOneRequired("to-gregorian", "from-gregorian")
}

func runConvert(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if toGregorian != "" {
		tp, err := jtime.Parse(toGregorian, "%Y-%m-%d")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, tp.Date().ToGregorian().Format(timex.ISO8601Date))
		return nil
	}

	g, err := timex.ParseDate(fromGregorian)
	if err != nil {
		return err
	}
	d := jdate.FromGregorian(g)
	if d.IsZero() {
		return mdwerror.New("date outside the supported Jalali range").
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("jcal.convert").
			WithDetail("gregorian", fromGregorian)
	}

	f, err := formatter()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, d.FormatIn(convertFormat, f.Table()))
	return nil
}
