package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/jcal/foundation/utils/timex"
	"github.com/msto63/jcal/internal/tui"
	"github.com/msto63/jcal/pkg/jtime"
)

var (
	inspectLayout string
	inspectZone   string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <text>",
	Short: "Zeigt die Felder eines Zeitpunkts",
	Long: `Parst einen Zeitpunkt und zeigt alle Felder in einer Tabelle.

Beispiele:
  jcal inspect "1402-07-15 14:30:00"
  jcal inspect "15 مهر 1402" --layout "%d %B %Y" --zone Asia/Tehran`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectLayout, "layout", "l", "", "Eingabemuster")
	inspectCmd.Flags().StringVar(&inspectZone, "zone", "naive", "Zone für den Zeitpunkt, oder 'naive'")
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := formatter()
	if err != nil {
		return err
	}
	table := f.Table()

	parsed, err := f.Parse(args[0], layoutSetting(inspectLayout))
	if err != nil {
		return err
	}
	zone, err := zoneSetting(inspectZone)
	if err != nil {
		return err
	}
	tp, err := jtime.Combine(parsed.Date(), parsed.Clock(), zone)
	if err != nil {
		return err
	}

	hour12, _ := tp.To12h()
	fields := []tui.Field{
		{Label: table.Label("year"), Value: strconv.Itoa(tp.Year())},
		{Label: table.Label("month"), Value: fmt.Sprintf("%d (%s)", tp.Month(), table.Month(tp.Month()))},
		{Label: table.Label("day"), Value: strconv.Itoa(tp.Day())},
		{Label: table.Label("hour"), Value: fmt.Sprintf("%d (%d)", tp.Hour(), hour12)},
		{Label: table.Label("minute"), Value: strconv.Itoa(tp.Minute())},
		{Label: table.Label("second"), Value: strconv.Itoa(tp.Second())},
		{Label: table.Label("period"), Value: f.Format(tp, "%p")},
		{Label: table.Label("gregorian"), Value: tp.ToGregorian().Format(timex.BusinessDateTime)},
		{Label: table.Label("aware"), Value: strconv.FormatBool(tp.IsAware())},
	}
	if tp.IsAware() {
		fields = append(fields,
			tui.Field{Label: table.Label("zone"), Value: tp.Zone().Name()},
			tui.Field{Label: table.Label("offset"), Value: f.Format(tp, "%z")},
		)
	}

	subtitle := "naive"
	if tp.IsAware() {
		subtitle = tp.Zone().Name()
	}
	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderFields(f.Format(tp, "%d %B %Y"), subtitle, fields))
	return nil
}
