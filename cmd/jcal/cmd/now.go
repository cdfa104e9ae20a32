package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/jcal/foundation/core/log"
	"github.com/msto63/jcal/pkg/jtime"
)

var (
	nowZone   string
	nowFormat string
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Zeigt die aktuelle Zeit im Jalali-Kalender",
	Long: `Zeigt das aktuelle Datum und die Uhrzeit im Jalali-Kalender.

Beispiele:
  jcal now                                  # Zone aus der Konfiguration
  jcal now --zone UTC
  jcal now --zone naive --format "%d %B %Y"`,
	Args: cobra.NoArgs,
	RunE: runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)

	nowCmd.Flags().StringVar(&nowZone, "zone", "", "IANA-Zone, oder 'naive'")
	nowCmd.Flags().StringVarP(&nowFormat, "format", "f", "", "Ausgabemuster")
}

func runNow(cmd *cobra.Command, args []string) error {
	zone, err := zoneSetting(nowZone)
	if err != nil {
		return err
	}
	f, err := formatter()
	if err != nil {
		return err
	}

	tp, err := jtime.NowWith(hostClock, zone)
	if err != nil {
		return err
	}
	logger.Debug("now", mdwlog.Fields{"aware": tp.IsAware(), "gregorian": tp.ToGregorian()})

	fmt.Fprintln(cmd.OutOrStdout(), f.Format(tp, outputSetting(nowFormat)))
	return nil
}
