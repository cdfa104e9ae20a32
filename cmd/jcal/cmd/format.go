package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/jcal/foundation/core/error"
	"github.com/msto63/jcal/pkg/jtime"
)

var (
	formatDate   string
	formatTime   string
	formatZone   string
	formatOutput string
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Formatiert ein Jalali-Datum",
	Long: `Baut einen Zeitpunkt aus Datum und Uhrzeit und gibt ihn formatiert aus.

Beispiele:
  jcal format --date 1402-07-15
  jcal format --date 1402-07-15 --time 14:30:00 --format "%d %B %Y %I:%M %p"
  jcal format --date 1402-01-01 --time 12:00:00 --zone Asia/Tehran --format "%H:%M %z"`,
	Args: cobra.NoArgs,
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringVar(&formatDate, "date", "", "Jalali-Datum Y-M-D (Pflicht)")
	formatCmd.Flags().StringVar(&formatTime, "time", "00:00:00", "Uhrzeit H:M:S")
	formatCmd.Flags().StringVar(&formatZone, "zone", "", "IANA-Zone, oder 'naive'")
	formatCmd.Flags().StringVarP(&formatOutput, "format", "f", "", "Ausgabemuster")
}

func runFormat(cmd *cobra.Command, args []string) error {
	if formatDate == "" {
		return mdwerror.New("--date is required").
			WithCode(mdwerror.CodeRequiredField).
			WithOperation("jcal.format")
	}

	parsed, err := jtime.Parse(formatDate+" "+formatTime, "%Y-%m-%d %H:%M:%S")
	if err != nil {
		return err
	}
	zone, err := zoneSetting(formatZone)
	if err != nil {
		return err
	}
	tp, err := jtime.Combine(parsed.Date(), parsed.Clock(), zone)
	if err != nil {
		return err
	}

	f, err := formatter()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), f.Format(tp, outputSetting(formatOutput)))
	return nil
}
