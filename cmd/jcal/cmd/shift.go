package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/jcal/foundation/core/error"
	mdwlog "github.com/msto63/jcal/foundation/core/log"
	"github.com/msto63/jcal/foundation/utils/timex"
	"github.com/msto63/jcal/pkg/jtime"
)

var (
	shiftLayout string
	shiftFrom   string
	shiftTo     string
	shiftOutput string
)

var shiftCmd = &cobra.Command{
	Use:   "shift <text>",
	Short: "Verschiebt einen Zeitpunkt in eine andere Zeitzone",
	Long: `Liest einen Zeitpunkt in der Quellzone und gibt denselben Moment in der
Zielzone aus.

Beispiele:
  jcal shift "1402-01-01 00:30:00" --from Asia/Tehran --to UTC
  jcal shift "1402/07/15 14:30" --layout "%Y/%m/%d %H:%M" --to Europe/Berlin --format "%H:%M %Z"`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().StringVarP(&shiftLayout, "layout", "l", "", "Eingabemuster")
	shiftCmd.Flags().StringVar(&shiftFrom, "from", "", "Quellzone (default: konfigurierte Zone)")
	shiftCmd.Flags().StringVar(&shiftTo, "to", "", "Zielzone (Pflicht)")
	shiftCmd.Flags().StringVarP(&shiftOutput, "format", "f", "", "Ausgabemuster (default: output + %z)")
}

func runShift(cmd *cobra.Command, args []string) error {
	if shiftTo == "" {
		return mdwerror.New("--to is required").
			WithCode(mdwerror.CodeRequiredField).
			WithOperation("jcal.shift")
	}

	f, err := formatter()
	if err != nil {
		return err
	}
	parsed, err := f.Parse(args[0], layoutSetting(shiftLayout))
	if err != nil {
		return err
	}

	from, err := zoneSetting(shiftFrom)
	if err != nil {
		return err
	}
	to, err := timex.LoadZone(shiftTo)
	if err != nil {
		return err
	}

	// a naive source is rejected by AtZone
	source, err := jtime.Combine(parsed.Date(), parsed.Clock(), from)
	if err != nil {
		return err
	}
	shifted, err := source.AtZone(to)
	if err != nil {
		return err
	}
	logger.Debug("shifted", mdwlog.Fields{"from": source.String(), "to": shifted.String()})

	pattern := shiftOutput
	if pattern == "" {
		pattern = outputSetting("") + " %z"
	}
	fmt.Fprintln(cmd.OutOrStdout(), f.Format(shifted, pattern))
	return nil
}
