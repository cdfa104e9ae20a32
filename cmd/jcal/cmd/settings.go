package cmd

import (
	"strings"

	"github.com/msto63/jcal/foundation/utils/stringx"
	"github.com/msto63/jcal/foundation/utils/timex"
	"github.com/msto63/jcal/pkg/jtime"
)

// zoneSetting resolves a zone flag against the configured default. The
// names "naive" and "none" select a naive value.
func zoneSetting(flag string) (timex.Zone, error) {
	name := stringx.FirstNonBlank(flag, cfg.GetString("zone"))
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "naive", "none":
		return nil, nil
	}
	return timex.LoadZone(name)
}

// formatter returns the formatter for the configured locale
func formatter() (*jtime.Formatter, error) {
	return jtime.NewFormatterFor(cfg.GetString("locale"))
}

func layoutSetting(flag string) string {
	return stringx.FirstNonBlank(flag, cfg.GetString("layout"))
}

func outputSetting(flag string) string {
	return stringx.FirstNonBlank(flag, cfg.GetString("output"))
}
