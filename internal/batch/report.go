package batch

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

var opUnits = map[Op]string{
	OpWavelengthToAngularFrequency: "rad/s",
	OpFrequencyToAngularFrequency:  "rad/s",
	OpImpedance:                    "Ω",
	OpWavelengthToWavevector:       "rad/m",
	OpTransverseWavevector:         "rad/m",
	OpAttenuationCoefficient:       "1/m",
}

func formatReal(v Real, digits int, unit string) string {
	if !isFinite(v) {
		return fmt.Sprintf("%v %s", v, unit)
	}
	return humanize.SIWithDigits(v, digits, unit)
}

func formatValue(r Result, digits int) string {
	u := opUnits[r.Op]
	re, im := real(r.Value), imag(r.Value)
	if im == 0 {
		return formatReal(re, digits, u)
	}
	sign := "+"
	if im < 0 {
		sign, im = "-", -im
	}
	return fmt.Sprintf("(%s%s%si) %s", humanize.FtoaWithDigits(re, digits), sign, humanize.FtoaWithDigits(im, digits), u)
}

// Report writes one aligned line per result and a closing summary. Values keep
// at most digits decimals, truncated.
func Report(w io.Writer, results []Result, digits int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	bad := 0
	for _, r := range results {
		var err error
		if r.Err != nil {
			bad++
			_, err = fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", r.Name, r.Op, r.Category, r.Err)
		} else {
			_, err = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Op, r.Category, formatValue(r, digits))
		}
		if err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s evaluations, %s refused\n", humanize.Comma(int64(len(results))), humanize.Comma(int64(bad)))
	return err
}
