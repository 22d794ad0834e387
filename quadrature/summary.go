package quadrature

import (
	"fmt"

	"github.com/labquad/integral/utils"
	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics of the function values of a table.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// Summary computes descriptive statistics of the function values.
// It returns an error if the table is empty.
func (i Integral) Summary() (s Summary, err error) {

	data := stats.Float64Data(i.values)

	if s.Min, err = data.Min(); err != nil {
		return s, fmt.Errorf("cannot Summary: %w", err)
	}

	if s.Max, err = data.Max(); err != nil {
		return s, fmt.Errorf("cannot Summary: %w", err)
	}

	if s.Mean, err = data.Mean(); err != nil {
		return s, fmt.Errorf("cannot Summary: %w", err)
	}

	if s.Median, err = data.Median(); err != nil {
		return s, fmt.Errorf("cannot Summary: %w", err)
	}

	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return s, fmt.Errorf("cannot Summary: %w", err)
	}

	return
}

func (s Summary) String() string {
	return fmt.Sprintf("min=%s max=%s mean=%s median=%s stddev=%s",
		utils.FormatFloat(s.Min),
		utils.FormatFloat(s.Max),
		utils.FormatFloat(s.Mean),
		utils.FormatFloat(s.Median),
		utils.FormatFloat(s.StdDev))
}
