// Package feed produces the raw (code, arguments) records the report consumes.
package feed

import (
	"fmt"

	"github.com/spf13/cast"
)

// Package is one raw sensor record: an activity code and its positional readings
type Package struct {
	Code string    `mapstructure:"code" json:"code" yaml:"code"`
	Data []float64 `mapstructure:"data" json:"data" yaml:"data"`
}

// Default returns the recorded sessions reported when nothing else is configured
func Default() []Package {
	return []Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// FromArgs builds a Package from command line arguments: the code followed by its readings
func FromArgs(args []string) (Package, error) {
	if len(args) == 0 {
		return Package{}, fmt.Errorf("missing activity code")
	}

	data := make([]float64, 0, len(args)-1)
	for i, arg := range args[1:] {
		value, err := cast.ToFloat64E(arg)
		if err != nil {
			return Package{}, fmt.Errorf("argument %d (%q): %w", i+1, arg, err)
		}
		data = append(data, value)
	}
	return Package{Code: args[0], Data: data}, nil
}
