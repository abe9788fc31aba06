package main

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// pointsFile is the YAML layout of a seed file:
//
//	points:
//	  - {x: 0, y: 1}
//	  - {x: "1.5", y: 2}
type pointsFile struct {
	Points []pointEntry `yaml:"points"`
}

// pointEntry keeps raw scalars so ints, floats and numeric strings all decode.
type pointEntry struct {
	X any `yaml:"x"`
	Y any `yaml:"y"`
}

// loadPointsFile reads a YAML seed file and returns its samples in file order.
func loadPointsFile(path string) (xs, ys []float64, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read points file: %w", err)
	}

	var pf pointsFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, nil, fmt.Errorf("failed to parse points file %s: %w", path, err)
	}

	xs = make([]float64, 0, len(pf.Points))
	ys = make([]float64, 0, len(pf.Points))
	for i, p := range pf.Points {
		if p.X == nil || p.Y == nil {
			return nil, nil, fmt.Errorf("point %d in %s: both x and y are required", i, path)
		}
		x, err := cast.ToFloat64E(p.X)
		if err != nil {
			return nil, nil, fmt.Errorf("point %d in %s: invalid x: %w", i, path, err)
		}
		y, err := cast.ToFloat64E(p.Y)
		if err != nil {
			return nil, nil, fmt.Errorf("point %d in %s: invalid y: %w", i, path, err)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}
