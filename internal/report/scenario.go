// internal/report/scenario.go
package report

import (
	"fmt"
	"image"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario: набор кликов из файла, чтобы один и тот же прогон можно было
// повторить на разных машинах.
//
//	points:
//	  - [400, 300]
//	  - [480, 300]
type Scenario struct {
	Points [][2]int `yaml:"points"`
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) ([]image.Point, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: read scenario: %w", err)
	}
	return ParseScenario(file)
}

func ParseScenario(data []byte) ([]image.Point, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("report: unmarshal scenario: %w", err)
	}
	if len(sc.Points) == 0 {
		return nil, fmt.Errorf("report: scenario has no points")
	}
	points := make([]image.Point, len(sc.Points))
	for i, p := range sc.Points {
		points[i] = image.Pt(p[0], p[1])
	}
	return points, nil
}
