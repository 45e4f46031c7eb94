package config

import (
	"os"

	"liftsim/src/elev"
	"liftsim/src/types"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Scenario is a building and the requests to simulate in it.
type Scenario struct {
	Floors     int
	StartFloor int
	Requests   []types.Request
}

type scenarioFile struct {
	Floors     int           `yaml:"floors"`
	StartFloor int           `yaml:"start_floor"`
	Requests   []requestFile `yaml:"requests"`
}

type requestFile struct {
	Time        int    `yaml:"time"`
	Floor       int    `yaml:"floor"`
	Direction   string `yaml:"direction"`
	Destination int    `yaml:"destination"`
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, errors.Wrap(err, "read scenario")
	}
	scenario, err := ParseScenario(data)
	if err != nil {
		return Scenario{}, errors.Wrapf(err, "scenario %s", path)
	}
	return scenario, nil
}

// ParseScenario decodes a YAML scenario. Missing floors and start floor get the defaults.
// Floor ranges are not checked here; the car rejects requests it cannot serve.
func ParseScenario(data []byte) (Scenario, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Scenario{}, errors.Wrap(err, "decode scenario")
	}
	scenario := Scenario{
		Floors:     file.Floors,
		StartFloor: file.StartFloor,
		Requests:   make([]types.Request, 0, len(file.Requests)),
	}
	if scenario.Floors == 0 {
		scenario.Floors = DefaultNumFloors
	}
	if scenario.StartFloor == 0 {
		scenario.StartFloor = DefaultStartFloor
	}
	for i, req := range file.Requests {
		dir, err := elev.ParseDir(req.Direction)
		if err != nil {
			return Scenario{}, errors.Wrapf(err, "request %d", i)
		}
		scenario.Requests = append(scenario.Requests, types.Request{
			Time:        req.Time,
			Floor:       req.Floor,
			Dir:         dir,
			Destination: req.Destination,
		})
	}
	return scenario, nil
}

// Reference is the regression scenario: ten floors, starting at the first.
func Reference() Scenario {
	return Scenario{
		Floors:     10,
		StartFloor: 1,
		Requests: []types.Request{
			{Time: 1, Floor: 5, Dir: types.D_Down, Destination: 2},
			{Time: 2, Floor: 8, Dir: types.D_Up, Destination: 10},
			{Time: 3, Floor: 4, Dir: types.D_Up, Destination: 9},
			{Time: 7, Floor: 5, Dir: types.D_Down, Destination: 1},
		},
	}
}
