package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-chartgen/pkg/chart"
	"github.com/goliatone/go-chartgen/pkg/chartspec"
)

// promptDefinition gathers a chart definition interactively.
func promptDefinition() (chartspec.Definition, error) {
	var def chartspec.Definition

	if err := survey.AskOne(&survey.Input{
		Message: "Chart title:",
		Default: "Chart",
	}, &def.Title); err != nil {
		return def, err
	}

	var rawValues string
	if err := survey.AskOne(&survey.Input{
		Message: "Values (comma separated):",
		Help:    "Example: 0, 1, 2, 3, 2, 1, 0",
	}, &rawValues, survey.WithValidator(func(ans interface{}) error {
		input, _ := ans.(string)
		_, err := parseValues(input)
		return err
	})); err != nil {
		return def, err
	}
	values, err := parseValues(rawValues)
	if err != nil {
		return def, err
	}
	def.Values = values

	if err := survey.AskOne(&survey.Input{
		Message: "Bar color:",
		Default: chart.DefaultColor,
	}, &def.Chart.Color); err != nil {
		return def, err
	}

	def.Chart.BarSpacing, err = promptNumber("Bar spacing:", chart.DefaultBarSpacing)
	if err != nil {
		return def, err
	}
	def.Chart.BarHeight, err = promptNumber("Bar height:", chart.DefaultBarHeight)
	if err != nil {
		return def, err
	}
	def.Chart.GraphWidth, err = promptNumber("Graph width (0 derives from the series):", 0)
	if err != nil {
		return def, err
	}

	return def, nil
}

func promptNumber(message string, defaultValue float64) (float64, error) {
	var raw string
	err := survey.AskOne(&survey.Input{
		Message: message,
		Default: strconv.FormatFloat(defaultValue, 'f', -1, 64),
	}, &raw, survey.WithValidator(func(ans interface{}) error {
		input, _ := ans.(string)
		_, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
		return err
	}))
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

func parseValues(input string) ([]float64, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("at least one value is required")
	}

	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", field)
		}
		values = append(values, value)
	}
	return values, nil
}
