/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package tools

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// WeatherParams is the input contract for the mock weather tool.
type WeatherParams struct {
	Location string `json:"location" jsonschema:"required,description=The city to get the weather for"`
}

var weatherConditions = []string{
	"sunny", "cloudy", "rainy", "stormy", "snowy", "foggy",
}

// NewWeatherTool returns a mock weather tool backed by the provided random
// source. The source is injected so tests can seed it and assert exact
// output; there is no process-global random state.
func NewWeatherTool(rng *rand.Rand) Tool {
	return Tool{
		Def: Definition{
			Name:        "get_weather",
			Description: "Get the current weather for a location.",
			InputSchema: Schema[WeatherParams](),
		},
		Handler: func(_ context.Context, args map[string]any) (string, error) {
			location, err := Param[string](args, "location")
			if err != nil {
				return "", err
			}
			condition := weatherConditions[rng.IntN(len(weatherConditions))]
			temperature := rng.IntN(36) - 5 // -5C to 30C
			return fmt.Sprintf("The weather in %s is %s with a high of %dC.",
				location, condition, temperature), nil
		},
	}
}
