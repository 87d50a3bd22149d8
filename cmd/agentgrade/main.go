/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main runs the agentgrade demo pipeline: ask the sample agent a
// question, capture the execution record from its update stream, score the
// record against the four rubrics, and print the results.
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	"github.com/sethvargo/go-envconfig"
	"golang.org/x/oauth2"
	"google.golang.org/genai"

	"github.com/agentgrade/agentgrade/agent"
	"github.com/agentgrade/agentgrade/cloud"
	"github.com/agentgrade/agentgrade/grader"
	"github.com/agentgrade/agentgrade/report"
	"github.com/agentgrade/agentgrade/tools"
)

type config struct {
	// Query is the question sent to the sample agent.
	Query string `env:"QUERY,default=What's the weather like in Tokyo today?"`

	// AgentModel is the Claude model that runs the agent conversation.
	AgentModel string `env:"AGENT_MODEL,default=claude-sonnet-4@20250514"`

	// GraderProvider selects the grading model backend: anthropic, openai,
	// or gemini. API keys come from each SDK's own environment variables.
	GraderProvider string `env:"GRADER_PROVIDER,default=anthropic"`
	GraderModel    string `env:"GRADER_MODEL,default=claude-sonnet-4@20250514"`

	// ThresholdsFile optionally points at a YAML file with per-rubric pass
	// thresholds. Absent rubrics keep the 3.0 default.
	ThresholdsFile string `env:"THRESHOLDS_FILE"`

	// WeatherSeed seeds the mock weather tool. Zero means a fresh seed per
	// run; any other value makes the tool deterministic.
	WeatherSeed uint64 `env:"WEATHER_SEED,default=0"`

	// CloudEndpoint and CloudToken configure the optional hosted project
	// connectivity check. The check is skipped when no endpoint is set and
	// its failure never aborts the run.
	CloudEndpoint string `env:"CLOUD_ENDPOINT"`
	CloudToken    string `env:"CLOUD_TOKEN"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	// Run the agent and capture its execution record.
	seed := cfg.WeatherSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	weather := tools.NewWeatherTool(rand.New(rand.NewPCG(seed, seed)))

	runner, err := agent.New(anthropic.NewClient(),
		agent.WithModel(cfg.AgentModel),
		agent.WithTools(weather),
	)
	if err != nil {
		clog.FatalContextf(ctx, "creating agent runner: %v", err)
	}

	clog.InfoContextf(ctx, "Running agent with query: %s", cfg.Query)
	record, err := runner.Capture(ctx, cfg.Query)
	if err != nil {
		clog.FatalContextf(ctx, "agent run failed: %v", err)
	}
	fmt.Println(record.String())

	// Score the record against the rubrics.
	client, err := gradingClient(ctx, cfg)
	if err != nil {
		clog.FatalContextf(ctx, "creating grading client: %v", err)
	}

	opts := []grader.Option{}
	if cfg.ThresholdsFile != "" {
		thresholds, err := grader.LoadThresholds(cfg.ThresholdsFile)
		if err != nil {
			clog.FatalContextf(ctx, "loading thresholds: %v", err)
		}
		opts = append(opts, grader.WithThresholds(thresholds))
	}

	g, err := grader.New(client, opts...)
	if err != nil {
		clog.FatalContextf(ctx, "creating grader: %v", err)
	}

	scores := g.Grade(ctx, record)

	if err := report.WriteJSON(os.Stdout, record, scores); err != nil {
		clog.FatalContextf(ctx, "writing JSON report: %v", err)
	}
	if err := report.WriteTable(os.Stdout, scores); err != nil {
		clog.FatalContextf(ctx, "writing score table: %v", err)
	}

	// Optional hosted-project connectivity check; failures are logged and
	// ignored so local results always come through.
	if cfg.CloudEndpoint != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.CloudToken})
		cc, err := cloud.NewClient(ctx, cfg.CloudEndpoint, ts)
		if err != nil {
			clog.WarnContextf(ctx, "hosted project client unavailable: %v", err)
		} else if err := cc.CheckConnectivity(ctx); err != nil {
			clog.WarnContextf(ctx, "hosted project unreachable, using local results only: %v", err)
		}
	}
}

// gradingClient builds the grading model client for the configured provider.
func gradingClient(ctx context.Context, cfg config) (grader.Client, error) {
	switch cfg.GraderProvider {
	case "anthropic":
		return grader.NewAnthropicClient(anthropic.NewClient(), cfg.GraderModel), nil
	case "openai":
		return grader.NewOpenAIClient(openai.NewClient(), cfg.GraderModel), nil
	case "gemini":
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("creating gemini client: %w", err)
		}
		return grader.NewGeminiClient(client, cfg.GraderModel), nil
	default:
		return nil, fmt.Errorf("unknown grader provider %q", cfg.GraderProvider)
	}
}
