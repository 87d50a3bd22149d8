/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/agentgrade/agentgrade/metrics"
	"github.com/agentgrade/agentgrade/tools"
	"github.com/agentgrade/agentgrade/trace"
)

// Runner drives a tool-using conversation against Claude.
type Runner struct {
	client      anthropic.Client
	model       string
	system      string
	maxTokens   int64
	temperature float64
	tools       map[string]tools.Tool
	genai       *metrics.GenAI
}

// New creates a Runner with the given client and options.
func New(client anthropic.Client, opts ...Option) (*Runner, error) {
	r := &Runner{
		client:      client,
		model:       "claude-sonnet-4@20250514",
		maxTokens:   8192,
		temperature: 0.1,
		tools:       make(map[string]tools.Tool),
		genai:       metrics.NewGenAI("agentgrade.agent"),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return r, nil
}

// Run executes the conversation for the query, invoking observe for every
// update in delivery order. It returns once the model produces a turn with
// no tool calls.
func (r *Runner) Run(ctx context.Context, query string, observe func(trace.Update)) (err error) {
	log := clog.FromContext(ctx)

	tr := otel.Tracer("agentgrade.agent", oteltrace.WithInstrumentationVersion("1.0.0"))
	ctx, span := tr.Start(ctx, "agent.run",
		oteltrace.WithAttributes(attribute.String("agent.query", query)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(r.model),
		MaxTokens: r.maxTokens,
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(query),
			},
		}},
		Tools: r.toolDefs(),
	}
	params.Temperature = anthropic.Float(r.temperature)
	if r.system != "" {
		params.System = []anthropic.TextBlockParam{{Text: r.system}}
	}

	log.With("model", r.model).With("tools", len(r.tools)).
		Info("Starting agent run")

	for {
		stream := r.client.Messages.NewStreaming(ctx, params)
		var message anthropic.Message
		for stream.Next() {
			if err := message.Accumulate(stream.Current()); err != nil {
				return fmt.Errorf("failed to accumulate event: %w", err)
			}
		}
		if err := stream.Err(); err != nil {
			return fmt.Errorf("failed to stream model response: %w", err)
		}

		if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
			r.genai.RecordTokens(ctx, r.model, message.Usage.InputTokens, message.Usage.OutputTokens)
		}

		var toolUses []anthropic.ToolUseBlock
		for _, content := range message.Content {
			switch content.Type {
			case "text":
				observe(trace.TextContent{Text: content.Text})
			case "tool_use":
				toolUses = append(toolUses, anthropic.ToolUseBlock{
					ID:    content.ID,
					Name:  content.Name,
					Input: content.Input,
				})
			}
		}

		if len(toolUses) == 0 {
			log.Info("Agent run complete")
			return nil
		}

		// Echo the model's turn, then answer every tool call.
		params.Messages = append(params.Messages, message.ToParam())

		toolResults := make([]anthropic.ContentBlockParamUnion, 0, len(toolUses))
		for _, toolUse := range toolUses {
			r.genai.RecordToolCall(ctx, r.model, toolUse.Name)
			observe(trace.ToolCallRequest{
				ID:   toolUse.ID,
				Name: toolUse.Name,
				Args: decodeArgs(ctx, toolUse.Input),
			})

			resultText, isError := r.invokeTool(ctx, toolUse)
			observe(trace.ToolCallResult{ID: toolUse.ID, Result: resultText})

			toolResults = append(toolResults, anthropic.ContentBlockParamUnion{
				OfToolResult: &anthropic.ToolResultBlockParam{
					ToolUseID: toolUse.ID,
					IsError:   anthropic.Bool(isError),
					Content: []anthropic.ToolResultBlockParamContentUnion{{
						OfText: &anthropic.TextBlockParam{Text: resultText},
					}},
				},
			})
		}

		params.Messages = append(params.Messages, anthropic.MessageParam{
			Role:    anthropic.MessageParamRoleUser,
			Content: toolResults,
		})
	}
}

// Capture runs the query and returns the finalized execution record.
func (r *Runner) Capture(ctx context.Context, query string) (*trace.ExecutionRecord, error) {
	recorder := trace.NewRecorder(query)
	if err := r.Run(ctx, query, func(u trace.Update) {
		recorder.Observe(ctx, u)
	}); err != nil {
		return nil, err
	}
	return recorder.Record(), nil
}

// invokeTool dispatches one tool call, converting unknown tools and handler
// failures into error result text for the model.
func (r *Runner) invokeTool(ctx context.Context, toolUse anthropic.ToolUseBlock) (string, bool) {
	log := clog.FromContext(ctx)
	log.With("tool", toolUse.Name).With("id", toolUse.ID).
		Info("Executing tool call")

	tool, ok := r.tools[toolUse.Name]
	if !ok {
		log.With("tool", toolUse.Name).Error("Unknown tool requested")
		return fmt.Sprintf("unknown tool: %q", toolUse.Name), true
	}

	out, err := tool.Handler(ctx, decodeArgs(ctx, toolUse.Input))
	if err != nil {
		log.With("tool", toolUse.Name).With("error", err).
			Error("Tool handler failed")
		return fmt.Sprintf("tool %q failed: %v", toolUse.Name, err), true
	}
	return out, false
}

// toolDefs converts the registered tools into Claude tool definitions.
func (r *Runner) toolDefs() []anthropic.ToolUnionParam {
	defs := make([]anthropic.ToolUnionParam, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, claudeToolParam(t.Def))
	}
	return defs
}

// claudeToolParam maps a provider-independent tool definition onto the
// Claude tool schema shape.
func claudeToolParam(def tools.Definition) anthropic.ToolUnionParam {
	var schema struct {
		Properties map[string]any `json:"properties"`
		Required   []string       `json:"required"`
	}
	if def.InputSchema != nil {
		// The reflected schema is already valid JSON schema; round-trip it
		// into the property map shape the SDK wants.
		if b, err := json.Marshal(def.InputSchema); err == nil {
			_ = json.Unmarshal(b, &schema)
		}
	}
	return anthropic.ToolUnionParam{
		OfTool: &anthropic.ToolParam{
			Name:        def.Name,
			Description: anthropic.String(def.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: schema.Properties,
				Required:   schema.Required,
			},
		},
	}
}

// decodeArgs parses the raw tool input into an argument map. A decode
// failure yields an empty map; the handler reports the missing parameters.
func decodeArgs(ctx context.Context, input json.RawMessage) map[string]any {
	args := map[string]any{}
	if len(input) == 0 {
		return args
	}
	if err := json.Unmarshal(input, &args); err != nil {
		clog.FromContext(ctx).With("error", err).
			Warn("Failed to parse tool input")
	}
	return args
}
