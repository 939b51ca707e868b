package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/firebase/genkit/go/genkit"

	"github.com/ebalda/wayfarer/log"
)

// SystemPromptTemplate frames the JSON tool-call protocol for models
// without native tool support.
const SystemPromptTemplate = `You are a helpful travel assistant. You have access to the following tools:

%s

Protocol:
1. To call a tool, output ONLY a JSON object in this format: {"tool": "toolName", "input": {...}}
2. Do not add any text before or after the JSON when calling a tool.
3. When you receive a Tool Result, use it to proceed.
4. If you have the final answer, output the text directly (no JSON).

Current Date: %s
User Query: %s`

const defaultMaxSteps = 8

// ToolCallResult records one tool invocation made while answering a query
type ToolCallResult struct {
	ToolName  string      `json:"tool_name"`
	Input     interface{} `json:"input"`
	Output    interface{} `json:"output"`
	Error     string      `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Agent drives an LLM through the JSON tool-call protocol until it
// produces a final text answer.
type Agent struct {
	flow       FlowRunner
	llm        LLMClient
	transcript []ToolCallResult
}

// FlowRunner defines the interface for running a flow
type FlowRunner interface {
	Run(ctx context.Context, input string) (string, error)
}

// Answer runs one query through the protocol loop. The transcript of
// the previous query is discarded.
func (a *Agent) Answer(ctx context.Context, query string) (string, error) {
	a.transcript = nil
	return a.flow.Run(ctx, query)
}

// Transcript returns the tool calls made while answering the last query.
func (a *Agent) Transcript() []ToolCallResult {
	return a.transcript
}

// TranscriptJSON exports the last transcript as indented JSON.
func (a *Agent) TranscriptJSON() ([]byte, error) {
	return json.MarshalIndent(a.transcript, "", "  ")
}

type toolCall struct {
	Tool  string                 `json:"tool"`
	Input map[string]interface{} `json:"input"`
}

// parseToolCall scans text for the protocol's JSON object, tolerating
// markdown fences or preamble around it. Anything that does not decode
// to a named tool call is treated as final answer text.
func parseToolCall(resp string) (toolCall, bool) {
	start := strings.Index(resp, "{")
	end := strings.LastIndex(resp, "}")
	if start == -1 || end == -1 || end <= start {
		return toolCall{}, false
	}
	var call toolCall
	if err := json.Unmarshal([]byte(resp[start:end+1]), &call); err != nil {
		return toolCall{}, false
	}
	if call.Tool == "" {
		return toolCall{}, false
	}
	return call, true
}

// NewAgent creates an Agent over the given registry and LLM client.
// maxSteps caps protocol rounds per query; values <= 0 fall back to a
// small default.
func NewAgent(gk *genkit.Genkit, registry *Registry, llm LLMClient, maxSteps int) (*Agent, error) {
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}

	agent := &Agent{llm: llm}

	// Capture tools to auto-generate system prompt descriptions
	registeredTools := registry.GetTools()

	flow := genkit.DefineFlow(
		gk,
		"assistFlow",
		func(ctx context.Context, input string) (string, error) {
			var toolDefsBuilder strings.Builder
			for _, t := range registeredTools {
				def := t.Definition()
				schemaBytes, _ := json.Marshal(def.InputSchema)
				fmt.Fprintf(
					&toolDefsBuilder,
					"Tool: %s\nDescription: %s\nInput Schema: %s\n\n",
					def.Name,
					def.Description,
					string(schemaBytes),
				)
			}

			history := fmt.Sprintf(
				SystemPromptTemplate,
				toolDefsBuilder.String(),
				time.Now().Format(time.RFC3339),
				input,
			)

			for i := 0; i < maxSteps; i++ {
				select {
				case <-ctx.Done():
					return "", ctx.Err()
				default:
				}

				log.Debugf(ctx, "Protocol step %d/%d: prompting model", i+1, maxSteps)

				resp, err := agent.llm.GenerateContent(ctx, history)
				if err != nil {
					log.Errorf(ctx, "LLM generation failed: %v", err)
					return "", fmt.Errorf("llm generation failed: %w", err)
				}

				call, ok := parseToolCall(resp)
				if !ok {
					log.Debugf(ctx, "Final answer after %d tool calls", len(agent.transcript))
					return resp, nil
				}

				// Keep the model's own request in history so it
				// remembers that it asked for this tool.
				history += fmt.Sprintf("\nModel Response: %s\n", resp)

				log.Infof(ctx, "Tool call: %s input=%v", call.Tool, call.Input)
				output, execErr := registry.ExecuteTool(ctx, call.Tool, call.Input)

				result := ToolCallResult{
					ToolName:  call.Tool,
					Input:     call.Input,
					Timestamp: time.Now(),
				}

				if execErr != nil {
					log.Errorf(ctx, "Tool %s failed: %v", call.Tool, execErr)
					result.Error = execErr.Error()
					history += fmt.Sprintf("\nTool '%s' Error: %v\n", call.Tool, execErr)
				} else {
					result.Output = output
					if payload, err := json.Marshal(output); err == nil {
						history += fmt.Sprintf("\nTool '%s' Output: %s\n", call.Tool, payload)
					} else {
						history += fmt.Sprintf("\nTool '%s' Output: %v\n", call.Tool, output)
					}
				}

				agent.transcript = append(agent.transcript, result)
			}

			log.Warnf(ctx, "Max steps exceeded in protocol loop")
			return "", fmt.Errorf("max steps exceeded")
		},
	)

	agent.flow = flow
	return agent, nil
}
