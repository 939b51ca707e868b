package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseToolCall(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantTool string
		wantOK   bool
	}{
		{
			"BareJSON",
			`{"tool": "get_weather", "input": {"city": "London"}}`,
			"get_weather",
			true,
		},
		{
			"FencedJSON",
			"```json\n{\"tool\": \"get_weather\", \"input\": {\"city\": \"London\"}}\n```",
			"get_weather",
			true,
		},
		{
			"WithPreamble",
			"Let me look that up.\n{\"tool\": \"calculate_distance\", \"input\": {\"from_city\": \"madrid\", \"to_city\": \"barcelona\"}}",
			"calculate_distance",
			true,
		},
		{
			"PlainText",
			"The weather in London is mild today.",
			"",
			false,
		},
		{
			"JSONWithoutTool",
			`{"city": "London"}`,
			"",
			false,
		},
		{
			"Empty",
			"",
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, ok := parseToolCall(tt.response)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantTool, call.Tool)
			}
		})
	}
}

func TestParseToolCall_Input(t *testing.T) {
	call, ok := parseToolCall(`{"tool": "get_weather", "input": {"city": "Tokyo"}}`)

	assert.True(t, ok)
	assert.Equal(t, "Tokyo", call.Input["city"])
}
