package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResult(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want outcome
	}{
		{
			name: "plain success envelope",
			raw:  `{"status": 1, "message": "ok", "data": {"user_tip": "Take with food."}}`,
			want: outcomeSuccess,
		},
		{
			name: "success wrapped in json fence",
			raw:  "```json\n{\"status\": 1, \"message\": \"ok\", \"data\": {\"user_tip\": \"Take with food.\"}}\n```",
			want: outcomeSuccess,
		},
		{
			name: "success wrapped in bare fence",
			raw:  "```\n{\"status\": 1, \"message\": \"ok\", \"data\": {\"precaution\": \"Avoid alcohol.\"}}\n```",
			want: outcomeSuccess,
		},
		{
			name: "json surrounded by prose",
			raw:  `Sure, here you go: {"status": 1, "message": "ok", "data": {"user_tip": "Store below 30C."}} Hope that helps!`,
			want: outcomeSuccess,
		},
		{
			name: "insufficient information",
			raw:  `{"status": 0, "message": "Insufficient information to generate a user tip", "data": null}`,
			want: outcomeInsufficient,
		},
		{
			name: "success status but null data",
			raw:  `{"status": 1, "message": "ok", "data": null}`,
			want: outcomeInsufficient,
		},
		{
			name: "free text refusal",
			raw:  "I'm sorry, I can't provide medical advice.",
			want: outcomeMalformed,
		},
		{
			name: "truncated json",
			raw:  `{"status": 1, "message": "ok", "data": {"user_tip": "Take`,
			want: outcomeMalformed,
		},
		{
			name: "empty answer",
			raw:  "",
			want: outcomeMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, oc := parseResult(tt.raw)
			assert.Equal(t, tt.want, oc)
			if tt.want == outcomeSuccess {
				assert.NotEmpty(t, data)
			} else {
				assert.Empty(t, data)
			}
		})
	}
}

func TestParseResultPayloads(t *testing.T) {
	raw := "```json\n{\"status\": 1, \"message\": \"ok\", \"data\": {\"diseases_conditions\": [\"Fever\", \"Headache\"]}}\n```"

	data, oc := parseResult(raw)
	require.Equal(t, outcomeSuccess, oc)

	var payload struct {
		Diseases []string `json:"diseases_conditions"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, []string{"Fever", "Headache"}, payload.Diseases)
}

func TestExtractJSONPrefersFencedBlock(t *testing.T) {
	raw := "Here is the answer:\n```json\n{\"status\": 1}\n```\nand some trailing {garbage}"
	assert.Equal(t, `{"status": 1}`, extractJSON(raw))
}
