package ai

import (
	"encoding/json"
	"regexp"
)

// The model is instructed to answer with a status-tagged JSON envelope, but
// answers frequently arrive wrapped in markdown fences or surrounded by
// prose. Parsing is a pure function from raw text to a tagged outcome so it
// stays testable without a network.

type outcome int

const (
	outcomeMalformed outcome = iota
	outcomeInsufficient
	outcomeSuccess
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

var (
	fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	bareJSON   = regexp.MustCompile(`(?s)\{.*\}`)
)

// extractJSON pulls a JSON object out of text that may wrap it in a markdown
// code block. If nothing object-like is found the text is returned as is.
func extractJSON(text string) string {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := bareJSON.FindString(text); m != "" {
		return m
	}
	return text
}

// parseResult classifies a raw model answer. Success carries the data
// payload; insufficient information and malformed output carry nothing.
func parseResult(raw string) (json.RawMessage, outcome) {
	var env envelope
	if err := json.Unmarshal([]byte(extractJSON(raw)), &env); err != nil {
		return nil, outcomeMalformed
	}
	if env.Status != 1 || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, outcomeInsufficient
	}
	return env.Data, outcomeSuccess
}
