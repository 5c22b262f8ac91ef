package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"medharvest/internal/config"
	"medharvest/internal/model"
	"medharvest/internal/observability"
)

// Processor annotates medicines through the chat completion API. Every
// query is independent and degrades to an empty annotation on any error,
// insufficient information or malformed answer; processing a medicine never
// fails. A fixed post-call delay keeps within the provider's usage limits.
type Processor struct {
	client *openai.Client
	model  string
	delay  time.Duration
	sleep  func(time.Duration)
	log    *slog.Logger
}

func NewProcessor(cfg *config.Config, log *slog.Logger) *Processor {
	return &Processor{
		client: openai.NewClient(cfg.OpenAIKey),
		model:  cfg.OpenAIModel,
		delay:  cfg.AIDelay,
		sleep:  time.Sleep,
		log:    log,
	}
}

// Process runs the three annotation queries for a medicine. Identity fields
// are carried over untouched.
func (p *Processor) Process(med model.Medicine) model.EnrichedMedicine {
	enriched := model.EnrichedMedicine{
		Medicine:    med,
		UserTips:    []string{},
		Precautions: []string{},
		Diseases:    []string{},
	}
	if tip := p.userTip(med); tip != "" {
		enriched.UserTips = append(enriched.UserTips, tip)
	}
	if precaution := p.precaution(med); precaution != "" {
		enriched.Precautions = append(enriched.Precautions, precaution)
	}
	enriched.Diseases = append(enriched.Diseases, p.diseases(med)...)
	return enriched
}

func (p *Processor) userTip(med model.Medicine) string {
	var payload struct {
		UserTip string `json:"user_tip"`
	}
	if !p.query(med, "user tip", tipPrompt(med), &payload) {
		return ""
	}
	return payload.UserTip
}

func (p *Processor) precaution(med model.Medicine) string {
	var payload struct {
		Precaution string `json:"precaution"`
	}
	if !p.query(med, "precaution", precautionPrompt(med), &payload) {
		return ""
	}
	return payload.Precaution
}

func (p *Processor) diseases(med model.Medicine) []string {
	var payload struct {
		Diseases []string `json:"diseases_conditions"`
	}
	if !p.query(med, "diseases", diseasesPrompt(med), &payload) {
		return nil
	}
	return payload.Diseases
}

// query runs one annotation prompt and unmarshals the success payload into
// out. It reports whether a usable payload was obtained.
func (p *Processor) query(med model.Medicine, kind, prompt string, out any) bool {
	observability.EnrichmentCalls.Inc()

	raw, err := p.complete(prompt)
	if err != nil {
		observability.EnrichmentFailures.Inc()
		p.log.Error("annotation query failed", "kind", kind, "product", med.ProductName, "error", err)
		return false
	}

	data, oc := parseResult(raw)
	switch oc {
	case outcomeMalformed:
		observability.EnrichmentFailures.Inc()
		p.log.Error("unparseable annotation answer", "kind", kind, "product", med.ProductName)
		return false
	case outcomeInsufficient:
		p.log.Debug("insufficient information for annotation", "kind", kind, "product", med.ProductName)
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		observability.EnrichmentFailures.Inc()
		p.log.Error("unexpected annotation payload shape", "kind", kind, "product", med.ProductName, "error", err)
		return false
	}

	p.sleep(p.delay)
	return true
}

func (p *Processor) complete(prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
