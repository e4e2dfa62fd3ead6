// cmd/factweave/explain.go
package main

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// genericExplanation is returned when no model is configured.
const genericExplanation = "We analyzed the claim and available evidence to provide a credibility assessment."

// ExplainAgent narrates a scoring result for the general public.
type ExplainAgent struct {
	model     completer
	modelName string
}

// NewExplainAgent creates an explain agent.
func NewExplainAgent(cfg *Config) *ExplainAgent {
	agent := &ExplainAgent{modelName: cfg.OpenAIModel}
	if cfg.OpenAIAPIKey != "" {
		agent.model = openai.NewClient(cfg.OpenAIAPIKey)
	} else {
		GetLogger().Warning("OPENAI_API_KEY not set. Explanations will be generic.")
	}
	return agent
}

// Explain returns a short explanation of the verdict and score. Never returns
// an error; model failures are embedded in the returned string.
func (a *ExplainAgent) Explain(ctx context.Context, result *VerificationResult) string {
	if a.model == nil {
		return genericExplanation
	}

	prompt := fmt.Sprintf(`You are an expert fact-checker. Based on the following verification result, provide a clear,
concise explanation (2-3 sentences) for the general public about why this claim received this score.

Claim Verified: %s
Verdict: %s
Credibility Score: %d/100

Explain in simple language why the claim received this verdict and score.`,
		result.Claim, result.Verdict, result.Score)

	resp, err := a.model.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.modelName,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		GetLogger().Error("Failed to generate explanation: %v", err)
		return fmt.Sprintf("Error generating explanation: %v", err)
	}
	if len(resp.Choices) == 0 {
		return genericExplanation
	}

	GetLogger().Info("Explanation generated successfully")
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
