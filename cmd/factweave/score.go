// cmd/factweave/score.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// completer is the slice of the OpenAI client the scoring agents use.
// Narrowed to an interface so tests can substitute the model.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ScoreAgent evaluates a claim's credibility with the generative model.
// Apart from the three guard paths, scoring judgment belongs to the model;
// its numbers pass through unchanged.
type ScoreAgent struct {
	model     completer
	modelName string
}

// NewScoreAgent creates a score agent. Without an API key the agent has no
// model and every scorable claim comes back UNVERIFIED.
func NewScoreAgent(cfg *Config) *ScoreAgent {
	agent := &ScoreAgent{modelName: cfg.OpenAIModel}
	if cfg.OpenAIAPIKey != "" {
		agent.model = openai.NewClient(cfg.OpenAIAPIKey)
	} else {
		GetLogger().Warning("OPENAI_API_KEY not set. Scoring will return UNVERIFIED.")
	}
	return agent
}

// Score evaluates one claim. Exactly one model call per invocation, no retry.
func (a *ScoreAgent) Score(ctx context.Context, claim *Claim) ScoreResponse {
	if len(claim.Evidence) == 0 {
		GetLogger().Warning("No evidence found for claim")
		return ScoreResponse{
			FinalScore: 50,
			Verdict:    VerdictUnverified,
		}
	}

	hasContent := false
	for _, e := range claim.Evidence {
		if len(strings.TrimSpace(e.Content)) > 10 {
			hasContent = true
			break
		}
	}
	if !hasContent {
		GetLogger().Warning("Evidence found but no meaningful content")
		return ScoreResponse{
			FinalScore:        50,
			SourceReliability: 30,
			EvidenceStrength:  20,
			Consistency:       50,
			Verdict:           VerdictUnverified,
		}
	}

	if a.model == nil {
		GetLogger().Error("Cannot score claim: no model configured")
		return ScoreResponse{Verdict: VerdictUnverified}
	}

	GetLogger().Info("Scoring claim: %.50s...", claim.Text)
	resp, err := a.model.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.modelName,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildScorePrompt(claim),
			},
		},
	})
	if err != nil {
		GetLogger().Error("Model call failed: %v", err)
		return ScoreResponse{Verdict: VerdictUnverified}
	}
	if len(resp.Choices) == 0 {
		GetLogger().Error("Model returned no choices")
		return ScoreResponse{Verdict: VerdictUnverified}
	}

	score, err := parseScoreReply(resp.Choices[0].Message.Content)
	if err != nil {
		GetLogger().Error("Failed to parse model reply: %v", err)
		return ScoreResponse{Verdict: VerdictUnverified}
	}

	GetLogger().Info("Scoring complete: %s, score %d", score.Verdict, score.FinalScore)
	return *score
}

// parseScoreReply strips optional Markdown code fences from the model's
// reply and decodes it as a ScoreResponse. This is the only place the fragile
// free-text-to-JSON step lives.
func parseScoreReply(text string) (*ScoreResponse, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var score ScoreResponse
	if err := json.Unmarshal([]byte(text), &score); err != nil {
		return nil, &ParseError{Source: "model", Reason: "invalid JSON", Inner: err}
	}

	switch score.Verdict {
	case VerdictVerified, VerdictFalse, VerdictMixed, VerdictUnverified:
	default:
		return nil, &ParseError{Source: "model", Reason: fmt.Sprintf("unexpected verdict %q", score.Verdict)}
	}

	return &score, nil
}

// buildScorePrompt renders the fact-checking rubric around the claim and its
// evidence. The rubric encodes the verdict score bands as instructions to the
// model; the agent never enforces them.
func buildScorePrompt(claim *Claim) string {
	var evidence strings.Builder
	for _, e := range claim.Evidence {
		fmt.Fprintf(&evidence, "- %s (%s)\n", e.Content, e.URL)
	}

	var b strings.Builder
	b.WriteString(`You are an expert fact-checker with advanced analytical reasoning. Your goal is to provide ACCURATE credibility assessment.

CRITICAL: Read the evidence CAREFULLY before scoring. Do NOT rush to conclusions.

STEP 1: UNDERSTAND THE CLAIM
Claim to verify: "`)
	b.WriteString(claim.Text)
	b.WriteString(`"

Ask yourself:
- What is this claim actually saying?
- What would "true" look like? What would "false" look like?
- What type of evidence would prove or disprove this?

STEP 2: READ ALL EVIDENCE THOROUGHLY
Evidence provided:
`)
	b.WriteString(evidence.String())
	b.WriteString(`
For EACH piece of evidence, ask:
- Is this about the SAME topic as the claim?
- Does this SUPPORT the claim, CONTRADICT it, or is it IRRELEVANT?
- How RELIABLE is this source?

STEP 3: DEEP ANALYSIS

a) RELEVANCE CHECK:
   - Is the evidence actually about the claim, or about something completely different?
   - If irrelevant, mark UNVERIFIED.

b) CONTENT ANALYSIS:
   - What does each source actually SAY?
   - Do they confirm or deny the claim?
   - Are there scientific facts, studies, or expert opinions?

c) SOURCE RELIABILITY:
   - Wikipedia, .edu, .gov, scientific journals, fact-checkers (Snopes, PolitiFact) = HIGH reliability (80-100)
   - News outlets (BBC, Reuters, AP) = GOOD reliability (70-85)
   - Blogs, unknown sites, social media = LOW reliability (0-40)

d) EVIDENCE CONSISTENCY:
   - Do all sources agree? Are there contradictions? How strong is the consensus?

e) SCIENTIFIC BASIS:
   - Is there scientific consensus? Are studies or research cited?

STEP 4: CROSS-VERIFY YOUR VERDICT
- If you think it is FALSE: did you find evidence that CONTRADICTS the claim?
- If you think it is VERIFIED: did you find evidence that CONFIRMS the claim?
- If you think it is MIXED: did you find BOTH supporting AND contradicting evidence?
- If you think it is UNVERIFIED: is the evidence truly insufficient or irrelevant?

STEP 5: ASSIGN ACCURATE SCORES

1. final_score (overall credibility):
   - VERIFIED (evidence confirms claim): 75-95
   - FALSE (evidence contradicts claim): 10-25
   - MIXED (contradictory evidence): 40-60
   - UNVERIFIED (no relevant evidence): 45-55

2. source_reliability (0-100): count how many sources are reliable.
   Wikipedia, fact-checkers, .edu = 85-95; news sites = 70-80; blogs, unknown = 20-40.

3. evidence_strength (0-100): conclusive = 80-95; moderate = 50-70; weak or vague = 20-40.

4. consistency (0-100): all sources agree = 90-100; most agree = 70-85; mixed = 45-55; contradictory = 20-40.

5. verdict: VERIFIED, FALSE, MIXED or UNVERIFIED based on your analysis above.

VERIFICATION RULES:
- If verdict = FALSE, final_score MUST be 10-25 (NOT 0).
- If verdict = VERIFIED, final_score MUST be 75-95 (NOT 100).
- Scores MUST align with verdict logic.
- Read evidence content, do not just guess.

EXAMPLES OF CORRECT ANALYSIS:

1. Claim: "Earth is flat"
   Evidence: "Wikipedia: Earth is an oblate spheroid. Scientific consensus confirms spherical shape."
   Analysis: Evidence clearly contradicts claim. Sources are reliable. Strong evidence.
   {"final_score": 18, "source_reliability": 92, "evidence_strength": 90, "consistency": 95, "verdict": "FALSE"}

2. Claim: "Vaccines cause autism"
   Evidence: "CDC: No link found. Multiple peer-reviewed studies show no connection."
   Analysis: Evidence contradicts claim. Highly reliable sources. Scientific consensus.
   {"final_score": 12, "source_reliability": 95, "evidence_strength": 95, "consistency": 100, "verdict": "FALSE"}

3. Claim: "Coffee is healthy"
   Evidence: "Study A: Coffee reduces diabetes risk. Study B: High consumption may increase anxiety."
   Analysis: Mixed evidence. Some benefits, some risks. Both from studies.
   {"final_score": 55, "source_reliability": 75, "evidence_strength": 70, "consistency": 45, "verdict": "MIXED"}

Return ONLY a JSON object (no explanation):
{"final_score": <number>, "source_reliability": <number>, "evidence_strength": <number>, "consistency": <number>, "verdict": "<string>"}`)

	return b.String()
}
