// cmd/factweave/pipeline.go
package main

import (
	"context"
	"sync"
)

// Pipeline ties the agents together: Scan produces claims, Verify enriches
// them, Score evaluates, Explain narrates. Claims are independent units, so
// batch runs fan out to a bounded worker pool.
type Pipeline struct {
	scan    *ScanAgent
	verify  *VerifyAgent
	score   *ScoreAgent
	explain *ExplainAgent
	workers int
}

// NewPipeline creates a pipeline with the given worker bound for batch runs.
func NewPipeline(scan *ScanAgent, verify *VerifyAgent, score *ScoreAgent, explain *ExplainAgent, workers int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		scan:    scan,
		verify:  verify,
		score:   score,
		explain: explain,
		workers: workers,
	}
}

// VerifyClaim runs one user-supplied claim through verify, score and explain.
func (p *Pipeline) VerifyClaim(ctx context.Context, text, link string, imageContent []byte) VerificationResult {
	claim := &Claim{
		Text:   text,
		Source: "user",
		Status: StatusUnverified,
	}
	p.verify.Verify(ctx, claim, link, imageContent)

	score := p.score.Score(ctx, claim)
	result := VerificationResult{
		Claim:         claim.Text,
		Verdict:       score.Verdict,
		Score:         score.FinalScore,
		Breakdown:     score,
		EvidenceCount: len(claim.Evidence),
	}
	result.Explanation = p.explain.Explain(ctx, &result)
	return result
}

// RunCategory scans a category and verifies every claim it produced,
// processing claims concurrently. Result order matches scan order.
func (p *Pipeline) RunCategory(ctx context.Context, category string) []VerificationResult {
	claims := p.scan.ScanByCategory(ctx, category)
	return p.processClaims(ctx, claims)
}

// processClaims scores and explains a claim batch with p.workers goroutines.
func (p *Pipeline) processClaims(ctx context.Context, claims []Claim) []VerificationResult {
	results := make([]VerificationResult, len(claims))
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i := range claims {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			claim := claims[i]
			p.verify.Verify(ctx, &claim, "", nil)

			score := p.score.Score(ctx, &claim)
			result := VerificationResult{
				Claim:         claim.Text,
				Verdict:       score.Verdict,
				Score:         score.FinalScore,
				Breakdown:     score,
				EvidenceCount: len(claim.Evidence),
			}
			result.Explanation = p.explain.Explain(ctx, &result)
			results[i] = result
		}(i)
	}

	wg.Wait()
	return results
}
