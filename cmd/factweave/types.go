// cmd/factweave/types.go
package main

// ClaimStatus tracks the verification lifecycle of a claim.
type ClaimStatus string

const (
	StatusUnverified ClaimStatus = "unverified"
	StatusVerified   ClaimStatus = "verified"
	StatusFalse      ClaimStatus = "false"
)

// Evidence is a single source record supporting or refuting a claim.
// Immutable once constructed; membership in a claim is append-only.
type Evidence struct {
	Source  string `json:"source"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// Claim is a statement to be fact-checked with accumulated evidence.
type Claim struct {
	Text     string      `json:"text"`
	Source   string      `json:"source"`
	Status   ClaimStatus `json:"status"`
	Evidence []Evidence  `json:"evidence"`
}

// Verdict is the categorical outcome of scoring a claim.
type Verdict string

const (
	VerdictVerified   Verdict = "VERIFIED"
	VerdictFalse      Verdict = "FALSE"
	VerdictMixed      Verdict = "MIXED"
	VerdictUnverified Verdict = "UNVERIFIED"
)

// ScoreResponse is the structured credibility assessment for one claim.
// The numeric bands are a contract for the model, not enforced here.
type ScoreResponse struct {
	FinalScore        int     `json:"final_score"`
	SourceReliability int     `json:"source_reliability"`
	EvidenceStrength  int     `json:"evidence_strength"`
	Consistency       int     `json:"consistency"`
	Verdict           Verdict `json:"verdict"`
}

// CrisisAlert flags a claim whose text matched crisis-indicator keywords.
// The ID is content-derived and only suitable as a display key.
type CrisisAlert struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Severity    string   `json:"severity"`
	Region      string   `json:"region"`
	Verified    bool     `json:"verified"`
	Keywords    []string `json:"keywords"`
	Description string   `json:"description"`
}

// CrisisResponse is the result of a crisis detection pass over a claim batch.
type CrisisResponse struct {
	CrisisDetected     bool          `json:"crisis_detected"`
	Alerts             []CrisisAlert `json:"alerts"`
	RecommendedActions []string      `json:"recommended_actions"`
}

// VerificationResult is the pipeline output for one verified claim.
type VerificationResult struct {
	Claim         string        `json:"claim"`
	Verdict       Verdict       `json:"verdict"`
	Score         int           `json:"score"`
	Breakdown     ScoreResponse `json:"breakdown"`
	Explanation   string        `json:"explanation"`
	EvidenceCount int           `json:"evidence_count"`
}

// ChatMessage is a single turn of the assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
