package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnoswap-labs/axiom/check"
	"github.com/gnoswap-labs/axiom/internal/verify"
)

func TestFormatIssues(t *testing.T) {
	t.Parallel()
	issues := []check.Issue{
		{
			File:    "toy.proof.yaml",
			Proof:   "q-from-p",
			Step:    3,
			Reason:  "rule yields a different conclusion",
			Message: "Modus Ponens yields Q, not R",
		},
		{
			File:    "toy.proof.yaml",
			Proof:   "missing-axiom",
			Step:    1,
			Reason:  check.ReasonBuild,
			Message: "axiom not found: A7",
		},
		{
			Proof:   "whole",
			Reason:  "last step is not the goal",
			Message: "goal is Q",
		},
	}

	expected := `error: rule yields a different conclusion
 --> toy.proof.yaml:q-from-p:step 3
  |
  = Modus Ponens yields Q, not R

error: build-error
 --> toy.proof.yaml:missing-axiom:step 1
  |
  = axiom not found: A7
Note: the proof was not verified

error: last step is not the goal
 --> whole
  |
  = goal is Q

`

	assert.Equal(t, expected, FormatIssues(issues, false))
	assert.Empty(t, FormatIssues(nil, false))
}

func TestLocation(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "<source>", location("", "", 0))
	assert.Equal(t, "a.proof.yaml", location("a.proof.yaml", "", 0))
	assert.Equal(t, "p:step 2", location("", "p", 2))
}

func TestFormatReport(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "✓ T1: valid\n", FormatReport("T1", verify.Report{Valid: true}, false))

	report := verify.Report{Diagnostics: []verify.Diagnostic{
		{Step: 2, Reason: verify.ReasonUnknownAxiom, Message: "P ⟹ Q"},
		{Reason: verify.ReasonGoalMismatch},
	}}
	expected := "✗ T2: invalid (2 problems)\n" +
		"  = step 2: not an axiom of the system: P ⟹ Q\n" +
		"  = proof: last step is not the goal\n"
	assert.Equal(t, expected, FormatReport("T2", report, false))
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "all proofs verified (1 file)\n", FormatSummary(1, 0, false))
	assert.Equal(t, "3 issues in 2 files\n", FormatSummary(2, 3, false))
	assert.Equal(t, "1 issue in 1 file\n", FormatSummary(1, 1, false))
}

func TestColoredOutputKeepsText(t *testing.T) {
	t.Parallel()
	out := FormatIssues([]check.Issue{{File: "f", Reason: "r", Message: "m"}}, true)
	assert.Contains(t, out, "error: ")
	assert.Contains(t, out, "m")
}
