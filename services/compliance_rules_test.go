package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckBasicCompliance(t *testing.T) {
	t.Run("Compliant document", func(t *testing.T) {
		text := "COMMONWEALTH OF MASSACHUSETTS\nCivil Action No. 24-CV-1234\n" +
			strings.Repeat("The plaintiff states the following facts. ", 5) +
			"\nRespectfully submitted,\n/s/ Jane Doe"
		result := CheckBasicCompliance(text)
		assert.True(t, result.IsCompliant)
		assert.Empty(t, result.Issues)
	})

	t.Run("Empty document reports all three issues", func(t *testing.T) {
		result := CheckBasicCompliance("")
		assert.False(t, result.IsCompliant)
		assert.Equal(t, []string{
			IssueMissingSignature,
			IssueMissingCaseID,
			IssueContentIncomplete,
		}, result.Issues)
	})

	t.Run("Checks are independent", func(t *testing.T) {
		// Signed and long enough, but no case identification
		text := "/s/ Jane Doe\n" + strings.Repeat("Lorem ipsum dolor sit amet. ", 10)
		result := CheckBasicCompliance(text)
		assert.False(t, result.IsCompliant)
		assert.Equal(t, []string{IssueMissingCaseID}, result.Issues)
	})

	t.Run("Case identification is case-insensitive", func(t *testing.T) {
		text := "CIVIL ACTION NO. 24-1234\n/s/ Jane Doe\n" + strings.Repeat("x", MinDocumentLength)
		result := CheckBasicCompliance(text)
		assert.True(t, result.IsCompliant)
	})

	t.Run("Length boundary", func(t *testing.T) {
		base := "case /s/ "
		exact := base + strings.Repeat("a", MinDocumentLength-len(base))
		assert.True(t, CheckBasicCompliance(exact).IsCompliant)

		short := base + strings.Repeat("a", MinDocumentLength-len(base)-1)
		result := CheckBasicCompliance(short)
		assert.Equal(t, []string{IssueContentIncomplete}, result.Issues)
	})
}

func TestRecommendationsForIssues(t *testing.T) {
	recs := RecommendationsForIssues([]string{IssueMissingSignature, IssueContentIncomplete})
	assert.Len(t, recs, 2)
	assert.Contains(t, recs[0], "/s/")

	// Unknown issues are skipped
	recs = RecommendationsForIssues([]string{"Something else entirely"})
	assert.Empty(t, recs)

	assert.Empty(t, RecommendationsForIssues(nil))
}

func TestDocumentTypeRequirements(t *testing.T) {
	registry := NewCourtRegistry()
	court, err := registry.GetCourt("ma-fed-district")
	assert.NoError(t, err)

	t.Run("TRO requirements", func(t *testing.T) {
		req := DocumentTypeRequirements("TRO", court)
		assert.Equal(t, court.FilingRequirements, req.General)
		assert.Len(t, req.Specific, 3)
		assert.Contains(t, req.Specific[0], "irreparable injury")
		assert.NotEmpty(t, req.Deadlines)
	})

	t.Run("Unknown type keeps general requirements", func(t *testing.T) {
		req := DocumentTypeRequirements("Writ of Replevin", court)
		assert.Equal(t, court.FilingRequirements, req.General)
		assert.Empty(t, req.Specific)
		assert.Empty(t, req.Deadlines)
	})

	t.Run("Nil court", func(t *testing.T) {
		req := DocumentTypeRequirements("Complaint", nil)
		assert.Empty(t, req.General)
		assert.NotEmpty(t, req.Specific)
	})
}
