package gateway

import (
	"fmt"

	"github.com/blockedby/openmeasures-gateway/internal/openmeasures"
)

const summaryPromptTemplate = `Analyze and summarize these search results from the Open Measures API.

Original query: "%s"
Search term: "%s"
Platform: %s
Number of results: %d

Results:
%s

Provide a concise summary that includes:
1. Key themes and topics found
2. Notable patterns or trends
3. Any significant usernames or sources mentioned
4. Overall sentiment or tone if apparent

Keep the summary under 300 words.`

const analysisPromptTemplate = `Analyze these search results from the Open Measures API based on the user's request.

Original search: "%s"
Platform: %s
Number of results: %d

User's analysis request: "%s"

Results:
%s

Provide a detailed analysis addressing the user's specific request. Include specific examples and evidence from the results.`

// buildSummaryPrompt embeds the formatted results into the fixed
// summarization prompt.
func buildSummaryPrompt(userQuery string, params openmeasures.Params, hitCount int, resultsText string) string {
	return fmt.Sprintf(summaryPromptTemplate, userQuery, params.Term, params.Site, hitCount, resultsText)
}

// buildAnalysisPrompt embeds a follow-up analysis request into the fixed
// custom-analysis prompt.
func buildAnalysisPrompt(userQuery, analysisRequest string, params openmeasures.Params, hitCount int, resultsText string) string {
	return fmt.Sprintf(analysisPromptTemplate, userQuery, params.Site, hitCount, analysisRequest, resultsText)
}
