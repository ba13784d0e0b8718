package interpreter

import (
	"fmt"
	"strings"

	"github.com/blockedby/openmeasures-gateway/internal/openmeasures"
)

const parsePromptTemplate = `Given this natural language search query, extract the search parameters for the Open Measures API.

User query: "%s"

Available platforms: %s
Query types: content (simple search), boolean_content (AND/OR logic), query_string (advanced field search)

Return a JSON object with these fields:
- term: the search term or query
- site: the platform to search (default: telegram)
- limit: number of results (default: 20, max: 10000)
- querytype: type of query (default: content)

Only return the JSON object, nothing else.`

// BuildParsePrompt embeds the user's request and the platform registry
// into the fixed extraction prompt.
func BuildParsePrompt(userQuery string) string {
	return fmt.Sprintf(parsePromptTemplate, userQuery, strings.Join(openmeasures.Sites, ", "))
}
