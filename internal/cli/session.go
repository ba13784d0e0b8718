// Package cli implements the interactive search sessions: a manual mode
// that prompts for each parameter and an AI mode that accepts natural
// language.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/blockedby/openmeasures-gateway/internal/gateway"
	"github.com/blockedby/openmeasures-gateway/internal/openmeasures"
	"github.com/blockedby/openmeasures-gateway/internal/results"
)

// Service is the core dependency of the interactive session.
type Service interface {
	Search(ctx context.Context, p openmeasures.Params) (*openmeasures.Response, error)
	NaturalLanguageSearch(ctx context.Context, userQuery string) (*gateway.Result, error)
	Analyze(ctx context.Context, userQuery, analysisRequest string, res *gateway.Result) (string, error)
}

// exit keywords accepted by the AI-mode loop.
var exitWords = map[string]bool{"quit": true, "exit": true, "q": true}

const divider = "============================================================"

// queryTypeChoices maps the menu choice to the API query type.
var queryTypeChoices = map[string]string{
	"1": "content",
	"2": "boolean_content",
	"3": "query_string",
}

// Session drives one interactive run over the given streams.
type Session struct {
	svc    Service
	reader *bufio.Reader
	out    io.Writer
	eof    bool
}

// NewSession creates a session reading prompts from in and printing to out.
func NewSession(svc Service, in io.Reader, out io.Writer) *Session {
	return &Session{
		svc:    svc,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// prompt prints a label and returns the trimmed input line. A read
// failure with no data marks the session as exhausted.
func (s *Session) prompt(label string) string {
	fmt.Fprint(s.out, label)
	line, err := s.reader.ReadString('\n')
	if err != nil && line == "" {
		s.eof = true
	}
	return strings.TrimSpace(line)
}

func (s *Session) banner(title string) {
	fmt.Fprintln(s.out, divider)
	fmt.Fprintln(s.out, title)
	fmt.Fprintln(s.out, divider)
}

// RunManual prompts for each search parameter, runs one search and
// prints the results.
func (s *Session) RunManual(ctx context.Context) error {
	s.banner("Open Measures API Search Tool")

	term := s.prompt("\nEnter search term: ")
	if term == "" {
		fmt.Fprintln(s.out, "Error: Search term cannot be empty")
		return nil
	}

	fmt.Fprintf(s.out, "\nAvailable platforms: %s\n", strings.Join(openmeasures.Sites, ", "))
	site := strings.ToLower(s.prompt("Enter platform (default: telegram): "))
	if site == "" {
		site = openmeasures.DefaultSite
	}
	if !openmeasures.ValidSite(site) {
		fmt.Fprintf(s.out, "Warning: '%s' may not be valid. Using anyway...\n", site)
	}

	fmt.Fprintln(s.out, "\nQuery types:")
	fmt.Fprintln(s.out, "  1. content - Simple search in content")
	fmt.Fprintln(s.out, "  2. boolean_content - Boolean logic (AND, OR, NOT)")
	fmt.Fprintln(s.out, "  3. query_string - Advanced field-specific search")
	choice := s.prompt("Enter query type (1/2/3, default: 1): ")
	if choice == "" {
		choice = "1"
	}
	querytype, ok := queryTypeChoices[choice]
	if !ok {
		querytype = openmeasures.DefaultQueryType
	}

	limit := openmeasures.DefaultLimit
	if limitStr := s.prompt(fmt.Sprintf("\nNumber of results (default: %d, max: %d): ", openmeasures.DefaultLimit, openmeasures.MaxLimit)); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid number, using default of %d\n", openmeasures.DefaultLimit)
		} else {
			limit = n
		}
	}

	params := openmeasures.Params{
		Term:      term,
		Site:      site,
		Limit:     limit,
		QueryType: querytype,
	}

	fmt.Fprintln(s.out, "\n"+divider)
	fmt.Fprintf(s.out, "Searching for: '%s' on %s\n", term, site)
	fmt.Fprintf(s.out, "Query type: %s\n", querytype)
	fmt.Fprintf(s.out, "%s\n\n", divider)

	resp, err := s.svc.Search(ctx, params)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %s\n", err)
		return nil
	}

	hits := resp.Hits()
	fmt.Fprintf(s.out, "Found %d results (total matching: %d)\n\n", len(hits), resp.Total())
	if len(hits) == 0 {
		fmt.Fprintln(s.out, "No results found.")
		return nil
	}

	s.printHits(hits, 0)
	return nil
}

// RunAI loops on free-text requests until an exit keyword, offering a
// follow-up custom analysis and a raw-results dump after each search.
func (s *Session) RunAI(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n"+divider)
	fmt.Fprintln(s.out, "AI-Powered Search Mode")
	fmt.Fprintln(s.out, divider)
	fmt.Fprintln(s.out, "\n✨ AI search is ready! You can now ask in natural language.")
	fmt.Fprintln(s.out, "Examples:")
	fmt.Fprintln(s.out, `  - "Search for telegram posts about Trump from the last month"`)
	fmt.Fprintln(s.out, `  - "Find Gettr posts from user miles about crypto"`)
	fmt.Fprintln(s.out, `  - "Show me recent discussions about climate change on Gab"`)
	fmt.Fprintln(s.out, "\nType 'quit' to exit.")

	for {
		userQuery := s.prompt("\nYour search request: ")
		if s.eof || exitWords[strings.ToLower(userQuery)] {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
		if userQuery == "" {
			continue
		}

		fmt.Fprintln(s.out, "\n🤖 Parsing your query and searching...")
		result, err := s.svc.NaturalLanguageSearch(ctx, userQuery)
		if err != nil {
			fmt.Fprintf(s.out, "❌ Error: %s\n", err)
			continue
		}

		fmt.Fprintln(s.out, "\n📊 Search parameters:")
		fmt.Fprintf(s.out, "  Term: %s\n", result.Params.Term)
		fmt.Fprintf(s.out, "  Site: %s\n", result.Params.Site)
		fmt.Fprintf(s.out, "  Limit: %d\n", result.Params.Limit)
		fmt.Fprintf(s.out, "  Query type: %s\n", result.Params.QueryType)

		s.banner("SUMMARY")
		fmt.Fprintln(s.out, result.Summary)
		fmt.Fprintln(s.out, "\n"+divider)
		fmt.Fprintf(s.out, "Found %d results\n", result.TotalFound)
		fmt.Fprintln(s.out, divider)

		s.analysisLoop(ctx, userQuery, result)

		if strings.ToLower(s.prompt("\nShow raw results? (y/n): ")) == "y" {
			s.printHits(result.Response.Hits(), 10)
		}
		fmt.Fprintln(s.out)
	}
}

// analysisLoop offers repeated custom analyses over one result set.
func (s *Session) analysisLoop(ctx context.Context, userQuery string, result *gateway.Result) {
	for {
		additional := strings.ToLower(s.prompt("\nWould you like AI to perform any other analysis on these results? (y/n): "))
		if s.eof || additional != "y" {
			return
		}
		analysisQuery := s.prompt("What would you like to analyze? (e.g., 'identify main actors', 'sentiment breakdown'): ")
		if analysisQuery == "" {
			continue
		}

		fmt.Fprintln(s.out, "\n🤖 Analyzing...")
		analysis, err := s.svc.Analyze(ctx, userQuery, analysisQuery, result)
		if err != nil {
			fmt.Fprintf(s.out, "❌ Error: %s\n", err)
			continue
		}
		s.banner("CUSTOM ANALYSIS")
		fmt.Fprintln(s.out, analysis)
		fmt.Fprintln(s.out, divider)
	}
}

// printHits renders hits for human display; max <= 0 means all.
func (s *Session) printHits(hits []gjson.Result, max int) {
	records := results.NormalizeBatch(hits, max, "N/A")
	for i, rec := range records {
		fmt.Fprintf(s.out, "\nResult %d:\n", i+1)
		fmt.Fprintf(s.out, "  User: %s\n", rec.Username)
		fmt.Fprintf(s.out, "  Time: %s\n", rec.Timestamp)
		fmt.Fprintf(s.out, "  Text: %s\n", results.Truncate(rec.Text, results.DisplayTextLimit))
		fmt.Fprintln(s.out, "------------------------------------------------------------")
	}
}
