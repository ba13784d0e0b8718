// Package gateway wires the interpreter, the search client and the
// completion client into the end-to-end natural-language search flow
// shared by the CLI and the HTTP server.
package gateway

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/blockedby/openmeasures-gateway/internal/interpreter"
	"github.com/blockedby/openmeasures-gateway/internal/openmeasures"
	"github.com/blockedby/openmeasures-gateway/internal/results"
)

// SearchClient abstracts the Open Measures client.
type SearchClient interface {
	Search(ctx context.Context, p openmeasures.Params) (*openmeasures.Response, error)
	RequestURL(p openmeasures.Params) string
}

// Completer abstracts the LLM client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	HasKey() bool
}

// summaryHitCap bounds how many hits feed summary and analysis prompts.
const summaryHitCap = 20

// Service sequences interpret, search and summarize for one request at a
// time. It holds only the two stateless clients and is safe for
// concurrent use by independent requests.
type Service struct {
	interp *interpreter.Interpreter
	search SearchClient
	llm    Completer
	log    zerolog.Logger
}

// New creates the gateway service.
func New(search SearchClient, llm Completer, log zerolog.Logger) *Service {
	return &Service{
		interp: interpreter.New(llm),
		search: search,
		llm:    llm,
		log:    log,
	}
}

// HasCredential reports whether the completion client has a key; without
// one no LLM-backed operation can run.
func (s *Service) HasCredential() bool {
	return s.llm.HasKey()
}

// RequestURL reconstructs the outbound search URL for a parameter set.
func (s *Service) RequestURL(p openmeasures.Params) string {
	return s.search.RequestURL(p)
}

// Interpret parses free text into search parameters via the LLM.
func (s *Service) Interpret(ctx context.Context, userQuery string) (openmeasures.Params, error) {
	return s.interp.Interpret(ctx, userQuery)
}

// Search dispatches one bounded query. Unknown site or querytype values
// are forwarded with a warning, not rejected.
func (s *Service) Search(ctx context.Context, p openmeasures.Params) (*openmeasures.Response, error) {
	if !openmeasures.ValidSite(p.Site) {
		s.log.Warn().Str("site", p.Site).Msg("unknown site, forwarding as-is")
	}
	if !openmeasures.ValidQueryType(p.QueryType) {
		s.log.Warn().Str("querytype", p.QueryType).Msg("unknown query type, forwarding as-is")
	}
	s.log.Debug().
		Str("term", p.Term).
		Str("site", p.Site).
		Int("limit", p.Limit).
		Str("querytype", p.QueryType).
		Msg("dispatching search")
	return s.search.Search(ctx, p)
}

// Result is the outcome of a full natural-language search.
type Result struct {
	Params     openmeasures.Params
	Response   *openmeasures.Response
	Summary    string
	TotalFound int
}

// NaturalLanguageSearch interprets free text, runs the search, and has
// the model summarize what came back. The three downstream calls run
// strictly in that order; each is a single attempt.
func (s *Service) NaturalLanguageSearch(ctx context.Context, userQuery string) (*Result, error) {
	params, err := s.Interpret(ctx, userQuery)
	if err != nil {
		return nil, err
	}

	resp, err := s.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	hits := resp.Hits()
	result := &Result{
		Params:     params,
		Response:   resp,
		TotalFound: len(hits),
	}
	if len(hits) == 0 {
		result.Summary = "No results found for this query."
		return result, nil
	}

	records := results.NormalizeBatch(hits, summaryHitCap, "Unknown")
	summary, err := s.llm.Complete(ctx, buildSummaryPrompt(userQuery, params, len(hits), results.FormatForSummary(records)))
	if err != nil {
		return nil, fmt.Errorf("summarize results: %w", err)
	}
	result.Summary = summary

	return result, nil
}

// Analyze runs a follow-up analysis request over an earlier result.
func (s *Service) Analyze(ctx context.Context, userQuery, analysisRequest string, res *Result) (string, error) {
	records := results.NormalizeBatch(res.Response.Hits(), summaryHitCap, "Unknown")
	prompt := buildAnalysisPrompt(userQuery, analysisRequest, res.Params, res.TotalFound, results.FormatForSummary(records))
	return s.llm.Complete(ctx, prompt)
}
