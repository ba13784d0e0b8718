package openmeasures

import (
	"net/url"
	"strconv"
)

// Defaults applied to unset parameter fields.
const (
	DefaultSite      = "telegram"
	DefaultQueryType = "content"
	DefaultLimit     = 20

	// MaxLimit is the hard cap the API accepts for a single fetch.
	MaxLimit = 10000
)

// Params describes one bounded content search.
// Site and QueryType are not validated against the registry here; unknown
// values are forwarded to the API as-is.
type Params struct {
	Term      string `json:"term"`
	Site      string `json:"site"`
	Limit     int    `json:"limit"`
	QueryType string `json:"querytype"`
	Since     string `json:"since,omitempty"`
	Until     string `json:"until,omitempty"`
	SortDesc  bool   `json:"sortdesc,omitempty"`
}

// ApplyDefaults fills unset fields. Term is left alone: an empty term is
// passed through and simply matches nothing meaningful.
func (p *Params) ApplyDefaults() {
	if p.Site == "" {
		p.Site = DefaultSite
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.QueryType == "" {
		p.QueryType = DefaultQueryType
	}
}

// ClampedLimit bounds the limit to [1, MaxLimit] for dispatch.
func (p Params) ClampedLimit() int {
	if p.Limit > MaxLimit {
		return MaxLimit
	}
	if p.Limit < 1 {
		return 1
	}
	return p.Limit
}

// Values encodes the outbound query string. Since/until are omitted
// entirely when empty, never sent as empty strings.
func (p Params) Values() url.Values {
	v := url.Values{}
	v.Set("term", p.Term)
	v.Set("site", p.Site)
	v.Set("limit", strconv.Itoa(p.ClampedLimit()))
	v.Set("querytype", p.QueryType)
	v.Set("sortdesc", strconv.FormatBool(p.SortDesc))
	if p.Since != "" {
		v.Set("since", p.Since)
	}
	if p.Until != "" {
		v.Set("until", p.Until)
	}
	return v
}
