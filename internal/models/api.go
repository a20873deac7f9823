package models

const (
	DefaultSearchDepth = "advanced"
	DefaultMaxResults  = 8
)

type SearchRequest struct {
	Query             string   `json:"query" binding:"required"`
	SearchDepth       string   `json:"search_depth"` // "basic" or "advanced"
	MaxResults        int      `json:"max_results"`
	IncludeAnswer     *bool    `json:"include_answer"`
	IncludeRawContent bool     `json:"include_raw_content"`
	IncludeImages     bool     `json:"include_images"`
	IncludeDomains    []string `json:"include_domains"`
	ExcludeDomains    []string `json:"exclude_domains"`
}

// ApplyDefaults fills unset optional fields with the service defaults.
func (r *SearchRequest) ApplyDefaults() {
	if r.SearchDepth == "" {
		r.SearchDepth = DefaultSearchDepth
	}
	if r.MaxResults == 0 {
		r.MaxResults = DefaultMaxResults
	}
	if r.IncludeAnswer == nil {
		includeAnswer := true
		r.IncludeAnswer = &includeAnswer
	}
}

type SearchResponse struct {
	Query   string         `json:"query"`
	Answer  string         `json:"answer,omitempty"`
	Results []SearchResult `json:"results"`
}

type SearchResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	Score         float64 `json:"score"`
	PublishedDate string  `json:"published_date,omitempty"`
}

// QuickSearchResponse is the loose shape returned by /quick-search. Results
// are echoed from the provider without remapping.
type QuickSearchResponse struct {
	Query   string      `json:"query"`
	Answer  string      `json:"answer,omitempty"`
	Results interface{} `json:"results,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
