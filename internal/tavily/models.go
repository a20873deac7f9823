package tavily

// Request models

// SearchParams carries the provider call parameters. Optional fields use
// omitempty so an absent domain filter is never serialized as an empty list.
type SearchParams struct {
	Query             string   `json:"query"`
	SearchDepth       string   `json:"search_depth,omitempty"` // "basic" or "advanced"
	MaxResults        int      `json:"max_results,omitempty"`
	IncludeAnswer     bool     `json:"include_answer,omitempty"`
	IncludeRawContent bool     `json:"include_raw_content,omitempty"`
	IncludeImages     bool     `json:"include_images,omitempty"`
	IncludeDomains    []string `json:"include_domains,omitempty"`
	ExcludeDomains    []string `json:"exclude_domains,omitempty"`
}

// Response models

type SearchResponse struct {
	Query        string   `json:"query"`
	Answer       string   `json:"answer,omitempty"`
	Results      []Result `json:"results"`
	Images       []string `json:"images,omitempty"`
	ResponseTime float64  `json:"response_time,omitempty"`
}

// Result is a single entry in the provider's result list. Score is a
// pointer so a reply that omits it is distinguishable from a zero score.
type Result struct {
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Content       string   `json:"content"`
	Score         *float64 `json:"score,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	RawContent    string   `json:"raw_content,omitempty"`
}
