package entity

// SearchResult groups global-search hits by entity type. Groups are always
// non-nil so the JSON shape is stable for the client.
type SearchResult struct {
	Leads         []Lead        `json:"leads"`
	Opportunities []Opportunity `json:"opportunities"`
	Accounts      []Account     `json:"accounts"`
	Contacts      []Contact     `json:"contacts"`
}

func EmptySearchResult() SearchResult {
	return SearchResult{
		Leads:         []Lead{},
		Opportunities: []Opportunity{},
		Accounts:      []Account{},
		Contacts:      []Contact{},
	}
}
