package dispatch

// MyItemsRequest is the typed input of get_my_issues.
type MyItemsRequest struct {
	Limit int `json:"limit,omitempty" description:"Number of issues to return (default: 10)"`
}

// ItemRequest is the typed input of get_issue_details.
type ItemRequest struct {
	IssueID string `json:"issueId" description:"The ID of the issue to get details for"`
}

// SearchRequest is the typed input of search_issues.
type SearchRequest struct {
	Query string `json:"query" description:"Search query"`
	Limit int    `json:"limit,omitempty" description:"Number of results to return (default: 10)"`
}
