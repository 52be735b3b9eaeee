package linear

const issueFields = `
fragment IssueFields on Issue {
  id
  title
  description
  priority
  createdAt
  updatedAt
  url
  state { name }
  assignee { name }
  labels { nodes { name } }
}`

const myIssuesQuery = `query MyIssues($first: Int!) {
  viewer {
    assignedIssues(first: $first, orderBy: updatedAt) {
      nodes { ...IssueFields }
    }
  }
}` + issueFields

const issueQuery = `query Issue($id: String!) {
  issue(id: $id) { ...IssueFields }
}` + issueFields

const searchIssuesQuery = `query SearchIssues($first: Int!, $filter: IssueFilter) {
  issues(first: $first, filter: $filter, orderBy: updatedAt) {
    nodes { ...IssueFields }
  }
}` + issueFields

func searchFilter(query string) map[string]interface{} {
	return map[string]interface{}{
		"or": []interface{}{
			map[string]interface{}{"title": map[string]interface{}{"containsIgnoreCase": query}},
			map[string]interface{}{"description": map[string]interface{}{"containsIgnoreCase": query}},
		},
	}
}
