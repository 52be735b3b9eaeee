// Package action exposes registered tracker services as Fluxor action
// services named tracker/{id}, with getMyIssues, getIssueDetails and
// searchIssues methods routed through the dispatcher.
package action
