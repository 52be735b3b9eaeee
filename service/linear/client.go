package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/viant/mcp-get/service"
)

// maxResponseSize caps the GraphQL response body read into memory.
const maxResponseSize = 8 << 20

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// execute posts a GraphQL request and returns the "data" member. Transport
// and server failures map onto the service error taxonomy.
func (s *Service) execute(ctx context.Context, query string, variables map[string]interface{}) (gjson.Result, error) {
	payload, err := json.Marshal(&graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return gjson.Result{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("linear: %w: %v", service.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("linear: %w: read response: %v", service.ErrBackendUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return gjson.Result{}, fmt.Errorf("linear: %w: %s", service.ErrBackendAuth, statusMessage(resp, body))
	case resp.StatusCode >= http.StatusInternalServerError:
		return gjson.Result{}, fmt.Errorf("linear: %w: %s", service.ErrBackendUnavailable, statusMessage(resp, body))
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("linear: %w: invalid response (status %d)", service.ErrBackendUnavailable, resp.StatusCode)
	}
	if errs := gjson.GetBytes(body, "errors"); errs.IsArray() && len(errs.Array()) > 0 {
		return gjson.Result{}, graphQLError(errs.Array()[0])
	}
	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("linear: %w: unexpected status %s", service.ErrBackendUnavailable, resp.Status)
	}
	return gjson.GetBytes(body, "data"), nil
}

func statusMessage(resp *http.Response, body []byte) string {
	if msg := gjson.GetBytes(body, "errors.0.message"); msg.Exists() {
		return msg.String()
	}
	return resp.Status
}

// graphQLError classifies the first GraphQL error by its extension code or
// message. Anything not recognised as auth or not found is reported unavailable.
func graphQLError(e gjson.Result) error {
	message := e.Get("message").String()
	code := e.Get("extensions.code").String()
	if code == "" {
		code = e.Get("extensions.type").String()
	}
	switch {
	case strings.EqualFold(code, "AUTHENTICATION_ERROR"), strings.Contains(strings.ToLower(code), "authentication"):
		return fmt.Errorf("linear: %w: %s", service.ErrBackendAuth, message)
	case strings.Contains(strings.ToLower(message), "not found"), strings.Contains(strings.ToLower(code), "not found"):
		return fmt.Errorf("linear: %s: %w", strings.TrimSuffix(message, " not found"), service.ErrNotFound)
	}
	return fmt.Errorf("linear: %w: %s", service.ErrBackendUnavailable, message)
}

func parseIssues(nodes gjson.Result, id string) []*service.Item {
	items := make([]*service.Item, 0, len(nodes.Array()))
	nodes.ForEach(func(_, node gjson.Result) bool {
		items = append(items, parseIssue(node, id))
		return true
	})
	return items
}

func parseIssue(node gjson.Result, id string) *service.Item {
	item := &service.Item{
		ID:          node.Get("id").String(),
		Title:       node.Get("title").String(),
		Description: node.Get("description").String(),
		State:       node.Get("state.name").String(),
		Priority:    int(node.Get("priority").Int()),
		Assignee:    node.Get("assignee.name").String(),
		CreatedAt:   node.Get("createdAt").Time(),
		UpdatedAt:   node.Get("updatedAt").Time(),
		URL:         node.Get("url").String(),
		Service:     id,
	}
	for _, label := range node.Get("labels.nodes.#.name").Array() {
		item.Labels = append(item.Labels, label.String())
	}
	return item
}
