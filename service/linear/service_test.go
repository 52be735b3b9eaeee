package linear

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcp-get/service"
)

const issuesPayload = `{"data":{"%s":{"nodes":[
  {"id":"1","title":"Older","description":"first","priority":2,"createdAt":"2024-05-01T10:00:00.000Z","updatedAt":"2024-05-02T10:00:00.000Z","url":"https://linear.app/i/1","state":{"name":"Todo"},"assignee":{"name":"Ana"},"labels":{"nodes":[]}},
  {"id":"2","title":"Newer","description":null,"priority":1,"createdAt":"2024-05-01T10:00:00.000Z","updatedAt":"2024-05-03T10:00:00.000Z","url":"https://linear.app/i/2","state":{"name":"In Progress"},"assignee":null,"labels":{"nodes":[{"name":"bug"},{"name":"ui"}]}}
]}}}`

type recorded struct {
	Authorization string
	Query         string
	Variables     map[string]interface{}
}

func newServer(t *testing.T, status int, body string) (*Service, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Authorization = r.Header.Get("Authorization")
		data, _ := io.ReadAll(r.Body)
		var req graphQLRequest
		_ = json.Unmarshal(data, &req)
		rec.Query = req.Query
		rec.Variables = req.Variables
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewWithClient("linear", "lin_api_key", srv.URL, srv.Client()), rec
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	_, err := New(ctx, "linear", &service.Config{})
	assert.True(t, errors.Is(err, service.ErrConstruction))

	_, err = New(ctx, "linear", &service.Config{APIKey: "k", Options: map[string]interface{}{"timeout": "soon"}})
	assert.True(t, errors.Is(err, service.ErrConstruction))

	svc, err := New(ctx, "work", &service.Config{APIKey: "k", Options: map[string]interface{}{"timeout": "5s"}})
	require.NoError(t, err)
	assert.Equal(t, "work", svc.ID())
	assert.Equal(t, DefaultEndpoint, svc.(*Service).endpoint)
}

func TestMyItems(t *testing.T) {
	svc, rec := newServer(t, http.StatusOK, strings.Replace(issuesPayload, `"%s"`, `"viewer":{"assignedIssues"`, 1)+"}")
	items, err := svc.MyItems(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "lin_api_key", rec.Authorization)
	assert.Contains(t, rec.Query, "assignedIssues")
	assert.EqualValues(t, 5, rec.Variables["first"])

	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, "In Progress", items[0].State)
	assert.Equal(t, "", items[0].Description)
	assert.EqualValues(t, []string{"bug", "ui"}, items[0].Labels)
	assert.Equal(t, "", items[0].Assignee)
	assert.Equal(t, "1", items[1].ID)
	assert.Equal(t, "Ana", items[1].Assignee)
	assert.Equal(t, 2, items[1].Priority)
	assert.Equal(t, "linear", items[1].Service)
	assert.Equal(t, 2024, items[1].UpdatedAt.Year())
}

func TestSearch(t *testing.T) {
	svc, rec := newServer(t, http.StatusOK, strings.Replace(issuesPayload, `"%s"`, `"issues"`, 1))
	items, err := svc.Search(context.Background(), "login", 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)

	filter, ok := rec.Variables["filter"].(map[string]interface{})
	require.True(t, ok)
	or, ok := filter["or"].([]interface{})
	require.True(t, ok)
	assert.Len(t, or, 2)
	assert.Contains(t, rec.Query, "containsIgnoreCase")
	assert.NotContains(t, rec.Query, "login")
}

func TestItem(t *testing.T) {
	svc, rec := newServer(t, http.StatusOK, `{"data":{"issue":{"id":"abc","title":"One","description":"d","priority":3,"createdAt":"2024-05-01T10:00:00.000Z","updatedAt":"2024-05-01T11:00:00.000Z","url":"u","state":{"name":"Done"},"assignee":{"name":"Bob"},"labels":{"nodes":[{"name":"ops"}]}}}}`)
	item, err := svc.Item(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", rec.Variables["id"])
	assert.Equal(t, "One", item.Title)
	assert.Equal(t, "Bob", item.Assignee)
	assert.EqualValues(t, []string{"ops"}, item.Labels)
}

func TestErrors(t *testing.T) {
	testCases := []struct {
		description string
		status      int
		body        string
		expectErr   error
	}{
		{description: "null issue", status: http.StatusOK, body: `{"data":{"issue":null}}`, expectErr: service.ErrNotFound},
		{description: "entity not found", status: http.StatusOK, body: `{"errors":[{"message":"Entity not found","extensions":{"code":"INVALID_INPUT"}}],"data":null}`, expectErr: service.ErrNotFound},
		{description: "unauthorized status", status: http.StatusUnauthorized, body: `{"errors":[{"message":"Authentication required"}]}`, expectErr: service.ErrBackendAuth},
		{description: "authentication error code", status: http.StatusBadRequest, body: `{"errors":[{"message":"Invalid API key","extensions":{"code":"AUTHENTICATION_ERROR"}}]}`, expectErr: service.ErrBackendAuth},
		{description: "server error", status: http.StatusBadGateway, body: `bad gateway`, expectErr: service.ErrBackendUnavailable},
		{description: "garbage", status: http.StatusOK, body: `<html>`, expectErr: service.ErrBackendUnavailable},
		{description: "rate limited", status: http.StatusTooManyRequests, body: `{"errors":[{"message":"Rate limit exceeded","extensions":{"code":"RATELIMITED"}}]}`, expectErr: service.ErrBackendUnavailable},
		{description: "rate limited without body", status: http.StatusTooManyRequests, body: `{}`, expectErr: service.ErrBackendUnavailable},
		{description: "validation error", status: http.StatusOK, body: `{"errors":[{"message":"first must be less than or equal to 250","extensions":{"code":"INVALID_INPUT"}}],"data":null}`, expectErr: service.ErrBackendUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			svc, _ := newServer(t, tc.status, tc.body)
			_, err := svc.Item(context.Background(), "abc")
			assert.True(t, errors.Is(err, tc.expectErr), "unexpected error: %v", err)
		})
	}
}

func TestEmptyResults(t *testing.T) {
	svc, _ := newServer(t, http.StatusOK, `{"data":{"issues":{"nodes":[]},"viewer":{"assignedIssues":{"nodes":[]}}}}`)
	ctx := context.Background()

	mine, err := svc.MyItems(ctx, 10)
	require.NoError(t, err)
	assert.NotNil(t, mine)
	assert.Empty(t, mine)

	found, err := svc.Search(ctx, "nothing", 10)
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	svc := NewWithClient("linear", "k", endpoint, nil)
	_, err := svc.MyItems(context.Background(), 10)
	assert.True(t, errors.Is(err, service.ErrBackendUnavailable), "unexpected error: %v", err)
}

func TestTools(t *testing.T) {
	svc := NewWithClient("linear", "k", "", nil)
	tools := svc.Tools()
	require.Len(t, tools, 3)
	assert.Equal(t, "linear_get_my_issues", tools[0].Name)
	assert.Equal(t, "Get recent issues assigned to me from Linear", tools[0].Description)
	assert.Equal(t, "linear_get_issue_details", tools[1].Name)
	assert.Equal(t, "linear_search_issues", tools[2].Name)
}
