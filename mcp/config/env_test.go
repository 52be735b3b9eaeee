package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcp-get/service"
)

func TestEnv_Services(t *testing.T) {
	testCases := []struct {
		description string
		env         map[string]string
		expectIDs   []string
	}{
		{description: "no key", env: map[string]string{}},
		{description: "key set", env: map[string]string{"LINEAR_API_KEY": "k"}, expectIDs: []string{"linear"}},
		{description: "disabled", env: map[string]string{"LINEAR_API_KEY": "k", "LINEAR_ENABLED": "false"}},
		{description: "static fixture", env: map[string]string{"STATIC_FIXTURE": "/tmp/items.yaml"}, expectIDs: []string{"static"}},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			for _, key := range []string{"LINEAR_API_KEY", "LINEAR_ENABLED", "STATIC_FIXTURE"} {
				t.Setenv(key, tc.env[key])
				if _, ok := tc.env[key]; !ok {
					require.NoError(t, os.Unsetenv(key))
				}
			}
			e, err := ParseEnv()
			require.NoError(t, err)
			var ids []string
			for _, item := range e.Services() {
				ids = append(ids, item.ID)
			}
			assert.EqualValues(t, tc.expectIDs, ids)
		})
	}
}

func TestParseEnv_Error(t *testing.T) {
	t.Setenv("LINEAR_ENABLED", "maybe")
	_, err := ParseEnv()
	assert.ErrorContains(t, err, "parse env:")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("WORK_API_KEY", "work_key")
	items := []*service.Config{{ID: "work"}, {ID: "other", APIKey: "own"}}
	require.NoError(t, ApplyEnv(items))
	assert.Equal(t, "work_key", items[0].APIKey)
	assert.Equal(t, "own", items[1].APIKey)
}

func TestLoadDotEnv(t *testing.T) {
	location := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(location, []byte("MCP_GET_TEST_VALUE=loaded\n"), 0o644))
	t.Setenv("MCP_GET_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("MCP_GET_TEST_VALUE"))

	require.NoError(t, LoadDotEnv(location))
	assert.Equal(t, "loaded", os.Getenv("MCP_GET_TEST_VALUE"))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
