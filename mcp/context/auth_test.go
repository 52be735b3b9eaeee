package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithAuthToken(t *testing.T) {
	testCases := []struct {
		description string
		token       string
		expect      string
		expectOK    bool
	}{
		{description: "plain", token: "lin_api_key", expect: "lin_api_key", expectOK: true},
		{description: "bearer prefix", token: "Bearer abc", expect: "abc", expectOK: true},
		{description: "empty", token: "", expectOK: false},
		{description: "blank bearer", token: "Bearer  ", expectOK: false},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			token, ok := AuthToken(WithAuthToken(context.Background(), tc.token))
			assert.Equal(t, tc.expectOK, ok)
			assert.Equal(t, tc.expect, token)
		})
	}
}
