package dto

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engine(t *testing.T) *validator.Validate {
	t.Helper()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestAgentName_Valid(t *testing.T) {
	v := engine(t)
	cases := []string{
		"alice",
		"a",
		"agent-007",
		"data_feed.v2",
		strings.Repeat("x", 32),
	}
	for _, tc := range cases {
		assert.NoError(t, v.Var(tc, "agent_name"), "expected valid: %s", tc)
	}
}

func TestAgentName_Invalid(t *testing.T) {
	v := engine(t)
	cases := []string{
		"",
		strings.Repeat("x", 33),
	}
	for _, tc := range cases {
		assert.Error(t, v.Var(tc, "agent_name"), "expected invalid: %q", tc)
	}
}

func TestSafeURL_Valid(t *testing.T) {
	v := engine(t)
	cases := []string{
		"https://example.com/hook",
		"http://localhost:8080/notify",
		"https://hooks.internal:9443/agents/alice",
	}
	for _, tc := range cases {
		assert.NoError(t, v.Var(tc, "safe_url"), "expected valid: %s", tc)
	}
}

func TestSafeURL_Invalid(t *testing.T) {
	v := engine(t)
	cases := []string{
		"",
		"ftp://example.com/hook",
		"not a url",
		"/relative/path",
		"https://",
	}
	for _, tc := range cases {
		assert.Error(t, v.Var(tc, "safe_url"), "expected invalid: %q", tc)
	}
}
