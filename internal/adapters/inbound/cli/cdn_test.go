package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCDNPurgeCmd_SkipsWithoutToken(t *testing.T) {
	t.Setenv("HERMES_CDN_PURGE_TOKEN", "")

	out, err := run(t, "cdn", "purge", "--paths", "/a.css,/b.css", "--json")
	require.NoError(t, err)

	var res struct {
		Skipped bool   `json:"skipped"`
		Reason  string `json:"reason"`
		Payload struct {
			Assets []string `json:"assets"`
		} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Skipped)
	assert.Equal(t, "missing HERMES_CDN_PURGE_TOKEN", res.Reason)
	assert.Equal(t, []string{"/a.css", "/b.css"}, res.Payload.Assets)
}

func TestCDNPurgeCmd_DryRunText(t *testing.T) {
	out, err := run(t, "cdn", "purge", "--token", "secret", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Purge skipped (dry-run enabled) for 1 asset(s)")
}
