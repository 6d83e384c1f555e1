// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/copy-engine/pkg/types"
)

// execute runs the root command with args. Cobra flag state persists
// between calls, so each test sets every flag it depends on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeStderr(t, args...)
	return out, err
}

// executeStderr is execute that also returns what the command wrote to
// stderr.
func executeStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() { rootCmd.SetErr(io.Discard) })
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestLoadConfigDefaultsAndEnv(t *testing.T) {
	t.Setenv("COPY_ENGINE_SOCIAL_MOODBOARD_CAP", "7")
	t.Setenv("COPY_ENGINE_SERVER_WRITE_TIMEOUT", "3s")
	configureEnv()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Social.MoodboardCap)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "output", cfg.Output.Dir)
}

func TestEmailCommand(t *testing.T) {
	out, err := execute(t, "email",
		"--format", "json",
		"--sender", "Ava",
		"--recipient", "Jordan",
		"--subject", "Sprint recap",
		"--objective", "align on decisions",
		"--tone", "professional",
		"--cta", "Approve by Thursday",
	)
	require.NoError(t, err)

	var got types.EmailResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Best regards,\nAva", got.Signoff)
	assert.Contains(t, got.Body, "Next step: Approve by Thursday.")
}

func TestSocialCommandFromBrief(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch.yaml")
	brief := `kind: social
payload:
  campaign_name: Velocity Sprint
  key_message: ship faster
  tone: bold
  target_audience: founders
  platforms: [linkedin]
`
	require.NoError(t, os.WriteFile(path, []byte(brief), 0o644))

	out, err := execute(t, "social", "--format", "markdown", "--brief", path, "--platform", "linkedin,tiktok")
	require.NoError(t, err)
	assert.Contains(t, out, "# Velocity Sprint")
	assert.Contains(t, out, "## LinkedIn")
	assert.Contains(t, out, "## TikTok")
}

func TestSocialCommandUnknownPlatformNote(t *testing.T) {
	out, errOut, err := executeStderr(t, "social", "--format", "markdown", "--brief", "",
		"--campaign", "Velocity Sprint", "--message", "ship faster", "--tone", "bold",
		"--audience", "founders", "--platform", "linkedin,mastodon")
	require.NoError(t, err)
	assert.Contains(t, out, "## mastodon")
	assert.Contains(t, errOut, `note: "mastodon" has no dedicated template; using generic copy`)
	assert.NotContains(t, errOut, `"linkedin"`)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "copy-engine dev\n", out)
}
