// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package brief

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/copy-engine/internal/generate"
	"github.com/pdiddy/copy-engine/pkg/types"
)

const emailBrief = `kind: email
payload:
  sender_name: Ava
  recipient_name: Jordan
  subject_idea: Sprint recap
  objective: align on decisions
  tone: professional
  call_to_action: Approve by Thursday
`

const socialBrief = `{
  "kind": "social",
  "payload": {
    "campaignName": "Velocity Sprint",
    "keyMessage": "ship faster",
    "tone": "bold",
    "targetAudience": "founders",
    "platforms": ["linkedin", "tiktok"],
    "url": "https://x.io"
  }
}`

const sarcasticBrief = `kind: email
payload:
  subject_idea: Sprint recap
  objective: align on decisions
  tone: sarcastic
  call_to_action: Approve by Thursday
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	env, err := Load(writeFile(t, dir, "recap.yaml", emailBrief))
	require.NoError(t, err)
	assert.Equal(t, types.KindEmail, env.Kind)
	assert.Equal(t, "Ava", env.Payload.SenderName)
	assert.Equal(t, "Approve by Thursday", env.Payload.CallToAction)

	env, err = Load(writeFile(t, dir, "launch.json", socialBrief))
	require.NoError(t, err)
	assert.Equal(t, types.KindSocial, env.Kind)
	assert.Equal(t, []string{"linkedin", "tiktok"}, env.Payload.Platforms)
	assert.Equal(t, "https://x.io", env.Payload.URL)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading brief")

	_, err = Load(writeFile(t, dir, "bad.yaml", "kind: [email\n"))
	require.Error(t, err)
	assert.Equal(t, types.ErrMalformed, types.KindOf(err))

	_, err = Load(writeFile(t, dir, "bad.json", "{kind"))
	require.Error(t, err)
	assert.Equal(t, types.ErrMalformed, types.KindOf(err))

	_, err = Load(writeFile(t, dir, "notes.txt", "hello"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported brief extension")
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yml", emailBrief)
	writeFile(t, dir, "a.json", socialBrief)
	writeFile(t, dir, "c.YAML", emailBrief)
	writeFile(t, dir, "README.md", "# briefs")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	files, err := Files(dir)
	require.NoError(t, err)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	assert.Equal(t, []string{"a.json", "b.yml", "c.YAML"}, names)

	_, err = Files(filepath.Join(dir, "absent"))
	assert.Error(t, err)
}

func TestName(t *testing.T) {
	assert.Equal(t, "recap", Name("/briefs/recap.yaml"))
	assert.Equal(t, "launch.v2", Name("launch.v2.json"))
}

// failingGenerator fails every social request.
type failingGenerator struct {
	inner Generator
}

func (g failingGenerator) Generate(req types.Request) (types.Result, error) {
	if req.Kind == types.KindSocial {
		return types.Result{}, types.Internal("stub failure")
	}
	return g.inner.Generate(req)
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	writeFile(t, dir, "01-recap.yaml", emailBrief)
	writeFile(t, dir, "02-launch.json", socialBrief)
	writeFile(t, dir, "03-sarcastic.yaml", sarcasticBrief)
	writeFile(t, dir, "04-broken.json", "{")

	var buf bytes.Buffer
	summary, err := RunBatch(context.Background(), dir, outDir, types.OutputMarkdown, generate.New(types.SocialConfig{}), &buf)
	require.NoError(t, err)

	assert.Equal(t, Summary{Generated: 2, Rejected: 2}, summary)
	assert.Equal(t, 4, summary.Total())

	out := buf.String()
	assert.Contains(t, out, "generated 01-recap (email)")
	assert.Contains(t, out, "generated 02-launch (social)")
	assert.Contains(t, out, "rejected  03-sarcastic: unsupported_tone")
	assert.Contains(t, out, "rejected  04-broken: malformed_request")
	assert.True(t, strings.HasSuffix(out, "generated: 2, rejected: 2, failed: 0\n"))

	data, err := os.ReadFile(filepath.Join(outDir, "01-recap.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Next step: Approve by Thursday.")

	data, err = os.ReadFile(filepath.Join(outDir, "02-launch.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "## LinkedIn")

	_, err = os.Stat(filepath.Join(outDir, "03-sarcastic.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunBatchCountsGeneratorFailures(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()
	writeFile(t, dir, "recap.yaml", emailBrief)
	writeFile(t, dir, "launch.json", socialBrief)

	var buf bytes.Buffer
	gen := failingGenerator{inner: generate.New(types.SocialConfig{})}
	summary, err := RunBatch(context.Background(), dir, outDir, types.OutputJSON, gen, &buf)
	require.NoError(t, err)

	assert.Equal(t, Summary{Generated: 1, Failed: 1}, summary)
	assert.Contains(t, buf.String(), "failed    launch: internal_generation: stub failure")
	assert.FileExists(t, filepath.Join(outDir, "recap.json"))
}

func TestRunBatchCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "recap.yaml", emailBrief)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	summary, err := RunBatch(ctx, dir, t.TempDir(), types.OutputMarkdown, generate.New(types.SocialConfig{}), &buf)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, summary.Total())
}

func TestRunBatchMissingDir(t *testing.T) {
	var buf bytes.Buffer
	_, err := RunBatch(context.Background(), filepath.Join(t.TempDir(), "none"), t.TempDir(), types.OutputMarkdown, generate.New(types.SocialConfig{}), &buf)
	require.Error(t, err)
}
