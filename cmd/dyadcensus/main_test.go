package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/dyadcensus/internal/export"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "testdata", "graphs", name)
}

// runCLI runs the command with an empty config directory so a developer's
// dyadcensus.yml never leaks into the test.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"-config", t.TempDir()}, args...)
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_Version(t *testing.T) {
	out, err := runCLI(t, "-version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestRun_MissingCommand(t *testing.T) {
	_, err := runCLI(t)
	assert.ErrorContains(t, err, "missing command")
}

func TestRun_UnknownCommand(t *testing.T) {
	_, err := runCLI(t, "triads", fixture("mixed.yml"))
	assert.ErrorContains(t, err, "unknown command")
}

func TestRun_CensusCSV(t *testing.T) {
	out, err := runCLI(t, "-format", "csv", "census", fixture("mixed.yml"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "id,name,label,layer,value", lines[0])
	assert.Equal(t, "5,census06,(06) Mixed assym,1,1", lines[6])
}

func TestRun_RecipJSON(t *testing.T) {
	out, err := runCLI(t, "-format", "json", "recip", fixture("mixed.yml"))
	require.NoError(t, err)

	var got export.ResultExport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "recip", got.Family)
	assert.Equal(t, "mixed", got.Graph.Name)
	require.Len(t, got.Rows, 5)
	assert.Equal(t, "mixed_recip", got.Rows[4].Name)
	assert.Equal(t, int64(1), got.Rows[4].Value)
}

func TestRun_AllTable(t *testing.T) {
	out, err := runCLI(t, "-workers", "2", "all", fixture("mixed.yml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ID"))
	assert.Contains(t, out, "mixed_recip")
	assert.Contains(t, out, "census10")
}

func TestRun_PartitionFlags(t *testing.T) {
	out, err := runCLI(t,
		"-nodes", "9", "-netsize", "3", "-endpoints", "3,6", "-format", "csv",
		"census", fixture("three_layers.csv"),
	)
	require.NoError(t, err)

	values := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n")[1:] {
		f := strings.Split(line, ",")
		values[f[1]+"@"+f[3]] = f[4]
	}
	assert.Equal(t, "1", values["census10@1"])
	assert.Equal(t, "1", values["census06@1"])
	assert.Equal(t, "1", values["census01@1"])
	assert.Equal(t, "1", values["census09@2"])
	assert.Equal(t, "1", values["census04@2"])
	assert.Equal(t, "1", values["census01@2"])
	assert.Equal(t, "0", values["census05@2"])
}

func TestRun_BadPartition(t *testing.T) {
	_, err := runCLI(t, "-netsize", "3", "census", fixture("mixed.yml"))
	assert.ErrorContains(t, err, "invalid layer partition")

	_, err = runCLI(t, "-endpoints", "2,x", "census", fixture("mixed.yml"))
	assert.Error(t, err)
}

func TestRun_BadFormatAndIndex(t *testing.T) {
	_, err := runCLI(t, "-format", "xml", "census", fixture("mixed.yml"))
	assert.ErrorContains(t, err, "unknown format")

	_, err = runCLI(t, "-index", "bitset", "census", fixture("mixed.yml"))
	assert.ErrorContains(t, err, "unknown index")
}

func TestRun_Edgelist(t *testing.T) {
	out, err := runCLI(t, "edgelist", fixture("mixed.yml"))
	require.NoError(t, err)
	assert.Equal(t, "source,target\n1,2\n4,3\n", out)
}

func TestRun_Print(t *testing.T) {
	out, err := runCLI(t, "print", fixture("mixed.yml"))
	require.NoError(t, err)
	assert.Equal(t, "A graph with 2 networks of size 2.\n", out)

	out, err = runCLI(t, "-verbose", "print", fixture("mixed.yml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Layer 1 (nodes 3-4): 1 edges")
}

func TestRun_Diagram(t *testing.T) {
	out, err := runCLI(t, "-layer", "1", "diagram", fixture("mixed.yml"))
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "N1 --> N0")
}

func TestRun_ConfigFormat(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dyadcensus.yml"), []byte("format: csv\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-config", dir, "recip", fixture("mixed.yml")}, &stdout, &stderr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), "id,name,label,layer,value\n"))
}

func TestRun_MissingFile(t *testing.T) {
	_, err := runCLI(t, "census")
	assert.ErrorContains(t, err, "expected exactly one graph file")

	_, err = runCLI(t, "census", fixture("nope.yml"))
	assert.Error(t, err)
}

func TestRun_Classifiers(t *testing.T) {
	out, err := runCLI(t, "-format", "json", "-classifiers", "census06, mixed_recip", "all", fixture("mixed.yml"))
	require.NoError(t, err)

	var got export.ResultExport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "custom", got.Family)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "census06", got.Rows[0].Name)
	assert.Equal(t, "mixed_recip", got.Rows[1].Name)
	assert.Equal(t, int64(1), got.Rows[0].Value)
	assert.Equal(t, int64(1), got.Rows[1].Value)

	_, err = runCLI(t, "-classifiers", "census11", "census", fixture("mixed.yml"))
	assert.ErrorContains(t, err, "unknown classifier")
}
