package cli_test

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

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/core"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/internal/cli"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/internal/config"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/modelfile"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errb.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestNewRootCmd(t *testing.T) {
	cmd := cli.NewRootCmd()
	assert.Equal(t, "bayesnet", cmd.Use)

	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
		assert.NotEmpty(t, c.Short, c.Name())
		assert.NotEmpty(t, c.Example, c.Name())
	}
	assert.Subset(t, names, []string{"sample", "summary", "check", "order", "export"})
}

func TestSample_CSV(t *testing.T) {
	out, _, err := run(t, "sample", "-n", "5", "--seed", "1", "-o", "csv")
	require.NoError(t, err)

	ls := lines(out)
	require.Len(t, ls, 6)
	assert.Contains(t, strings.ToLower(ls[0]), "smoking")
}

func TestSample_Deterministic(t *testing.T) {
	a, _, err := run(t, "sample", "-n", "50", "--seed", "9", "--workers", "3", "-o", "csv")
	require.NoError(t, err)
	b, _, err := run(t, "sample", "-n", "50", "--seed", "9", "--workers", "3", "-o", "csv")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSample_JSONWithOverride(t *testing.T) {
	out, _, err := run(t, "sample", "-n", "20", "--seed", "2", "--smoking-rate", "1", "-o", "json")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 20)
	for _, r := range rows {
		assert.Equal(t, float64(1), r["Smoking"])
		assert.Contains(t, r, "ShortnessOfBreath")
	}
}

func TestSample_InvalidConfig(t *testing.T) {
	_, _, err := run(t, "sample", "-n", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "sample", "-o", "xml")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "sample", "--smoking-rate", "1.5")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestSample_Logging(t *testing.T) {
	_, stderr, err := run(t, "sample", "-n", "3", "--seed", "4", "--log-level", "debug", "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=sampling")
	assert.Contains(t, stderr, "run_id=")
	assert.Contains(t, stderr, "seed=4")
}

func TestOrder(t *testing.T) {
	out, _, err := run(t, "order", "-o", "json")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	got := []any{rows[0]["Variable"], rows[1]["Variable"], rows[2]["Variable"]}
	assert.Equal(t, []any{"Smoking", "LungCancer", "ShortnessOfBreath"}, got)
	assert.Equal(t, "Smoking", rows[1]["Parents"])
	assert.Equal(t, "non-smoker, smoker", rows[0]["States"])
}

func TestOrder_MatchesModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roots.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
variables: [{name: A, card: 2}, {name: B, card: 2}, {name: C, card: 2}]
edges: [{from: B, to: C}]
cpds:
  - {variable: A, values: [[0.5], [0.5]]}
  - {variable: B, values: [[0.5], [0.5]]}
  - {variable: C, evidence: [B], values: [[0.5, 0.5], [0.5, 0.5]]}
`), 0o600))

	m, err := modelfile.Load(path)
	require.NoError(t, err)

	out, _, err := run(t, "order", "--model", path, "-o", "json")
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r["Variable"].(string)
	}
	assert.Equal(t, m.Order(), got)
}

func TestCheck_BuiltIn(t *testing.T) {
	out, _, err := run(t, "check", "-o", "json")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	metrics := make(map[string]any, len(rows))
	for _, r := range rows {
		metrics[r["Metric"].(string)] = r["Value"]
	}
	assert.Equal(t, float64(3), metrics["variables"])
	assert.Equal(t, float64(2), metrics["edges"])
	assert.Equal(t, float64(5), metrics["cpd columns"])
}

func TestExportThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	_, _, err := run(t, "export", "--smoking-rate", "0.5", "--file", path)
	require.NoError(t, err)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "variable: Smoking")

	_, _, err = run(t, "check", "--model", path)
	require.NoError(t, err)

	out, _, err := run(t, "sample", "--model", path, "-n", "4", "--seed", "1", "-o", "csv")
	require.NoError(t, err)
	assert.Len(t, lines(out), 5)

	stdout, _, err := run(t, "export")
	require.NoError(t, err)
	assert.Contains(t, stdout, "evidence: [Smoking]")
}

func TestCheck_CyclicFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cyclic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
variables: [{name: A, card: 2}, {name: B, card: 2}]
edges: [{from: A, to: B}, {from: B, to: A}]
cpds: []
`), 0o600))

	_, stderr, err := run(t, "check", "--model", path)
	assert.ErrorIs(t, err, core.ErrCycle)
	assert.Contains(t, stderr, "cycle: A → B → A")
}

func TestCheck_CyclesSharingEdges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cyclic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
variables: [{name: A, card: 2}, {name: B, card: 2}, {name: C, card: 2}]
edges: [{from: A, to: B}, {from: B, to: C}, {from: C, to: A}, {from: A, to: C}]
cpds: []
`), 0o600))

	_, stderr, err := run(t, "check", "--model", path)
	assert.ErrorIs(t, err, core.ErrCycle)
	assert.Equal(t, []string{"cycle: A → B → C → A", "cycle: A → C → A"}, lines(stderr))
}

func TestSummary_JSON(t *testing.T) {
	out, _, err := run(t, "summary", "-n", "2000", "--seed", "3", "-o", "json")
	require.NoError(t, err)

	var report map[string][]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	total := 0.0
	for _, g := range report["counts"] {
		total += g["Count"].(float64)
	}
	assert.Equal(t, 2000.0, total)
	assert.Len(t, report["marginals"], 6)
	assert.Len(t, report["conditionals"], 8)
}

func TestSummary_Markdown(t *testing.T) {
	out, _, err := run(t, "summary", "-n", "500", "--seed", "3", "-o", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "## Joint counts")
	assert.Contains(t, out, "## Marginals")
	assert.Contains(t, out, "## Conditionals per edge")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bayesnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 7\noutput: csv\nseed: 5\n"), 0o600))

	out, _, err := run(t, "--config", path, "sample")
	require.NoError(t, err)
	assert.Len(t, lines(out), 8)

	// flags still win over the file
	out, _, err = run(t, "--config", path, "sample", "-n", "2")
	require.NoError(t, err)
	assert.Len(t, lines(out), 3)
}
