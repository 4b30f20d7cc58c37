package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"final-pay-engine/internal/config"
	"final-pay-engine/internal/model"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	opts := &RootOptions{
		Env: config.Env{LogLevel: "error", RulesTimeout: time.Second},
		Now: func() time.Time { return time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC) },
	}
	cmd := newRootCommand(opts)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestResolveGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"resolve_fixed_days", []string{"resolve", "-j", "CA", "-r", "quit", "-d", "2026-03-02", "-f", "biweekly"}},
		{"resolve_same_day", []string{"resolve", "-j", "ca", "-r", "fired", "-d", "2026-03-02", "-f", "weekly"}},
		{"resolve_default_overdue", []string{"resolve", "-j", "ZZ", "-r", "fired", "-d", "2026-01-31", "-f", "monthly", "--today", "2026-03-02"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			golden(t).Assert(t, tt.name, []byte(out))
		})
	}
}

func TestResolveDefaultsLastDayToToday(t *testing.T) {
	out, err := run(t, "resolve", "-j", "NV")
	require.NoError(t, err)
	assert.Contains(t, out, "Estimated deadline: Monday, March 9, 2026")
}

func TestResolveJSON(t *testing.T) {
	out, err := run(t, "resolve", "--format", "json", "-j", "NY", "-r", "quit", "-d", "2026-03-02", "-f", "weekly")
	require.NoError(t, err)

	var resp model.ResolveResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.CalculationResult.Result)
	assert.Equal(t, "2026-03-09", resp.CalculationResult.Result.DeadlineDate.String())
	assert.True(t, resp.CalculationResult.Result.IsNextPayday)
}

func TestResolveRejectsBadInput(t *testing.T) {
	out, err := run(t, "resolve", "-j", "CA", "-r", "retired", "-d", "2026-13-01")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "CRITICAL INVALID_SEPARATION_REASON")
	assert.Contains(t, out, "CRITICAL INVALID_LAST_DAY_WORKED")
	assert.NotContains(t, out, "Estimated deadline")
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, "resolve", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestScenariosText(t *testing.T) {
	out, err := run(t, "scenarios", "-j", "CA", "-r", "quit", "-d", "2026-03-02")
	require.NoError(t, err)
	assert.Contains(t, out, "Current")
	assert.Contains(t, out, "separation_reason=fired")
	assert.Contains(t, out, "Same day as separation")
	assert.Contains(t, out, "jurisdiction=TX")
	assert.NotContains(t, out, "jurisdiction=CA")
}

func TestRulesList(t *testing.T) {
	out, err := run(t, "rules", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "NV   Nevada")
	assert.Contains(t, out, "next_payday")
}

func writeRuleFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRulesFileReplacesBuiltins(t *testing.T) {
	path := writeRuleFile(t, "jurisdictions:\n  CA: {name: California, quit: 3, fired: 0, laid_off: next_payday}\n")

	out, err := run(t, "--rules", path, "resolve", "-j", "CA", "-r", "quit", "-d", "2026-03-02")
	require.NoError(t, err)
	assert.Contains(t, out, "CA requires payment within 3 days")

	out, err = run(t, "--rules", path, "resolve", "-j", "NV", "-r", "quit", "-d", "2026-03-02")
	require.NoError(t, err)
	assert.Contains(t, out, "No specific state law")
}

func TestRulesCheck(t *testing.T) {
	good := writeRuleFile(t, "jurisdictions:\n  OR: {quit: 5, fired: 0, laid_off: 0}\n")
	out, err := run(t, "rules", "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "1 jurisdictions")

	bad := writeRuleFile(t, "jurisdictions:\n  OR: {quit: -5, fired: 0, laid_off: 0}\n")
	_, err = run(t, "rules", "check", bad)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestUnreadableRulesFile(t *testing.T) {
	_, err := run(t, "--rules", filepath.Join(t.TempDir(), "missing.yaml"), "rules", "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
