package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datamesh-service/service/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTrendCmd(t *testing.T) {
	out, err := execute(t, "--seed", "7", "trend", "--days", "3")
	require.NoError(t, err)

	var points []models.TrendPoint
	require.NoError(t, json.Unmarshal([]byte(out), &points))
	assert.Len(t, points, 3)
}

func TestSeedIsDeterministic(t *testing.T) {
	a, err := execute(t, "--seed", "99", "sources")
	require.NoError(t, err)
	b, err := execute(t, "--seed", "99", "sources")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestUpdateCmd(t *testing.T) {
	out, err := execute(t, "--seed", "1", "update", "-n", "4")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4)
}

func TestLineageCmds(t *testing.T) {
	out, err := execute(t, "lineage", "validate")
	require.NoError(t, err)
	assert.JSONEq(t, `{"valid":true,"nodes":9,"links":8}`, out)

	out, err = execute(t, "lineage", "impact", "lake")
	require.NoError(t, err)
	var impact models.LineageImpact
	require.NoError(t, json.Unmarshal([]byte(out), &impact))
	assert.Len(t, impact.Upstream, 2)
	assert.Len(t, impact.Downstream, 1)

	_, err = execute(t, "lineage", "impact", "nope")
	assert.Error(t, err)
}

func TestBaselineCmd(t *testing.T) {
	out, err := execute(t, "--pretty", "baseline")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  ")
	assert.Contains(t, out, "Customer API")
}
