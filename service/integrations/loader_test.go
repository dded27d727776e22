package integrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadStore(t *testing.T) *Store {
	t.Helper()
	s, err := Load()
	require.NoError(t, err)
	return s
}

func TestLoad_AllPanels(t *testing.T) {
	s := loadStore(t)

	sql := s.SQLInsights()
	assert.Len(t, sql.Warehouses, 2)
	assert.Len(t, sql.RecentQueries, 3)
	assert.Equal(t, 156, sql.PerformanceMetrics.TotalQueriesToday)

	wf := s.Workflows()
	assert.Len(t, wf.Jobs, 4)
	assert.Len(t, wf.RecentRuns, 3)
	assert.Nil(t, wf.Jobs[1].Duration, "运行中的作业没有时长")
	assert.Nil(t, wf.RecentRuns[1].EndTime)

	assert.Len(t, s.LakeTables().Tables, 3)
	assert.Len(t, s.ModelRegistry().Models, 3)
	assert.Len(t, s.GovernanceCatalog().Tables, 3)
}

func TestSummaries(t *testing.T) {
	s := loadStore(t)

	wf := s.Workflows().Summary
	assert.Equal(t, 4, wf.TotalJobs)
	assert.Equal(t, 1, wf.RunningJobs)
	assert.Equal(t, 1, wf.FailedJobs)
	assert.Equal(t, 23, wf.TotalRunsToday)
	assert.InDelta(t, 94.6, wf.SuccessRate, 0.06)
	assert.InDelta(t, 8.1, wf.AvgDuration, 0.001)

	lake := s.LakeTables().Summary
	assert.Equal(t, 3, lake.TotalTables)
	assert.Equal(t, 2, lake.HealthyTables)
	assert.Equal(t, int64(10195000), lake.TotalRows)
	assert.InDelta(t, 18.3, lake.TotalSizeGB, 0.001)

	reg := s.ModelRegistry().Summary
	assert.Equal(t, 3, reg.TotalExperiments)
	assert.Equal(t, 2, reg.ActiveExperiments)
	assert.Equal(t, 1, reg.ProductionModels)
	assert.InDelta(t, 89.7, reg.AvgAccuracy, 0.001)

	gov := s.GovernanceCatalog().Summary
	assert.Equal(t, 2, gov.TotalCatalogs)
	assert.Equal(t, 3, gov.TotalSchemas)
	assert.Equal(t, 1, gov.PIITables)
	assert.Equal(t, "2025-10-28T16:30:00Z", gov.LastAudit)
}

func TestLookups(t *testing.T) {
	s := loadStore(t)

	job, ok := s.Job("job-003")
	require.True(t, ok)
	assert.Equal(t, "FAILED", job.Status)
	_, ok = s.Job("job-999")
	assert.False(t, ok)

	table, ok := s.Table("ml_models.features.customer_features")
	require.True(t, ok)
	assert.Equal(t, "INTERNAL", table.Properties["classification"])
	_, ok = s.Table("customers")
	assert.False(t, ok, "查找需要三段式全名")
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := loadStore(t)

	table, _ := s.Table("main.sales.customers")
	table.Properties["classification"] = "PUBLIC"
	table.Tags[0] = "mutated"

	again, _ := s.Table("main.sales.customers")
	assert.Equal(t, "PII", again.Properties["classification"])
	assert.Equal(t, "pii", again.Tags[0])

	wf := s.Workflows()
	*wf.Jobs[0].Duration = 0
	assert.InDelta(t, 12.5, *s.Workflows().Jobs[0].Duration, 0.001)
}

func TestLoadFS_Errors(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{})
	assert.Error(t, err)

	broken := fstest.MapFS{
		sqlFile: {Data: []byte("warehouses: [unterminated")},
	}
	_, err = LoadFS(broken)
	assert.ErrorContains(t, err, sqlFile)
}
