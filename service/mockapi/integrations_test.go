package mockapi

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"datamesh-service/service/generator"
)

// IntegrationPanelsTestSuite 集成面板测试套件
type IntegrationPanelsTestSuite struct {
	suite.Suite
	api *MockAPI
	ctx context.Context
}

// SetupSuite 创建零延迟门面
func (s *IntegrationPanelsTestSuite) SetupSuite() {
	api, err := New(generator.New(generator.WithSeed(5)), WithNoLatency())
	s.Require().NoError(err)
	s.api = api
	s.ctx = context.Background()
}

// TearDownSuite 关闭门面
func (s *IntegrationPanelsTestSuite) TearDownSuite() {
	s.api.Close()
}

func (s *IntegrationPanelsTestSuite) TestPanelsAreLoaded() {
	sql, err := s.api.GetSQLInsights(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(sql.Warehouses)

	lake, err := s.api.GetLakeTables(s.ctx)
	s.Require().NoError(err)
	s.Equal(len(lake.Tables), lake.Summary.TotalTables)

	registry, err := s.api.GetModelRegistry(s.ctx)
	s.Require().NoError(err)
	s.Equal(len(registry.Models), registry.Summary.TotalModels)

	catalog, err := s.api.GetGovernanceCatalog(s.ctx)
	s.Require().NoError(err)
	s.Equal(len(catalog.Tables), catalog.Summary.TotalTables)
}

func (s *IntegrationPanelsTestSuite) TestLookups() {
	job, err := s.api.GetWorkflowJob(s.ctx, "job-001")
	s.Require().NoError(err)
	s.Equal("Customer Data Pipeline", job.Name)

	_, err = s.api.GetWorkflowJob(s.ctx, "job-404")
	s.True(errors.Is(err, ErrNotFound))

	table, err := s.api.GetCatalogTable(s.ctx, "main.sales.customers")
	s.Require().NoError(err)
	s.Equal("main.sales.customers", table.FullName())

	_, err = s.api.GetCatalogTable(s.ctx, "main.sales")
	var nf *NotFoundError
	s.Require().ErrorAs(err, &nf)
	s.Equal("main.sales", nf.ID)
}

func (s *IntegrationPanelsTestSuite) TestReturnsCopies() {
	wf, err := s.api.GetWorkflows(s.ctx)
	s.Require().NoError(err)
	wf.Jobs[0].Name = "mutated"

	again, err := s.api.GetWorkflows(s.ctx)
	s.Require().NoError(err)
	s.Equal("Customer Data Pipeline", again.Jobs[0].Name)
}

func (s *IntegrationPanelsTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.api.GetSQLInsights(ctx)
	s.ErrorIs(err, context.Canceled)
}

func TestIntegrationPanelsTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationPanelsTestSuite))
}
