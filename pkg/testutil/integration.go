package testutil

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ajitpratap0/rostergen/pkg/config"
)

// RosterSuite provides a context and a scratch directory shared by the
// tests of a suite.
type RosterSuite struct {
	suite.Suite
	ctx       context.Context
	cancel    context.CancelFunc
	tempDir   string
	startTime time.Time
}

// SetupSuite runs before all tests in the suite
func (s *RosterSuite) SetupSuite() {
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 5*time.Minute)
	s.startTime = time.Now()

	tempDir, err := os.MkdirTemp("", "rostergen-test-*")
	require.NoError(s.T(), err)
	s.tempDir = tempDir
}

// TearDownSuite runs after all tests in the suite
func (s *RosterSuite) TearDownSuite() {
	s.cancel()
	if s.tempDir != "" {
		_ = os.RemoveAll(s.tempDir)
	}
	s.T().Logf("suite completed in %v", time.Since(s.startTime))
}

// Context returns the suite context
func (s *RosterSuite) Context() context.Context {
	return s.ctx
}

// Path returns name inside the suite directory.
func (s *RosterSuite) Path(name string) string {
	return filepath.Join(s.tempDir, name)
}

// Config returns the default configuration writing to name inside the suite
// directory, with the report and metrics logging off.
func (s *RosterSuite) Config(name string) *config.Config {
	cfg := config.Default()
	cfg.Output.Path = s.Path(name)
	cfg.Observability.EnableMetrics = false
	cfg.Report.Enabled = false
	return cfg
}
