package contract

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/projectparaiba/paraiba/schema"
)

// MockBatchRecorder is a mock implementation of BatchRecorder for testing.
type MockBatchRecorder struct {
	mock.Mock
}

var _ BatchRecorder = &MockBatchRecorder{} // Compile-time check

// ObserveBatch implements the BatchRecorder interface.
func (m *MockBatchRecorder) ObserveBatch(results []schema.RankedCandidate, elapsed time.Duration) {
	m.Called(results, elapsed)
}
