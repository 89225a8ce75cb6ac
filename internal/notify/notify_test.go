package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/coffer-dev/coffer/internal/model"
)

func TestLogEmitsStructuredEntry(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLog(zap.New(core))

	n.LoanRepaid(model.LoanRepaidEvent{
		ID:        "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Owner:     "alice",
		TotalPaid: 318,
		RepaidAt:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "loan repaid", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "alice", fields["owner"])
	assert.Equal(t, uint64(318), fields["total_paid"])
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", fields["event_id"])
}

func TestRecorder(t *testing.T) {
	var r Recorder
	assert.Empty(t, r.Events())

	r.LoanRepaid(model.LoanRepaidEvent{Owner: "alice", TotalPaid: 318})
	r.LoanRepaid(model.LoanRepaidEvent{Owner: "bob", TotalPaid: 50})

	events := r.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "alice", events[0].Owner)
	assert.Equal(t, uint64(50), events[1].TotalPaid)

	// Events returns a copy, not the live slice.
	events[0].Owner = "mallory"
	assert.Equal(t, "alice", r.Events()[0].Owner)
}
