package task

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berggren/turbinia/internal/evidence"
)

func newTestResult(t *testing.T) *Result {
	t.Helper()
	tk := New("TestTask", t.TempDir(), hclog.NewNullLogger())
	return tk.NewResult()
}

func TestResultClose(t *testing.T) {
	res := newTestResult(t)
	require.False(t, res.Closed())

	require.NoError(t, res.Close(true, "2 artifacts have been extracted."))

	assert.True(t, res.Closed())
	assert.True(t, res.Successful)
	assert.Equal(t, "2 artifacts have been extracted.", res.Status)
}

func TestResultDoubleCloseRejected(t *testing.T) {
	res := newTestResult(t)
	require.NoError(t, res.Close(false, "tool exploded"))

	err := res.Close(true, "all good actually")
	require.Error(t, err)

	// The first close wins.
	assert.False(t, res.Successful)
	assert.Equal(t, "tool exploded", res.Status)
}

func TestResultLogAndEvidence(t *testing.T) {
	res := newTestResult(t)

	res.Log("starting extraction")
	res.Log("extraction finished")
	ev := evidence.NewBulkExtractorOutput()
	res.AddEvidence(ev)

	assert.Equal(t, []string{"starting extraction", "extraction finished"}, res.RunLog)
	require.Len(t, res.Evidence, 1)
	assert.Same(t, ev, res.Evidence[0])
}
