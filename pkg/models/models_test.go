package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRowStatus(t *testing.T) {

	assert.Equal(t, "ok", Row{Valid: true}.Status())
	assert.Equal(t, "error", Row{Valid: false}.Status())
}

func TestRowElapsedMs(t *testing.T) {

	row := Row{Elapsed: 1500 * time.Microsecond}

	assert.InDelta(t, 1.5, row.ElapsedMs(), 1e-9)
}

func TestSummaryAdd(t *testing.T) {

	var s Summary
	s.Add(Row{Size: 1000, Elapsed: time.Millisecond, Valid: true})
	s.Add(Row{Size: 500, Elapsed: 2 * time.Millisecond, Valid: false})

	assert.Equal(t, 2, s.Trials)
	assert.Equal(t, 1, s.Failures)
	assert.Equal(t, int64(1500), s.ElementsSorted)
	assert.Equal(t, 3*time.Millisecond, s.TotalElapsed)
}
