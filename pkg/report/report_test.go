package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IPampurin/sort-benchmark/pkg/models"
)

var sampleRow = models.Row{
	Size:              1000,
	Distribution:      "SORTED_DESC",
	DistributionLabel: "Sorted (desc)",
	Algorithm:         "HeapSort",
	Elapsed:           1234567 * time.Nanosecond,
	Valid:             true,
}

func TestNew(t *testing.T) {

	var buf bytes.Buffer

	p, err := New("table", &buf, false)
	require.NoError(t, err)
	assert.IsType(t, &Table{}, p)

	p, err = New("", &buf, false)
	require.NoError(t, err)
	assert.IsType(t, &Table{}, p)

	p, err = New("json", &buf, false)
	require.NoError(t, err)
	assert.IsType(t, &JSON{}, p)

	_, err = New("xml", &buf, false)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestTable(t *testing.T) {

	var buf bytes.Buffer
	p := NewTable(&buf, false)

	require.NoError(t, p.Header())
	require.NoError(t, p.Row(sampleRow))

	failed := sampleRow
	failed.Valid = false
	require.NoError(t, p.Row(failed))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Size       Distribution         Algorithm                           Time (ms)       Status    ", lines[0])
	assert.Equal(t, "1000       Sorted (desc)        HeapSort                            1.235           ok        ", lines[1])
	assert.True(t, strings.HasSuffix(lines[2], "error     "))
	assert.Len(t, lines[1], len(lines[0]))
}

func TestTableColored(t *testing.T) {

	var buf bytes.Buffer
	p := NewTable(&buf, true)

	require.NoError(t, p.Row(sampleRow))

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "ok        ")
}

func TestTableSummary(t *testing.T) {

	var buf bytes.Buffer
	p := NewTable(&buf, false)

	require.NoError(t, p.Summary(models.Summary{
		Trials:         60,
		Failures:       2,
		ElementsSorted: 320000,
		TotalElapsed:   1500 * time.Microsecond,
	}))

	assert.Equal(t, "\ntrials: 60, failures: 2, elements sorted: 320,000, total sort time: 1.500 ms\n", buf.String())
}

func TestJSON(t *testing.T) {

	var buf bytes.Buffer
	p := NewJSON(&buf)

	require.NoError(t, p.Header())
	require.NoError(t, p.Row(sampleRow))
	require.NoError(t, p.Summary(models.Summary{Trials: 1}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var row map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &row))
	assert.Equal(t, float64(1000), row["size"])
	assert.Equal(t, "SORTED_DESC", row["distribution"])
	assert.Equal(t, "HeapSort", row["algorithm"])
	assert.Equal(t, "ok", row["status"])
	assert.InDelta(t, 1.234567, row["elapsed_ms"], 1e-9)

	var summary struct {
		Summary models.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &summary))
	assert.Equal(t, 1, summary.Summary.Trials)
}
