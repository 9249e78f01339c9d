package iometrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/ncbitax/internal/iometrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	m := iometrics.New()
	m.Record(iometrics.Imported)
	m.Record(iometrics.Imported)
	m.Record(iometrics.Rejected)
	m.Matches(42)

	n, err := testutil.GatherAndCount(m.Registry(), "ncbitax_records_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per result label")
}

func TestWriteFile(t *testing.T) {
	m := iometrics.New()
	m.Record(iometrics.Imported)
	m.Request("efetch", 200, 150*time.Millisecond)
	m.Request("esearch", 0, time.Second)
	m.Links("Wikipedia", 3)
	m.Matches(2)

	path := filepath.Join(t.TempDir(), "ncbitax.prom")
	require.NoError(t, m.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	txt := string(data)
	assert.Contains(t, txt, `ncbitax_records_total{result="imported"} 1`)
	assert.Contains(t, txt, `ncbitax_eutils_requests_total{endpoint="efetch",status="200"} 1`)
	assert.Contains(t, txt, `ncbitax_eutils_requests_total{endpoint="esearch",status="error"} 1`)
	assert.Contains(t, txt, `ncbitax_linkout_links_total{provider="Wikipedia"} 3`)
	assert.Contains(t, txt, "ncbitax_search_matches 2")
}

func TestWriteFileError(t *testing.T) {
	m := iometrics.New()
	err := m.WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir", "m.prom"))
	assert.Error(t, err)
}

func TestNilMetrics(t *testing.T) {
	var m *iometrics.Metrics
	assert.NotPanics(t, func() {
		m.Record(iometrics.Imported)
		m.Request("efetch", 200, time.Second)
		m.Links("BBC", 1)
		m.Matches(1)
	})
	assert.NoError(t, m.WriteFile("/nonexistent/m.prom"))
	assert.Nil(t, m.Registry())
}
