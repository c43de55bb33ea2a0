package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMetricFamily(families []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

func findMetricByLabels(family *dto.MetricFamily, labels map[string]string) *dto.Metric {
	if family == nil {
		return nil
	}
	for _, m := range family.GetMetric() {
		matched := 0
		for _, lp := range m.GetLabel() {
			if v, ok := labels[lp.GetName()]; ok && v == lp.GetValue() {
				matched++
			}
		}
		if matched == len(labels) {
			return m
		}
	}
	return nil
}

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder(Config{})

	r.Classified("kitchen", "kitchen_signals")
	r.Classified("kitchen", "kitchen_signals")
	r.Classified("financialDocument", "financial_discriminator")
	r.Rendered("bedroom")
	r.Extracted("Appliances", 3)
	r.Extracted("Appliances", 0)
	r.MaterialOrderBuilt("Appliances")
	r.Reset("appliances", true)
	r.Reset("garage-doors", false)

	families, err := r.Gather()
	require.NoError(t, err)

	tests := []struct {
		name   string
		labels map[string]string
		want   float64
	}{
		{name: "forms_classifications_total", labels: map[string]string{"kind": "kitchen", "rule": "kitchen_signals"}, want: 2},
		{name: "forms_classifications_total", labels: map[string]string{"kind": "financialDocument"}, want: 1},
		{name: "forms_renders_total", labels: map[string]string{"kind": "bedroom"}, want: 1},
		{name: "forms_extractions_total", labels: map[string]string{"section": "Appliances"}, want: 2},
		{name: "forms_extracted_items_total", labels: map[string]string{"section": "Appliances"}, want: 3},
		{name: "forms_material_orders_total", labels: map[string]string{"section": "Appliances"}, want: 1},
		{name: "forms_resets_total", labels: map[string]string{"tag": "appliances", "known": "true"}, want: 1},
		{name: "forms_resets_total", labels: map[string]string{"tag": "unknown", "known": "false"}, want: 1},
	}

	for _, tt := range tests {
		m := findMetricByLabels(findMetricFamily(families, tt.name), tt.labels)
		require.NotNil(t, m, "%s %v", tt.name, tt.labels)
		assert.Equal(t, tt.want, m.GetCounter().GetValue(), "%s %v", tt.name, tt.labels)
	}
}

func TestRecorder_ObserveDuration(t *testing.T) {
	r := NewRecorder(Config{Namespace: "test"})
	r.ObserveDuration("render", time.Now().Add(-2*time.Millisecond))

	families, err := r.Gather()
	require.NoError(t, err)

	hist := findMetricFamily(families, "test_operation_duration_seconds")
	require.NotNil(t, hist)
	assert.Equal(t, dto.MetricType_HISTOGRAM, hist.GetType())
	m := findMetricByLabels(hist, map[string]string{"operation": "render"})
	require.NotNil(t, m)
	assert.Equal(t, uint64(1), m.GetHistogram().GetSampleCount())
	assert.Greater(t, m.GetHistogram().GetSampleSum(), 0.0)
}

func TestRecorder_RuntimeCollectors(t *testing.T) {
	families, err := NewRecorder(Config{RuntimeCollectors: true}).Gather()
	require.NoError(t, err)
	assert.NotNil(t, findMetricFamily(families, "go_goroutines"))

	families, err = NewRecorder(Config{}).Gather()
	require.NoError(t, err)
	assert.Nil(t, findMetricFamily(families, "go_goroutines"))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder(Config{})
	r.Classified("remedial", "remedial_checklist")

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `forms_classifications_total{kind="remedial",rule="remedial_checklist"} 1`)
}

func TestRecorder_HTTPRequests(t *testing.T) {
	r := NewRecorder(Config{})

	r.HTTPRequestStarted()
	r.HTTPRequestStarted()
	r.HTTPRequestFinished("POST", "/api/v1/submissions/render", 200, time.Now(), 512)

	families, err := r.Gather()
	require.NoError(t, err)

	requests := findMetricByLabels(findMetricFamily(families, "forms_http_server_requests_total"),
		map[string]string{"method": "POST", "route": "/api/v1/submissions/render", "status_code": "200"})
	require.NotNil(t, requests)
	assert.Equal(t, float64(1), requests.GetCounter().GetValue())

	active := findMetricFamily(families, "forms_http_server_active_requests")
	require.NotNil(t, active)
	assert.Equal(t, float64(1), active.GetMetric()[0].GetGauge().GetValue())

	size := findMetricByLabels(findMetricFamily(families, "forms_http_server_response_size_bytes"),
		map[string]string{"method": "POST", "route": "/api/v1/submissions/render"})
	require.NotNil(t, size)
	assert.Equal(t, uint64(1), size.GetHistogram().GetSampleCount())
}
