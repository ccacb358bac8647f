package metric_test

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/raguno/raguno/kit/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestREDClientRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	client := metric.New(reg, "provisioning")

	rec := client.Record("provision")
	require.NoError(t, rec(nil))

	rec = client.Record("provision")
	err := rec(fmt.Errorf("boom"))
	require.EqualError(t, err, "boom", "the recorded error must be returned unaltered")

	mfs, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, mf := range mfs {
		if mf.GetName() != "service_provisioning_call_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			counts[labelValue(m, "error")] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 1.0, counts["false"])
	assert.Equal(t, 1.0, counts["true"])
}

func labelValue(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}
