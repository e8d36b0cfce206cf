package observe

import (
	"context"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const meterName = "lexicam"

// Metric names.
const (
	RequestDurationName = "lexicam.backend.request.duration"
	RequestCountName    = "lexicam.backend.request.count"
)

// Outcome attribute values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the backend request instruments.
type Metrics struct {
	// RequestDuration is the round-trip time per backend call, in seconds.
	RequestDuration metric.Float64Histogram

	// RequestCount counts backend calls by operation and outcome.
	RequestCount metric.Int64Counter
}

// NewMetrics creates the instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)

	dur, err := meter.Float64Histogram(RequestDurationName,
		metric.WithDescription("Backend request round-trip time."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	cnt, err := meter.Int64Counter(RequestCountName,
		metric.WithDescription("Backend requests by operation and outcome."),
	)
	if err != nil {
		return nil, err
	}
	return &Metrics{RequestDuration: dur, RequestCount: cnt}, nil
}

// RecordRequest records one backend call. A nil receiver is a no-op.
func (m *Metrics) RecordRequest(ctx context.Context, op string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	)
	m.RequestDuration.Record(ctx, d.Seconds(), attrs)
	m.RequestCount.Add(ctx, 1, attrs)
}

// OpSummary is the request tally for one operation.
type OpSummary struct {
	Operation string
	OK        int64
	Errors    int64
}

// Summarize collects reader and tallies request counts per operation,
// sorted by operation name.
func Summarize(ctx context.Context, reader *sdkmetric.ManualReader) ([]OpSummary, error) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return nil, err
	}

	byOp := make(map[string]*OpSummary)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != RequestCountName {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				opVal, _ := dp.Attributes.Value("operation")
				outVal, _ := dp.Attributes.Value("outcome")
				op := opVal.AsString()
				s, ok := byOp[op]
				if !ok {
					s = &OpSummary{Operation: op}
					byOp[op] = s
				}
				if outVal.AsString() == OutcomeError {
					s.Errors += dp.Value
				} else {
					s.OK += dp.Value
				}
			}
		}
	}

	out := make([]OpSummary, 0, len(byOp))
	for _, s := range byOp {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Operation < out[j].Operation })
	return out, nil
}
