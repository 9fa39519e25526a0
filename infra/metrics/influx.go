package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/transport/core/metrics"
	"github.com/kilianp07/transport/infra/logger"
)

// InfluxSink writes solve events to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordSolve writes one transport_solve point.
func (s *InfluxSink) RecordSolve(ev coremetrics.SolveEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("transport_solve").
		AddTag("solve_id", ev.ID).
		AddTag("outcome", ev.Outcome()).
		AddTag("dummy", ev.Dummy.String())
	if ev.Name != "" {
		p = p.AddTag("problem", ev.Name)
	}
	p = p.AddField("rows", ev.Rows).
		AddField("columns", ev.Columns).
		AddField("balanced", ev.Balanced).
		AddField("degenerate", ev.Degenerate).
		AddField("iterations", ev.Iterations).
		AddField("initial_cost", round3(ev.InitialCost)).
		AddField("total_cost", round3(ev.TotalCost)).
		AddField("duration_ms", round3(float64(ev.Duration)/float64(time.Millisecond)))
	if ev.Err != "" {
		p = p.AddField("error", ev.Err)
	}
	p = p.SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordStep writes one transport_pivot point.
func (s *InfluxSink) RecordStep(ev coremetrics.StepEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("transport_pivot").
		AddTag("solve_id", ev.SolveID).
		AddTag("step", strconv.Itoa(ev.Step.Index)).
		AddField("entering", ev.Step.Entering.String()).
		AddField("leaving", ev.Step.Leaving.String()).
		AddField("delta", round3(ev.Step.Delta)).
		AddField("theta", round3(ev.Step.Theta)).
		AddField("cost", round3(ev.Step.Cost)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the client resources.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
