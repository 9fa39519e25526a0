package e2e

import (
	"context"
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// InfluxClient reads back what the solver's influx sink wrote.
type InfluxClient struct {
	bucket string
	client influxdb2.Client
	query  api.QueryAPI
}

// NewInfluxClient creates a client for a running InfluxDB instance.
func NewInfluxClient(url, org, bucket, token string) *InfluxClient {
	c := influxdb2.NewClient(url, token)
	return &InfluxClient{
		bucket: bucket,
		client: c,
		query:  c.QueryAPI(org),
	}
}

// Records returns every field of measurement written in the last hour, keyed
// by solve_id then field name.
func (c *InfluxClient) Records(ctx context.Context, measurement string) (map[string]map[string]any, error) {
	flux := fmt.Sprintf(`from(bucket:%q) |> range(start:-1h) |> filter(fn: (r) => r._measurement == %q)`,
		c.bucket, measurement)
	res, err := c.query.Query(ctx, flux)
	if err != nil {
		return nil, err
	}
	defer res.Close()
	out := make(map[string]map[string]any)
	for res.Next() {
		rec := res.Record()
		id, _ := rec.ValueByKey("solve_id").(string)
		if out[id] == nil {
			out[id] = make(map[string]any)
		}
		out[id][rec.Field()] = rec.Value()
	}
	return out, res.Err()
}

// Close releases the underlying client resources.
func (c *InfluxClient) Close() { c.client.Close() }
