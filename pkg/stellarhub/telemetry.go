package stellarhub

import (
	"context"
	"fmt"
)

// ListMachines returns the account's monitored machines.
func (c *Client) ListMachines(ctx context.Context) ([]Machine, error) {
	var resp MachineListResponse
	if err := c.gw.Get(ctx, "/telemetry/machine/list", &resp); err != nil {
		return nil, err
	}
	return resp.Machines, nil
}

// ListSensors returns the telemetry channels of one machine.
func (c *Client) ListSensors(ctx context.Context, machineID string) ([]Sensor, error) {
	var resp SensorListResponse
	path := fmt.Sprintf("/telemetry/machine/%s/sensor/list", machineID)
	if err := c.gw.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Sensors, nil
}

// QueryTelemetry fetches one sensor's samples for a time range. view selects
// the server-side aggregation (raw, hourly, daily).
func (c *Client) QueryTelemetry(ctx context.Context, machineID, sensorID, view string, rng TimeRange) ([]DataPoint, error) {
	var resp QueryResponse
	path := fmt.Sprintf("/telemetry/machine/%s/%s/view/%s", machineID, sensorID, view)
	if err := c.gw.Post(ctx, path, rng, &resp); err != nil {
		return nil, err
	}
	return resp.Points, nil
}
