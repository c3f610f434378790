package stellarhub

import (
	"context"
	"fmt"
)

// ListDevices returns the account's connected devices.
func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	var resp DeviceListResponse
	if err := c.gw.Get(ctx, "/device/list", &resp); err != nil {
		return nil, err
	}
	return resp.Devices, nil
}

// AddDevice registers a new device and returns the created record.
func (c *Client) AddDevice(ctx context.Context, device Device) (*Device, error) {
	var created Device
	if err := c.gw.Post(ctx, "/device/add", device, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDevice replaces a device's editable fields.
func (c *Client) UpdateDevice(ctx context.Context, device Device) error {
	path := fmt.Sprintf("/device/%s", device.ID)
	return c.gw.Put(ctx, path, device, nil)
}

// RemoveDevice deregisters a device.
func (c *Client) RemoveDevice(ctx context.Context, deviceID string) error {
	path := fmt.Sprintf("/device/%s", deviceID)
	return c.gw.Delete(ctx, path, nil)
}

// FirmwareRollout returns the OTA update state across the account's devices.
func (c *Client) FirmwareRollout(ctx context.Context) ([]FirmwareStatus, error) {
	var resp FirmwareStatusResponse
	if err := c.gw.Get(ctx, "/ota/status", &resp); err != nil {
		return nil, err
	}
	return resp.Devices, nil
}
