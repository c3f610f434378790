package stellarhub

import (
	"context"
	"fmt"
)

// ListWorkOrders returns the account's work orders.
func (c *Client) ListWorkOrders(ctx context.Context) ([]WorkOrder, error) {
	var resp WorkOrderListResponse
	if err := c.gw.Get(ctx, "/workorder/list", &resp); err != nil {
		return nil, err
	}
	return resp.WorkOrders, nil
}

// CreateWorkOrder opens a new work order and returns the created record.
func (c *Client) CreateWorkOrder(ctx context.Context, req CreateWorkOrderRequest) (*WorkOrder, error) {
	var created WorkOrder
	if err := c.gw.Post(ctx, "/workorder/create", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CloseWorkOrder marks a work order done.
func (c *Client) CloseWorkOrder(ctx context.Context, id string) error {
	path := fmt.Sprintf("/workorder/%s/close", id)
	return c.gw.Patch(ctx, path, map[string]string{"Status": "closed"}, nil)
}

// ListStock returns the account's spare-part inventory.
func (c *Client) ListStock(ctx context.Context) ([]StockItem, error) {
	var resp StockListResponse
	if err := c.gw.Get(ctx, "/inventory/list", &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// AdjustStock changes a stock line's quantity by delta.
func (c *Client) AdjustStock(ctx context.Context, itemID string, delta int) error {
	path := fmt.Sprintf("/inventory/%s/adjust", itemID)
	return c.gw.Patch(ctx, path, map[string]int{"Delta": delta}, nil)
}
