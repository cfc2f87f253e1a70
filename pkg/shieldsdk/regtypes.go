package shieldsdk

import (
	"context"
	"fmt"
	"net/url"
)

// ListRegTypesParams pages the register-type list.
type ListRegTypesParams struct {
	Paging
}

// ListRegTypes returns register types.
func (c *Client) ListRegTypes(ctx context.Context, params ListRegTypesParams) (*PagedResult[RegType], error) {
	query := url.Values{}
	params.Paging.apply(query)

	var result PagedResult[RegType]
	if err := c.get(ctx, "regtype", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRegType fetches one register type by ID.
func (c *Client) GetRegType(ctx context.Context, id int64) (*RegType, error) {
	var rt RegType
	if err := c.get(ctx, fmt.Sprintf("regtype/%d", id), nil, &rt); err != nil {
		return nil, err
	}
	return &rt, nil
}

// CreateRegType creates a register type.
func (c *Client) CreateRegType(ctx context.Context, req CreateRegTypeRequest) (*RegType, error) {
	var rt RegType
	if err := c.post(ctx, "regtype", req, &rt); err != nil {
		return nil, err
	}
	return &rt, nil
}

// UpdateRegType updates a register type.
func (c *Client) UpdateRegType(ctx context.Context, req UpdateRegTypeRequest) (*RegType, error) {
	var rt RegType
	if err := c.put(ctx, fmt.Sprintf("regtype/%d", req.ID), req, &rt); err != nil {
		return nil, err
	}
	return &rt, nil
}

// DeleteRegType removes a register type not referenced by any sensor.
func (c *Client) DeleteRegType(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("regtype/%d", id))
}
