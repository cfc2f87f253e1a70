package shieldsdk

import (
	"context"
	"fmt"
	"net/url"
)

// ListRolesParams filters the role list.
type ListRolesParams struct {
	TenantID   int64
	NameSearch string
	Paging
}

// ListRoles returns roles visible to the caller. System-wide roles are
// included regardless of the tenant filter.
func (c *Client) ListRoles(ctx context.Context, params ListRolesParams) (*PagedResult[Role], error) {
	query := url.Values{}
	setInt(query, "tenantId", params.TenantID)
	setStr(query, "nameSearch", params.NameSearch)
	params.Paging.apply(query)

	var result PagedResult[Role]
	if err := c.get(ctx, "role", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRole fetches one role by ID.
func (c *Client) GetRole(ctx context.Context, id int64) (*Role, error) {
	var role Role
	if err := c.get(ctx, fmt.Sprintf("role/%d", id), nil, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// CreateRole creates a role.
func (c *Client) CreateRole(ctx context.Context, req CreateRoleRequest) (*Role, error) {
	var role Role
	if err := c.post(ctx, "role", req, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// UpdateRole updates a role. System roles reject updates with a 403.
func (c *Client) UpdateRole(ctx context.Context, req UpdateRoleRequest) (*Role, error) {
	var role Role
	if err := c.put(ctx, fmt.Sprintf("role/%d", req.ID), req, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// DeleteRole removes a role not assigned to any user.
func (c *Client) DeleteRole(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("role/%d", id))
}

// ListScreens returns every permission-gated screen in the product.
func (c *Client) ListScreens(ctx context.Context) ([]Screen, error) {
	var screens []Screen
	if err := c.get(ctx, "permission/screens", nil, &screens); err != nil {
		return nil, err
	}
	return screens, nil
}

// GetScreenPermissions returns the access level a role grants per screen.
func (c *Client) GetScreenPermissions(ctx context.Context, roleID int64) ([]ScreenPermission, error) {
	var perms []ScreenPermission
	if err := c.get(ctx, fmt.Sprintf("role/%d/screen-permissions", roleID), nil, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

// setScreenPermissionsRequest is the backend's bind model for the
// screen-permission replace endpoint.
type setScreenPermissionsRequest struct {
	RoleID  int64              `json:"roleId"`
	Screens []ScreenPermission `json:"screens"`
}

// SetScreenPermissions replaces a role's screen permissions wholesale.
func (c *Client) SetScreenPermissions(ctx context.Context, roleID int64, perms []ScreenPermission) error {
	body := setScreenPermissionsRequest{RoleID: roleID, Screens: perms}
	return c.put(ctx, fmt.Sprintf("role/%d/screen-permissions", roleID), body, nil)
}
