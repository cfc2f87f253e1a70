package shieldsdk

import (
	"context"
	"fmt"
	"net/url"
)

// ListNotificationRulesParams filters the notification rule list.
type ListNotificationRulesParams struct {
	NameSearch  string
	TriggerType string
	// IsActive filters active (true) or inactive (false) rules; nil returns
	// both.
	IsActive *bool
	Paging
}

// ListNotificationRules returns notification routing rules.
func (c *Client) ListNotificationRules(ctx context.Context, params ListNotificationRulesParams) (*PagedResult[NotificationRule], error) {
	query := url.Values{}
	setStr(query, "nameSearch", params.NameSearch)
	setStr(query, "triggerType", params.TriggerType)
	setBool(query, "isActive", params.IsActive)
	params.Paging.apply(query)

	var result PagedResult[NotificationRule]
	if err := c.get(ctx, "notificationrule", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetNotificationRule fetches one rule by ID.
func (c *Client) GetNotificationRule(ctx context.Context, id int64) (*NotificationRule, error) {
	var rule NotificationRule
	if err := c.get(ctx, fmt.Sprintf("notificationrule/%d", id), nil, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// CreateNotificationRule creates a routing rule.
func (c *Client) CreateNotificationRule(ctx context.Context, req CreateNotificationRuleRequest) (*NotificationRule, error) {
	var rule NotificationRule
	if err := c.post(ctx, "notificationrule", req, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// UpdateNotificationRule updates a routing rule.
func (c *Client) UpdateNotificationRule(ctx context.Context, req UpdateNotificationRuleRequest) (*NotificationRule, error) {
	var rule NotificationRule
	if err := c.put(ctx, fmt.Sprintf("notificationrule/%d", req.ID), req, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// DeleteNotificationRule removes a routing rule.
func (c *Client) DeleteNotificationRule(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("notificationrule/%d", id))
}
