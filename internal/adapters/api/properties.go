package api

import (
	"context"
	"fmt"

	"github.com/DmitruNS/kuc/internal/domain"
)

func (c *Client) List(ctx context.Context, filter domain.ListingFilter, language string) ([]*domain.Property, error) {
	var out []*domain.Property
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParamsFromValues(filter.Values(language)).
		SetResult(&out).
		Get("/api/properties")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError("list properties", resp)
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id int64) (*domain.Property, error) {
	var out domain.Property
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/api/properties/%d", id))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError("get property", resp)
	}
	return &out, nil
}

func (c *Client) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	var out domain.Property
	resp, err := c.http.R().SetContext(ctx).
		SetBody(p).
		SetResult(&out).
		Post("/api/properties")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError("create property", resp)
	}
	return &out, nil
}

func (c *Client) Update(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	var out domain.Property
	resp, err := c.http.R().SetContext(ctx).
		SetBody(p).
		SetResult(&out).
		Put(fmt.Sprintf("/api/properties/%d", p.ID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError("update property", resp)
	}
	return &out, nil
}

func (c *Client) SetStatus(ctx context.Context, id int64, isActive bool) error {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]bool{"is_active": isActive}).
		Put(fmt.Sprintf("/api/properties/%d/status", id))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError("update status", resp)
	}
	return nil
}

func (c *Client) ExportAll(ctx context.Context) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).
		Get("/api/properties/export")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError("export properties", resp)
	}
	return resp.Body(), nil
}

func (c *Client) ExportSelected(ctx context.Context, ids []int64) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string][]int64{"property_ids": ids}).
		Post("/api/properties/export")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError("export properties", resp)
	}
	return resp.Body(), nil
}
