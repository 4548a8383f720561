package api

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/DmitruNS/kuc/internal/domain"
	"github.com/DmitruNS/kuc/internal/ports"
)

// ListByProperty loads the attachments of a record. The API has no
// standalone attachment listing; the documents ride on the record itself.
func (c *Client) ListByProperty(ctx context.Context, propertyID int64) ([]*domain.Attachment, error) {
	p, err := c.Get(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Attachment, 0, len(p.Documents))
	for i := range p.Documents {
		out = append(out, &p.Documents[i])
	}
	return out, nil
}

func (c *Client) Upload(ctx context.Context, propertyID int64, req ports.UploadRequest) (*domain.Attachment, error) {
	var out domain.Attachment
	resp, err := c.http.R().SetContext(ctx).
		SetFileReader("file", req.Filename, bytes.NewReader(req.Content)).
		SetQueryParam("file_type", string(req.FileType)).
		SetQueryParam("is_public", strconv.FormatBool(req.IsPublic)).
		SetResult(&out).
		Post(fmt.Sprintf("/api/properties/%d/files", propertyID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError("upload file", resp)
	}
	return &out, nil
}

func (c *Client) SetVisibility(ctx context.Context, propertyID, fileID int64, isPublic bool) error {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]bool{"is_public": isPublic}).
		Put(fmt.Sprintf("/api/properties/%d/files/%d/visibility", propertyID, fileID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError("update visibility", resp)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, propertyID, fileID int64) error {
	resp, err := c.http.R().SetContext(ctx).
		Delete(fmt.Sprintf("/api/properties/%d/files/%d", propertyID, fileID))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError("delete file", resp)
	}
	return nil
}
