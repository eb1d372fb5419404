package client

import (
	"context"

	"github.com/userdash/user-dashboard/pkg/pdfname"
)

// PDF is an exported document with a suggested download filename.
type PDF struct {
	Data     []byte
	Filename string
}

type pdfRequest struct {
	URL string `json:"url,omitempty"`
}

// GeneratePDF renders the page at pageURL through the proxy. The filename is
// derived locally from the page path, falling back to pdfname.Fallback when
// the URL does not parse.
func (c *Client) GeneratePDF(ctx context.Context, pageURL string) (*PDF, error) {
	resp, err := c.api.Post(ctx, "/pdf/current", pdfRequest{URL: pageURL})
	if err != nil {
		return nil, err
	}
	return &PDF{
		Data:     resp.Body,
		Filename: pdfname.FromURL(pageURL),
	}, nil
}
