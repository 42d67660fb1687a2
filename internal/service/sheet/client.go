package sheet

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"FxPulse/internal/domain/models"
	"FxPulse/pkg/config"
	xhttp "FxPulse/pkg/http"
)

// Client downloads the published CSV export of the market sheet.
type Client struct {
	url    string
	client *xhttp.Client
	now    func() time.Time
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		url:    cfg.Source.SheetURL,
		client: xhttp.NewClient(xhttp.WithTimeout(cfg.Source.Timeout)),
		now:    time.Now,
	}
}

// Fetch returns the raw CSV body. A cache-busting t parameter is added to every request.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	if c.url == "" {
		return nil, fmt.Errorf("%w: sheet url is not configured", models.ErrUpstream)
	}
	var body []byte
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.url,
		QueryParams: map[string][]string{
			"t": {strconv.FormatInt(c.now().UnixMilli(), 10)},
		},
	}, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch sheet: %v", models.ErrUpstream, err)
	}
	return body, nil
}
