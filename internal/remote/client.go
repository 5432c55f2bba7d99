package remote

import (
	"fmt"
	"io"
	"net/http"

	"iconbundle/internal/domain"
	"iconbundle/internal/iconset"
)

// DefaultBase is the public icon API.
const DefaultBase = "https://api.iconify.design"

type Client struct {
	Base string
	HTTP *http.Client
}

// New returns a client for base, falling back to DefaultBase when base
// is empty.
func New(base string) *Client {
	if base == "" {
		base = DefaultBase
	}
	return &Client{
		Base: base,
		HTTP: http.DefaultClient,
	}
}

var _ domain.CollectionFetcher = (*Client)(nil)

// FetchCollection downloads <base>/<prefix>.json. The payload must
// decode as a collection carrying the requested prefix.
func (c *Client) FetchCollection(prefix domain.Prefix) ([]byte, error) {
	resp, err := c.HTTP.Get(c.Base + "/" + prefix.String() + ".json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("fetch %s failed: %s", prefix, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	set, err := iconset.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", prefix, err)
	}
	if set.Prefix != prefix {
		return nil, fmt.Errorf("fetch %s: response carries prefix %q", prefix, set.Prefix)
	}
	return data, nil
}
