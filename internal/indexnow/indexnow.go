package indexnow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxURLsPerRequest is the protocol limit on urlList.
const MaxURLsPerRequest = 10000

var ErrMissingKey = errors.New("indexnow key is not set")

type Payload struct {
	Host        string   `json:"host"`
	Key         string   `json:"key"`
	KeyLocation string   `json:"keyLocation"`
	URLList     []string `json:"urlList"`
}

// Result is the outcome of one request to one endpoint.
type Result struct {
	Endpoint string `json:"endpoint"`
	URLs     int    `json:"urls"`
	Status   int    `json:"status,omitempty"`
	Error    string `json:"error,omitempty"`
}

type Client struct {
	client    *http.Client
	userAgent string
}

func NewClient(timeout, dialTimeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Client{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		userAgent: "freetoolz-blueprint/1.0 (+https://freetoolz.cloud)",
	}
}

// NewKey returns a fresh 32 character hex key.
func NewKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// BuildPayloads splits urls into protocol-sized payloads for the site at baseURL.
func BuildPayloads(baseURL, key, keyLocation string, urls []string) ([]Payload, error) {
	if key == "" {
		return nil, ErrMissingKey
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}
	var out []Payload
	for start := 0; start < len(urls); start += MaxURLsPerRequest {
		end := start + MaxURLsPerRequest
		if end > len(urls) {
			end = len(urls)
		}
		out = append(out, Payload{
			Host:        u.Host,
			Key:         key,
			KeyLocation: keyLocation,
			URLList:     urls[start:end],
		})
	}
	return out, nil
}

// Submit posts every payload to every endpoint. A failing endpoint does not
// stop the others; its error is recorded in the matching Result.
func (c *Client) Submit(ctx context.Context, endpoints []string, payloads []Payload) []Result {
	var results []Result
	for _, endpoint := range endpoints {
		for _, p := range payloads {
			res := Result{Endpoint: endpoint, URLs: len(p.URLList)}
			status, err := c.post(ctx, endpoint, p)
			res.Status = status
			if err != nil {
				res.Error = err.Error()
			}
			results = append(results, res)
		}
	}
	return results
}

func (c *Client) post(ctx context.Context, endpoint string, p Payload) (int, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	// 200 and 202 both mean accepted
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return resp.StatusCode, fmt.Errorf("http status %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}
