package trias

import (
	"context"
	"errors"
	"fmt"
	"time"

	resty "gopkg.in/resty.v1"
)

const (
	DefaultEndpoint  = "https://efastatic.vvs.de/unistuttgart/trias"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "travigo-trias/0.1.0"

	ContentTypeXML = "text/xml"
)

// Transport sends a request payload and returns the decoded response body. Any failure,
// including a non success status, is an error and no body is returned.
type Transport interface {
	Send(ctx context.Context, payload []byte, contentType string) (string, error)
}

type HTTPTransport struct {
	Endpoint string

	client *resty.Client
}

func NewHTTPTransport(endpoint string, timeout time.Duration) *HTTPTransport {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", DefaultUserAgent)

	return &HTTPTransport{
		Endpoint: endpoint,
		client:   client,
	}
}

func (t *HTTPTransport) Send(ctx context.Context, payload []byte, contentType string) (string, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", fmt.Sprintf("%s; charset=utf-8", contentType)).
		SetBody(payload).
		Post(t.Endpoint)

	if err != nil {
		return "", &TransportError{Err: err}
	}

	if !resp.IsSuccess() {
		return "", &TransportError{
			StatusCode: resp.StatusCode(),
			Err:        errors.New(resp.Status()),
		}
	}

	return string(resp.Body()), nil
}
