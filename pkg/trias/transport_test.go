package trias

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransportSend(t *testing.T) {
	var receivedBody string
	var receivedContentType string
	var receivedMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		receivedBody = string(body)
		receivedContentType = r.Header.Get("Content-Type")
		receivedMethod = r.Method

		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		w.Write([]byte("<Trias>Universität</Trias>"))
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.URL, time.Second)

	response, err := transport.Send(context.Background(), []byte("<Trias/>"), ContentTypeXML)
	require.Nil(t, err)

	assert.Equal(t, "<Trias>Universität</Trias>", response)
	assert.Equal(t, "<Trias/>", receivedBody)
	assert.Equal(t, "text/xml; charset=utf-8", receivedContentType)
	assert.Equal(t, http.MethodPost, receivedMethod)
}

func TestHTTPTransportStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<Trias/>"))
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.URL, time.Second)

	response, err := transport.Send(context.Background(), []byte("<Trias/>"), ContentTypeXML)
	assert.Empty(t, response)

	var transportError *TransportError
	require.True(t, errors.As(err, &transportError))
	assert.Equal(t, http.StatusInternalServerError, transportError.StatusCode)
}

func TestHTTPTransportUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewHTTPTransport(url, time.Second).Send(context.Background(), []byte("<Trias/>"), ContentTypeXML)

	var transportError *TransportError
	require.True(t, errors.As(err, &transportError))
	assert.Equal(t, 0, transportError.StatusCode)
}

func TestNewHTTPTransportDefaults(t *testing.T) {
	transport := NewHTTPTransport("", 0)

	assert.Equal(t, DefaultEndpoint, transport.Endpoint)
}
