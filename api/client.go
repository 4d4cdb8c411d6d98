// Package api - Client fuer den diffuse-Server
//
// Dieses Modul enthaelt die Client-Struktur und die Stream-Methoden, mit
// denen die CLI gegen den REST-Server spricht.
package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"runtime"

	"github.com/latentscape/diffuse/envconfig"
	"github.com/latentscape/diffuse/version"
)

// images are a few megabytes of base64; leave generous headroom
const maxBufferSize = 64 * 1024 * 1024

// Client encapsulates client state for interacting with the diffuse
// service. Use [ClientFromEnvironment] to create new Clients.
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient returns a client talking to base over http.
func NewClient(base *url.URL, http *http.Client) *Client {
	return &Client{base: base, http: http}
}

// ClientFromEnvironment creates a new [Client] using configuration from
// the environment variable DIFFUSE_HOST.
func ClientFromEnvironment() (*Client, error) {
	return NewClient(envconfig.Host(), http.DefaultClient), nil
}

func (c *Client) stream(ctx context.Context, method, path string, data any, fn func([]byte) error) error {
	var buf *bytes.Buffer
	if data != nil {
		bts, err := json.Marshal(data)
		if err != nil {
			return err
		}

		buf = bytes.NewBuffer(bts)
	}

	requestURL := c.base.JoinPath(path)

	var reqBody *bytes.Buffer
	if buf != nil {
		reqBody = buf
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL.String(), reqBody)
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/x-ndjson")
	request.Header.Set("User-Agent", fmt.Sprintf("diffuse/%s (%s %s) Go/%s", version.Version, runtime.GOARCH, runtime.GOOS, runtime.Version()))

	response, err := c.http.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	scanner := bufio.NewScanner(response.Body)
	// increase the buffer size to avoid running out of space
	scanBuf := make([]byte, 0, maxBufferSize)
	scanner.Buffer(scanBuf, maxBufferSize)
	for scanner.Scan() {
		var errorResponse struct {
			Error string `json:"error,omitempty"`
		}

		bts := scanner.Bytes()
		if err := json.Unmarshal(bts, &errorResponse); err != nil {
			if response.StatusCode >= http.StatusBadRequest {
				return StatusError{
					StatusCode:   response.StatusCode,
					Status:       response.Status,
					ErrorMessage: string(bts),
				}
			}
			return errors.New(string(bts))
		}

		if response.StatusCode >= http.StatusBadRequest {
			return StatusError{
				StatusCode:   response.StatusCode,
				Status:       response.Status,
				ErrorMessage: errorResponse.Error,
			}
		}

		if errorResponse.Error != "" {
			return errors.New(errorResponse.Error)
		}

		if err := fn(bts); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// GenerateResponseFunc is called for every streamed generate event.
type GenerateResponseFunc func(GenerateResponse) error

// Generate generates an image for the given request, streaming progress
// events and the final image to fn.
func (c *Client) Generate(ctx context.Context, req *GenerateRequest, fn GenerateResponseFunc) error {
	return c.stream(ctx, http.MethodPost, "/api/generate", req, func(bts []byte) error {
		var resp GenerateResponse
		if err := json.Unmarshal(bts, &resp); err != nil {
			return err
		}

		return fn(resp)
	})
}

// Version returns the server version.
func (c *Client) Version(ctx context.Context) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.JoinPath("/api/version").String(), nil)
	if err != nil {
		return "", err
	}
	request.Header.Set("User-Agent", fmt.Sprintf("diffuse/%s (%s %s) Go/%s", version.Version, runtime.GOARCH, runtime.GOOS, runtime.Version()))

	response, err := c.http.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		return "", StatusError{StatusCode: response.StatusCode, Status: response.Status}
	}

	var v struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(response.Body).Decode(&v); err != nil {
		return "", err
	}
	return v.Version, nil
}
