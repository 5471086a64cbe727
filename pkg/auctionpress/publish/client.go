// Package publish uploads the rendered artifact to the remote content host
// via its contents API, as an idempotent create-or-update.
package publish

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/r21league/auctionpress/pkg/auctionpress/config"
)

// Client talks to the remote repository's contents API.
type Client struct {
	apiBase string
	branch  string
	token   string
	http    *http.Client
}

// NewClient builds a publish client from the remote configuration.
func NewClient(cfg config.RemoteConfig) (*Client, error) {
	if strings.TrimSpace(cfg.APIBase) == "" {
		return nil, errors.New("remote api base is empty")
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("remote token is empty")
	}
	branch := cfg.Branch
	if branch == "" {
		branch = "main"
	}
	return &Client{
		apiBase: strings.TrimRight(cfg.APIBase, "/") + "/",
		branch:  branch,
		token:   cfg.Token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// putBody is the create-or-update request. The sha field is present only when
// overwriting an existing remote object.
type putBody struct {
	Message string `json:"message"`
	Branch  string `json:"branch"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
}

// Publish performs the two-step upsert: fetch the current concurrency token
// for remotePath (absence or any unexpected response just means no token),
// then write the content with that token. Exactly one fetch and one write
// per call; no retry.
func (c *Client) Publish(ctx context.Context, remotePath string, content []byte) error {
	sha, err := c.fetchSHA(ctx, remotePath)
	if err != nil {
		return err
	}

	body := putBody{
		Message: "Upload " + remotePath + " via auctionpress",
		Branch:  c.branch,
		Content: base64.StdEncoding.EncodeToString(content),
		SHA:     sha,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode publish request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.apiBase+remotePath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("publish %s: %w", remotePath, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("publish %s: status %d: %s", remotePath, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	config.GetLogger().WithFields(logrus.Fields{
		"module": "publish",
		"path":   remotePath,
		"status": resp.StatusCode,
		"update": sha != "",
	}).Info("artifact published")
	return nil
}

// fetchSHA asks the host for the current version of remotePath. A 200 yields
// the concurrency token from the body; anything else yields no token and the
// write proceeds optimistically.
func (c *Client) fetchSHA(ctx context.Context, remotePath string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+remotePath, nil)
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch metadata %s: %w", remotePath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil
	}
	return extractSHA(string(body)), nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
}

// extractSHA pulls the value of the "sha" field out of the response body by
// substring scan. The host guarantees the field's shape, so a full JSON parse
// of the metadata response is deliberately avoided.
func extractSHA(body string) string {
	const marker = `"sha":"`
	start := strings.Index(body, marker)
	if start < 0 {
		return ""
	}
	start += len(marker)
	end := strings.Index(body[start:], `"`)
	if end < 0 {
		return ""
	}
	return body[start : start+end]
}
