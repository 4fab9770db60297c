package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const apiBase = "https://api.github.com"

// Client defines the interface for mirroring ledger files to a GitHub
// repository. This interface enables dependency injection and testing with
// mock implementations.
type Client interface {
	PutFile(ctx context.Context, path string, content []byte, message string) error
}

// ContentClient mirrors files into a GitHub repository using the contents
// API: it reads the current blob SHA of the target path and sends it back
// with the update, which is GitHub's optimistic concurrency handshake.
type ContentClient struct {
	httpClient *http.Client
	token      string
	repo       string // "owner/name"
	branch     string
	baseURL    string
}

// NewContentClient creates a GitHub contents client for one repository and
// branch.
func NewContentClient(token, repo, branch string) *ContentClient {
	return &ContentClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      token,
		repo:       repo,
		branch:     branch,
		baseURL:    apiBase,
	}
}

// NewContentClientWithBaseURL creates a contents client pointed at an
// alternate endpoint. Used by tests to target an httptest server.
func NewContentClientWithBaseURL(token, repo, branch, baseURL string) *ContentClient {
	c := NewContentClient(token, repo, branch)
	c.baseURL = baseURL
	return c
}

// contentResponse is the subset of the contents GET response the client
// needs: the blob SHA required for updates.
type contentResponse struct {
	SHA string `json:"sha"`
}

// putRequest is the body of a contents PUT call. SHA is present only when
// replacing an existing file.
type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

// PutFile creates or replaces one file in the repository.
//
// The current SHA of the path is looked up first; a 404 means the file does
// not exist yet and the create form is used. Any other failure of the SHA
// lookup is ignored and the create form attempted, letting the PUT surface
// the authoritative error.
//
// Parameters:
//   - ctx: Cancellation context for both calls
//   - path: Repository-relative file path (e.g. "data/japan_swing.csv")
//   - content: Raw file content; base64 encoding happens here
//   - message: Commit message for the update
//
// Returns:
//   - error: If the PUT is rejected (auth, conflict, or validation)
func (c *ContentClient) PutFile(ctx context.Context, path string, content []byte, message string) error {
	sha, err := c.fileSHA(ctx, path)
	if err != nil {
		return err
	}

	body, err := json.Marshal(putRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  c.branch,
		SHA:     sha,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/repos/%s/contents/%s", c.baseURL, c.repo, path)
	req, err := http.NewRequestWithContext(ctx, "PUT", url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("github error %d: %s", resp.StatusCode, string(data))
	}

	return nil
}

// fileSHA returns the current blob SHA of a path, or empty when the file
// does not exist on the branch.
func (c *ContentClient) fileSHA(ctx context.Context, path string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/contents/%s?ref=%s", c.baseURL, c.repo, path, c.branch)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Missing file or transient lookup failure: create-form PUT.
		return "", nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var content contentResponse
	if err := json.Unmarshal(data, &content); err != nil {
		return "", err
	}

	return content.SHA, nil
}

func (c *ContentClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
}
