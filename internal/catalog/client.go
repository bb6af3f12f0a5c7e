package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/RainbowTabitha/BoardDownloaderMPN/internal/model"
)

// Download buffering
const (
	// DownloadChunkSize matches the chunked writes of board and tool downloads
	DownloadChunkSize = 8192
)

// ErrMissingDownloadURL reports a project file response without a usable link
var ErrMissingDownloadURL = errors.New("no download URL in project file response")

// RequestError wraps any transport failure or non-2xx response from the
// catalog service
type RequestError struct {
	URL        string
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("catalog request to %s failed with status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("catalog request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ProjectDetailPayload is the subset of the project detail response the
// app consumes; all other fields are ignored.
type ProjectDetailPayload struct {
	Name             string `json:"name"`
	Author           string `json:"author"`
	CreationDate     string `json:"creation_date"`
	Difficulty       int    `json:"difficulty"`
	RecommendedTurns int    `json:"recommended_turns"`
	CustomEvents     bool   `json:"customEvents"`
	CustomMusic      bool   `json:"customMusic"`
	Description      string `json:"description"`
	Icon             string `json:"icon"`
}

// Client provides typed access to the remote catalog service. Every call
// is a single blocking round trip; callers own any concurrency.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// Search returns project summaries matching the search term
func (c *Client) Search(term string) ([]model.ProjectSummary, error) {
	endpoint := fmt.Sprintf("%s/project/search?searchTerm=%s", c.baseURL, url.QueryEscape(term))

	var results []struct {
		ProjectID string `json:"projectId"`
		Name      string `json:"name"`
	}
	if err := c.getJSON(endpoint, &results); err != nil {
		return nil, err
	}

	summaries := make([]model.ProjectSummary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, model.ProjectSummary{ID: r.ProjectID, Name: r.Name})
	}
	return summaries, nil
}

// GetProjectDetail fetches the full detail payload for one project
func (c *Client) GetProjectDetail(projectID string) (*ProjectDetailPayload, error) {
	endpoint := fmt.Sprintf("%s/project/%s", c.baseURL, url.PathEscape(projectID))

	var payload ProjectDetailPayload
	if err := c.getJSON(endpoint, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ListFileVersions returns the released file versions of a project.
// Projects without files yield an empty slice, never nil.
func (c *Client) ListFileVersions(projectID string) ([]model.ProjectVersion, error) {
	endpoint := fmt.Sprintf("%s/project/%s/files", c.baseURL, url.PathEscape(projectID))

	var payload struct {
		Versions []struct {
			FileID      string `json:"file_id"`
			FileName    string `json:"file_name"`
			ReleaseDate string `json:"release_date"`
		} `json:"versions"`
	}
	if err := c.getJSON(endpoint, &payload); err != nil {
		return nil, err
	}

	versions := make([]model.ProjectVersion, 0, len(payload.Versions))
	for _, v := range payload.Versions {
		versions = append(versions, model.ProjectVersion{
			FileID:      v.FileID,
			FileName:    v.FileName,
			ReleaseDate: v.ReleaseDate,
		})
	}
	return versions, nil
}

// GetFileDownloadURL resolves an opaque file reference to a downloadable URL
func (c *Client) GetFileDownloadURL(projectID, fileID string) (string, error) {
	endpoint := fmt.Sprintf("%s/project/%s/files/%s", c.baseURL, url.PathEscape(projectID), url.PathEscape(fileID))

	var payload struct {
		DownloadLink string `json:"download_link"`
	}
	if err := c.getJSON(endpoint, &payload); err != nil {
		return "", err
	}
	if payload.DownloadLink == "" {
		return "", ErrMissingDownloadURL
	}
	return payload.DownloadLink, nil
}

// Download streams the body of fileURL into w in chunks, so large board
// files and tool binaries are never held in memory whole.
func (c *Client) Download(fileURL string, w io.Writer) error {
	resp, err := c.get(fileURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	buf := make([]byte, DownloadChunkSize)
	if _, err := io.CopyBuffer(w, resp.Body, buf); err != nil {
		return &RequestError{URL: fileURL, Err: err}
	}
	return nil
}

// getJSON performs a GET and decodes the JSON body into v
func (c *Client) getJSON(endpoint string, v any) error {
	resp, err := c.get(endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &RequestError{URL: endpoint, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// get performs a GET and normalizes transport failures and non-2xx
// statuses into RequestError
func (c *Client) get(endpoint string) (*http.Response, error) {
	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return nil, &RequestError{URL: endpoint, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, &RequestError{URL: endpoint, StatusCode: resp.StatusCode}
	}
	return resp, nil
}
