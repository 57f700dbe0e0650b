package paperless

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wgomg/textstat/internal/config"
	"github.com/wgomg/textstat/internal/utils"
)

// Client reads documents from a Paperless-ngx instance and attaches
// analysis summaries to them as notes.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *utils.Logger
}

func NewClient(cfg *config.Config, logger *utils.Logger) (*Client, error) {
	if cfg.Paperless.URL == "" || cfg.Paperless.Token == "" {
		return nil, fmt.Errorf("PAPERLESS_URL and PAPERLESS_TOKEN are required")
	}

	return &Client{
		baseURL: cfg.Paperless.URL,
		token:   cfg.Paperless.Token,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second,
		},
		logger: logger,
	}, nil
}

func (c *Client) GetDocument(documentID int, reqID string) (*Document, error) {
	url := fmt.Sprintf("%s/api/documents/%d/", c.baseURL, documentID)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setAuthHeaders(req)

	c.logger.Debug(&reqID, "Fetching document %d from %s", documentID, c.baseURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	defer resp.Body.Close()

	if err := c.logResponseBody(resp, reqID); err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleAPIError(resp)
	}

	var document Document
	if err := json.NewDecoder(resp.Body).Decode(&document); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &document, nil
}

// AddNote attaches note to the document.
func (c *Client) AddNote(documentID int, note string, reqID string) error {
	url := fmt.Sprintf("%s/api/documents/%d/notes/", c.baseURL, documentID)

	body, err := json.Marshal(Note{Note: note})
	if err != nil {
		return fmt.Errorf("failed to encode note: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug(&reqID, "Adding note to document %d", documentID)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.handleAPIError(resp)
	}

	return nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Token %s", c.token))
}

func (c *Client) logResponseBody(resp *http.Response, reqID string) error {
	if !c.logger.RawBodyLog {
		return nil
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	c.logger.Debug(&reqID, "Raw response body: %s", string(bodyBytes))
	return nil
}

func (c *Client) handleAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		Body:       string(body),
	}
}
