package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/valmirmacedo/cancella-cli/pkg/models"
	"github.com/valmirmacedo/cancella-cli/pkg/table"
)

// defaultPageSize mirrors the backend's page size, used to derive the
// page count when the envelope only carries a total count.
const defaultPageSize = 10

// Client talks to the condominium backend's JSON REST API. It performs
// exactly one attempt per call; retry policy, if any, belongs to the
// caller.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client

	// RequestID generates the X-Request-ID header value. Defaults to
	// a random UUID per request.
	RequestID func() string
}

// New creates a client for the given backend.
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: http.DefaultClient,
		RequestID:  uuid.NewString,
	}
}

// ListResult is one page of records plus pagination facts. Records are
// kept as loosely typed maps: they flow straight into the row-editing
// engine, which only interprets the id field.
type ListResult struct {
	Records     []table.Record
	Count       int
	TotalPages  int
	CurrentPage int
}

// pageEnvelope is the paginated response shape. List endpoints may
// also answer with a bare array.
type pageEnvelope struct {
	Results     []table.Record `json:"results"`
	Count       int            `json:"count"`
	NumPages    int            `json:"num_pages"`
	CurrentPage int            `json:"current_page"`
}

// collectionPath maps an entity to its REST prefix.
func collectionPath(entity models.Entity) string {
	switch entity {
	case models.EntityTeams:
		return "/access/teams"
	case models.EntityCompanies:
		return "/cadastro/empresa"
	default:
		return "/cadastros/" + string(entity)
	}
}

// List fetches one page of an entity collection, optionally filtered
// by a search term.
func (c *Client) List(ctx context.Context, entity models.Entity, page int, search string) (ListResult, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if search != "" {
		query.Set("search", search)
	}

	path := collectionPath(entity) + "/"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return ListResult{}, err
	}

	return parseListBody(body, page)
}

// parseListBody accepts either a bare JSON array or the page envelope.
func parseListBody(body []byte, requestedPage int) (ListResult, error) {
	var envelope pageEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Results != nil {
		totalPages := envelope.NumPages
		if totalPages == 0 && envelope.Count > 0 {
			totalPages = (envelope.Count + defaultPageSize - 1) / defaultPageSize
		}
		if totalPages == 0 {
			totalPages = 1
		}
		currentPage := envelope.CurrentPage
		if currentPage == 0 {
			currentPage = max(requestedPage, 1)
		}
		return ListResult{
			Records:     envelope.Results,
			Count:       envelope.Count,
			TotalPages:  totalPages,
			CurrentPage: currentPage,
		}, nil
	}

	var records []table.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return ListResult{}, fmt.Errorf("unexpected list response: %w", err)
	}
	return ListResult{
		Records:     records,
		Count:       len(records),
		TotalPages:  1,
		CurrentPage: 1,
	}, nil
}

// Create posts a new record and returns the stored representation.
func (c *Client) Create(ctx context.Context, entity models.Entity, payload any) (table.Record, error) {
	path := collectionPath(entity) + "/create/"
	if entity == models.EntityCompanies {
		// company registration posts to the bare collection
		path = collectionPath(entity) + "/"
	}

	body, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Update patches an existing record with the given partial payload.
func (c *Client) Update(ctx context.Context, entity models.Entity, id string, payload any) (table.Record, error) {
	path := fmt.Sprintf("%s/%s/update/", collectionPath(entity), id)
	body, err := c.do(ctx, http.MethodPatch, path, payload)
	if err != nil {
		return nil, err
	}
	return decodeRecord(body)
}

// Delete removes a record.
func (c *Client) Delete(ctx context.Context, entity models.Entity, id string) error {
	path := fmt.Sprintf("%s/%s/delete/", collectionPath(entity), id)
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

// PackageBadge fetches the pending-delivery summary for one unit.
func (c *Client) PackageBadge(ctx context.Context, unidadeID string) (models.PackageBadge, error) {
	path := "/cadastros/encomendas/badge/?unidade_id=" + url.QueryEscape(unidadeID)
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.PackageBadge{}, err
	}

	var badge models.PackageBadge
	if err := json.Unmarshal(body, &badge); err != nil {
		return models.PackageBadge{}, fmt.Errorf("unexpected badge response: %w", err)
	}
	return badge, nil
}

func decodeRecord(body []byte) (table.Record, error) {
	if len(body) == 0 {
		return table.Record{}, nil
	}
	var rec table.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("unexpected record response: %w", err)
	}
	return rec, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Token "+c.Token)
	}
	if c.RequestID != nil {
		req.Header.Set("X-Request-ID", c.RequestID())
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: %s", method, path, apiErrorMessage(resp.StatusCode, body))
	}
	return body, nil
}

// apiErrorMessage extracts the backend's error field when present.
func apiErrorMessage(status int, body []byte) string {
	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Detail != "" {
			return payload.Detail
		}
	}
	return http.StatusText(status)
}
