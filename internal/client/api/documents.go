package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/wikiweb/wikictl/internal/client/models"
)

// DocumentsAPI calls the backend's document routes: CRUD plus revision
// restore.
type DocumentsAPI struct {
	c *Client
}

func NewDocumentsAPI(c *Client) *DocumentsAPI {
	return &DocumentsAPI{c: c}
}

func (d *DocumentsAPI) List(ctx context.Context) ([]models.Document, error) {
	var resp struct {
		Success   bool              `json:"success"`
		Documents []models.Document `json:"documents"`
		Message   string            `json:"message,omitempty"`
	}
	if err := d.c.Call(ctx, http.MethodGet, "/documents", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, unsuccessful(resp.Message, "failed to load documents")
	}
	return resp.Documents, nil
}

func (d *DocumentsAPI) Get(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	if err := d.c.Call(ctx, http.MethodGet, "/documents/"+url.PathEscape(id), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *DocumentsAPI) Create(ctx context.Context, title, content string) (*models.Document, error) {
	body := struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}{Title: title, Content: content}

	var doc models.Document
	if err := d.c.Call(ctx, http.MethodPost, "/documents", body, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Update sends a partial update; only non-nil patch fields reach the server.
func (d *DocumentsAPI) Update(ctx context.Context, id string, patch models.DocumentPatch) (*models.Document, error) {
	var doc models.Document
	if err := d.c.Call(ctx, http.MethodPut, "/documents/"+url.PathEscape(id), patch, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *DocumentsAPI) Delete(ctx context.Context, id string) error {
	return d.c.Call(ctx, http.MethodDelete, "/documents/"+url.PathEscape(id), nil, nil)
}

// Restore rolls a document back to one of its stored revisions.
func (d *DocumentsAPI) Restore(ctx context.Context, docID, revID string) (*models.Document, error) {
	endpoint := fmt.Sprintf("/documents/%s/restore/%s", url.PathEscape(docID), url.PathEscape(revID))

	var doc models.Document
	if err := d.c.Call(ctx, http.MethodPost, endpoint, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// unsuccessful turns a success=false body into an error carrying the
// backend's message when present.
func unsuccessful(message, fallback string) error {
	if message == "" {
		message = fallback
	}
	return &RequestError{Status: http.StatusOK, Message: message}
}
