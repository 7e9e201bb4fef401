// Package search indexes AI training chunks in Meilisearch for retrieval augmented chat.
package search

import (
	"encoding/json"
	"fmt"
	"strings"

	meili "github.com/meilisearch/meilisearch-go"
	"github.com/sirupsen/logrus"
)

const defaultIndex = "ai_chunks"

// ChunkRecord is the document stored in the chunk index
type ChunkRecord struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	DocumentID     string `json:"document_id"`
	DocumentTitle  string `json:"document_title"`
	Position       int    `json:"position"`
	Content        string `json:"content"`
}

// ChunkHit is a retrieved chunk
type ChunkHit struct {
	ID            string `json:"id"`
	DocumentID    string `json:"document_id"`
	DocumentTitle string `json:"document_title"`
	Position      int    `json:"position"`
	Content       string `json:"content"`
}

// ChunkIndex wraps a Meilisearch index holding chunks of every organization. Every query is
// filtered by organization_id.
type ChunkIndex struct {
	client meili.ServiceManager
	uid    string
}

// NewChunkIndex creates a client for the chunk index
func NewChunkIndex(url, apiKey, uid string) *ChunkIndex {
	if uid == "" {
		uid = defaultIndex
	}
	return &ChunkIndex{
		client: meili.New(url, meili.WithAPIKey(apiKey)),
		uid:    uid,
	}
}

// EnsureIndex creates the index and configures its attributes. Creating an index that already
// exists only yields a failed task, so errors from CreateIndex are logged and ignored.
func (c *ChunkIndex) EnsureIndex() error {
	if _, err := c.client.Health(); err != nil {
		return fmt.Errorf("meilisearch unavailable: %w", err)
	}

	if _, err := c.client.CreateIndex(&meili.IndexConfig{
		Uid:        c.uid,
		PrimaryKey: "id",
	}); err != nil {
		logrus.WithError(err).WithField("index", c.uid).Debug("Create index failed (may already exist)")
	}

	index := c.client.Index(c.uid)
	filterable := []interface{}{"organization_id", "document_id"}
	if _, err := index.UpdateFilterableAttributes(&filterable); err != nil {
		return fmt.Errorf("failed to update filterable attributes: %w", err)
	}
	searchable := []string{"content", "document_title"}
	if _, err := index.UpdateSearchableAttributes(&searchable); err != nil {
		return fmt.Errorf("failed to update searchable attributes: %w", err)
	}
	return nil
}

// IndexChunks adds or replaces chunk documents
func (c *ChunkIndex) IndexChunks(records []ChunkRecord) error {
	if len(records) == 0 {
		return nil
	}
	if _, err := c.client.Index(c.uid).AddDocuments(records, nil); err != nil {
		return fmt.Errorf("failed to index chunks: %w", err)
	}
	return nil
}

// DeleteChunks removes chunk documents by id
func (c *ChunkIndex) DeleteChunks(ids []string) error {
	index := c.client.Index(c.uid)
	for _, id := range ids {
		if _, err := index.DeleteDocument(id, nil); err != nil {
			return fmt.Errorf("failed to delete chunk %s: %w", id, err)
		}
	}
	return nil
}

// Search returns the best matching chunks of one organization
func (c *ChunkIndex) Search(organizationID, query string, limit int) ([]ChunkHit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	resp, err := c.client.MultiSearch(&meili.MultiSearchRequest{
		Queries: []*meili.SearchRequest{{
			IndexUID: c.uid,
			Query:    query,
			Limit:    int64(limit),
			Filter:   organizationFilter(organizationID),
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("meilisearch search: %w", err)
	}

	var hits []ChunkHit
	for _, result := range resp.Results {
		for _, hit := range result.Hits {
			hits = append(hits, hitToChunk(hit))
		}
	}
	return hits, nil
}

func organizationFilter(organizationID string) string {
	return fmt.Sprintf("organization_id = %q", organizationID)
}

func hitToChunk(hit meili.Hit) ChunkHit {
	h := ChunkHit{
		ID:            decodeString(hit, "id"),
		DocumentID:    decodeString(hit, "document_id"),
		DocumentTitle: decodeString(hit, "document_title"),
		Content:       decodeString(hit, "content"),
	}
	if raw, ok := hit["position"]; ok {
		_ = json.Unmarshal(raw, &h.Position)
	}
	return h
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}
