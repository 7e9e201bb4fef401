package search

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	meili "github.com/meilisearch/meilisearch-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enqueuedTask = `{"taskUid":1,"indexUid":"ai_chunks","status":"enqueued","type":"documentAdditionOrUpdate","enqueuedAt":"2024-01-01T00:00:00Z"}`

type fakeMeili struct {
	mu       sync.Mutex
	requests []string
	bodies   map[string]string
}

func (f *fakeMeili) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	key := r.Method + " " + r.URL.Path
	f.requests = append(f.requests, key)
	if f.bodies == nil {
		f.bodies = map[string]string{}
	}
	f.bodies[key] = string(body)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path == "/multi-search":
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"results":[{"indexUid":"ai_chunks","query":"pricing","processingTimeMs":1,"limit":3,"offset":0,"estimatedTotalHits":1,"hits":[{"id":"c1","document_id":"d1","document_title":"Price list","position":2,"content":"Plan A costs 10"}]}]}`))
	default:
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(enqueuedTask))
	}
}

func newTestIndex(t *testing.T) (*ChunkIndex, *fakeMeili) {
	t.Helper()
	fake := &fakeMeili{}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	return NewChunkIndex(server.URL, "master-key", ""), fake
}

func TestChunkIndex_Search(t *testing.T) {
	index, fake := newTestIndex(t)

	hits, err := index.Search("org-1", "pricing", 3)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, ChunkHit{ID: "c1", DocumentID: "d1", DocumentTitle: "Price list", Position: 2, Content: "Plan A costs 10"}, hits[0])

	var sent struct {
		Queries []struct {
			IndexUID string `json:"indexUid"`
			Q        string `json:"q"`
			Limit    int    `json:"limit"`
			Filter   string `json:"filter"`
		} `json:"queries"`
	}
	require.NoError(t, json.Unmarshal([]byte(fake.bodies["POST /multi-search"]), &sent))
	require.Len(t, sent.Queries, 1)
	assert.Equal(t, "ai_chunks", sent.Queries[0].IndexUID)
	assert.Equal(t, "pricing", sent.Queries[0].Q)
	assert.Equal(t, 3, sent.Queries[0].Limit)
	assert.Equal(t, `organization_id = "org-1"`, sent.Queries[0].Filter)
}

func TestChunkIndex_SearchBlankQuery(t *testing.T) {
	index, fake := newTestIndex(t)

	hits, err := index.Search("org-1", "   ", 3)
	require.NoError(t, err)
	assert.Empty(t, hits)
	assert.Empty(t, fake.requests)
}

func TestChunkIndex_IndexChunks(t *testing.T) {
	index, fake := newTestIndex(t)

	require.NoError(t, index.IndexChunks(nil))
	assert.Empty(t, fake.requests)

	err := index.IndexChunks([]ChunkRecord{{ID: "c1", OrganizationID: "org-1", DocumentID: "d1", Content: "hello"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"POST /indexes/ai_chunks/documents"}, fake.requests)

	var docs []ChunkRecord
	require.NoError(t, json.Unmarshal([]byte(fake.bodies["POST /indexes/ai_chunks/documents"]), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "org-1", docs[0].OrganizationID)
}

func TestChunkIndex_DeleteChunks(t *testing.T) {
	index, fake := newTestIndex(t)

	require.NoError(t, index.DeleteChunks([]string{"c1", "c2"}))
	assert.Equal(t, []string{
		"DELETE /indexes/ai_chunks/documents/c1",
		"DELETE /indexes/ai_chunks/documents/c2",
	}, fake.requests)
}

func TestHitToChunk_MissingFields(t *testing.T) {
	hit := meili.Hit{"id": json.RawMessage(`"c9"`), "position": json.RawMessage(`"oops"`)}
	assert.Equal(t, ChunkHit{ID: "c9"}, hitToChunk(hit))
}
