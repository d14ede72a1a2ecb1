package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/services"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewDocuments, "documents"},
		{ViewSearch, "search"},
		{ViewDocContent, "doc_content"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestViewType_DocumentsIsZero(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewDocuments, v)
}

func TestQueryDebounced(t *testing.T) {
	msg := QueryDebounced{Generation: services.Generation(3)}
	assert.Equal(t, services.Generation(3), msg.Generation)
}

func TestDocumentsLoaded(t *testing.T) {
	t.Run("with documents", func(t *testing.T) {
		msg := DocumentsLoaded{Documents: []domain.Document{{Title: "Shell"}}}
		require.Len(t, msg.Documents, 1)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		msg := DocumentsLoaded{Err: domain.ErrCorpusUnavailable}
		assert.Nil(t, msg.Documents)
		assert.ErrorIs(t, msg.Err, domain.ErrCorpusUnavailable)
	})
}

func TestDocumentOpened(t *testing.T) {
	doc := &domain.Document{Path: []string{"shell"}, Title: "Shell"}
	msg := DocumentOpened{Path: doc.Path, Document: doc}

	assert.Equal(t, []string{"shell"}, msg.Path)
	assert.Same(t, doc, msg.Document)
}

func TestErrorOccurred(t *testing.T) {
	err := errors.New("boom")
	msg := ErrorOccurred{Err: err}
	assert.Equal(t, err, msg.Err)
}
