package services

import (
	"testing"

	"study-dashboard-system/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildChatViewAnnotatesOwnMessages(t *testing.T) {
	msgs := []models.ChatMessage{
		{ID: "1", AuthorID: "me", AuthorName: "Ana", Body: "hola"},
		{ID: "2", AuthorID: "other", AuthorName: "Bea", Body: "hey"},
		{ID: "3", AuthorID: "me", AuthorName: "Ana", Body: "qué tal"},
	}

	view := buildChatView(msgs, "me")

	if assert.Len(t, view, 3) {
		assert.True(t, view[0].Mine)
		assert.False(t, view[1].Mine)
		assert.True(t, view[2].Mine)
		// arrival order preserved so clients scroll to the tail
		assert.Equal(t, "1", view[0].ID)
		assert.Equal(t, "3", view[2].ID)
	}
}

func TestBuildChatViewEmpty(t *testing.T) {
	assert.Empty(t, buildChatView(nil, "me"))
}
