package entity_test

import (
	"testing"
	"time"

	"newsfeed/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestEntryKey_Stable(t *testing.T) {
	e := entity.Entry{
		Title:       "Go 1.25 released",
		Description: "release notes",
		Link:        "https://example.com/go-1-25",
		PublishedAt: time.Date(2025, 8, 12, 10, 0, 0, 0, time.UTC),
		Source:      "Example News",
	}

	// Key depends only on title, link and source.
	other := e
	other.Description = "different description"
	other.PublishedAt = other.PublishedAt.Add(time.Hour)

	assert.Equal(t, e.Key(), other.Key())
	assert.Len(t, e.Key(), 64)
}

func TestEntryKey_DistinguishesSources(t *testing.T) {
	a := entity.Entry{Title: "Breaking", Link: "https://a.example/x", Source: "A"}
	b := entity.Entry{Title: "Breaking", Link: "https://a.example/x", Source: "B"}
	c := entity.Entry{Title: "Breaking", Link: "https://b.example/y", Source: "A"}

	assert.NotEqual(t, a.Key(), b.Key(), "same title from different sources must not collide")
	assert.NotEqual(t, a.Key(), c.Key(), "same title with different links must not collide")
}
