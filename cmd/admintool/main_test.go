package main

import (
	"bytes"
	"testing"
	"time"

	"shopadmin/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestRenderCategories(t *testing.T) {
	created := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	categories := []model.Category{
		{ID: 1, Name: "Cameras", CreatedAt: created},
		{ID: 2, Name: "Lenses", CreatedAt: created},
	}

	var buf bytes.Buffer
	err := renderCategories(&buf, categories, 7)
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Cameras")
	assert.Contains(t, out, "Lenses")
	assert.Contains(t, out, "2026-03-14")
	assert.NotContains(t, out, "Slug")
	assert.NotContains(t, out, "SLUG")
	assert.Contains(t, out, "2 of 7")
}
