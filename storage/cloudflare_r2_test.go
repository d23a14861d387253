package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		key  string
		want string
	}{
		{"host only", "https://cdn.example.com", "fest-highlights/a.jpg", "https://cdn.example.com/fest-highlights/a.jpg"},
		{"base with path", "https://cdn.example.com/media", "a.jpg", "https://cdn.example.com/media/a.jpg"},
		{"base with trailing slash", "https://cdn.example.com/media/", "/a.jpg", "https://cdn.example.com/media/a.jpg"},
		{"empty key", "https://cdn.example.com", "", ""},
		{"empty base", "", "a.jpg", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicURL(tt.base, tt.key))
		})
	}
}

func TestNewCloudflareR2Store_RequiresAllFields(t *testing.T) {
	_, err := NewCloudflareR2Store(context.Background(), CloudflareR2Config{AccountID: "acc"})
	require.Error(t, err)
}
