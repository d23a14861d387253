package services

import (
	"fmt"
	"strings"

	"github.com/pmsa-qul/artsfest/models"
)

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func requireAdmin(principal models.Principal) error {
	if !principal.IsAdmin() {
		return ErrForbiddenOperation
	}
	return nil
}

// withTeamColors заполняет цвет команды по slug.
func withTeamColors(teams []models.Team) []models.Team {
	out := make([]models.Team, len(teams))
	for i, t := range teams {
		c := models.ColorForSlug(t.Slug)
		t.Color = &c
		out[i] = t
	}
	return out
}

// GetExtensionFromContentType возвращает расширение файла по MIME-типу изображения.
func GetExtensionFromContentType(contentType string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0])) {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	case "image/avif":
		return ".avif", nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedContentType, contentType)
	}
}
