package usecase

import (
	"polaris-api/internal/model"
	"polaris-api/pkg/discord"
)

const maxFieldLen = 1024

func messageTypeFor(t model.AlertType) discord.MessageType {
	switch t {
	case model.AlertTypeCritical:
		return discord.MessageTypeError
	case model.AlertTypeWarning:
		return discord.MessageTypeWarning
	default:
		return discord.MessageTypeInfo
	}
}

func buildField(name string, value string, inline bool) discord.EmbedField {
	if value == "" {
		value = "N/A"
	}
	return discord.EmbedField{
		Name:   name,
		Value:  truncateText(value, maxFieldLen),
		Inline: inline,
	}
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max < 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
