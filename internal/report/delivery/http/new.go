package http

import (
	"polaris-api/internal/report"
	"polaris-api/pkg/discord"
	"polaris-api/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      report.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc report.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
