package http

import (
	"polaris-api/internal/alert"
	"polaris-api/pkg/discord"
	"polaris-api/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      alert.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc alert.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
