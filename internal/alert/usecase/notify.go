package usecase

import (
	"context"
	"fmt"
	"strings"

	"polaris-api/internal/alert"
	"polaris-api/internal/model"
	"polaris-api/pkg/discord"
)

func (uc *implUseCase) NotifyCritical(ctx context.Context, a model.Alert) error {
	if uc.discord == nil || a.Type != model.AlertTypeCritical {
		return nil
	}

	opts := discord.MessageOptions{
		Type:        messageTypeFor(a.Type),
		Title:       fmt.Sprintf("Critical alert: %s", a.Title),
		Description: truncateText(a.Message, 2048),
		Fields: []discord.EmbedField{
			buildField("Priority", strings.ToUpper(string(a.Priority)), true),
			buildField("Status", string(a.Status), true),
			buildField("Source", a.Source, true),
			buildField("Alert ID", a.ID, false),
		},
		Timestamp: a.CreatedAt,
		Footer: &discord.EmbedFooter{
			Text: "Polaris Voice+ • Alert Monitor",
		},
	}

	if err := uc.discord.SendEmbed(ctx, opts); err != nil {
		uc.logger.Errorf(ctx, "internal.alert.usecase.NotifyCritical.SendEmbed: %v", err)
		return fmt.Errorf("%w: %v", alert.ErrDispatchFailed, err)
	}
	return nil
}
