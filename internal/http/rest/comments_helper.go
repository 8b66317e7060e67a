package rest

import (
	"context"
	"log"

	"github.com/sobara/commentbox/internal/model"
	"github.com/sobara/commentbox/internal/moderation"
	"github.com/sobara/commentbox/util"
	"github.com/sobara/commentbox/util/values"
)

// CreateCommentHelper runs the full write path: validation, the captcha
// gate, persistence, then the moderation notification. Validation and
// captcha failures abort before anything is persisted.
func (api *API) CreateCommentHelper(ctx context.Context, req model.CreateCommentRequest) (string, string, error) {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"display_name", req.DisplayName, util.MaxDisplayNameLength},
		{"body", req.Body, util.MaxBodyLength},
		{"page_id", req.PageID, util.MaxPageIDLength},
	}
	for _, c := range checks {
		if err := util.ValidateField(c.field, c.value, c.max); err != nil {
			return values.Unprocessable, err.Error(), err
		}
	}

	if api.Deps.Captcha.Enabled() {
		if err := api.Deps.Captcha.Verify(ctx, req.CaptchaToken); err != nil {
			return values.NotAllowed, "captcha verification failed", err
		}
	}

	comment, err := api.Deps.Store.Create(ctx, req.PageID, req.DisplayName, req.Body)
	if err != nil {
		return values.Error, "failed to save comment", err
	}

	// The comment is durable at this point; a notification failure leaves
	// it pending and is only logged.
	api.notifyModerator(comment)

	return values.Created, "Comment received and pending moderation", nil
}

func (api *API) notifyModerator(comment model.Comment) {
	if api.Mailer == nil || util.ValidEmail(api.Config.ModeratorEmail) != nil {
		log.Println("no moderator recipient configured, skipping notification for comment", comment.ID)
		return
	}

	token := moderation.EncodeToken(moderation.ApprovalToken{
		CommentID:   comment.ID,
		PageID:      comment.PageID,
		DisplayName: comment.DisplayName,
	})

	emailData := map[string]interface{}{
		"Tag":         api.Config.NotifySubjectTag,
		"PageID":      comment.PageID,
		"DisplayName": comment.DisplayName,
		"Body":        comment.Body,
		"Token":       token,
	}
	if err := api.Mailer.Send(api.Config.ModeratorEmail, emailData, "newComment.tmpl"); err != nil {
		log.Println(values.Error, "Failed to send moderation notification", err)
	}
}
