package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is the sole persisted entity. A comment is created pending and
// becomes publicly visible only once Approved is set.
type Comment struct {
	ID          uuid.UUID `json:"id"`
	PageID      string    `json:"page_id"`
	DisplayName string    `json:"display_name"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
	Approved    bool      `json:"approved"`
}

// PublicComment is the projection exposed on public reads. The id, page and
// moderation state stay server-side.
type PublicComment struct {
	DisplayName string    `json:"display_name"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c Comment) Public() PublicComment {
	return PublicComment{
		DisplayName: c.DisplayName,
		Body:        c.Body,
		CreatedAt:   c.CreatedAt,
	}
}

// CreateCommentRequest fields are checked one at a time with
// util.ValidateField so each response names the offending field.
type CreateCommentRequest struct {
	PageID       string `json:"page_id"`
	DisplayName  string `json:"display_name"`
	Body         string `json:"body"`
	CaptchaToken string `json:"captcha_token,omitempty"`
}
