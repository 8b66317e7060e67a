package moderation

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/sobara/commentbox/internal/store"
)

var (
	ErrUnauthorizedSender = errors.New("sender is not the configured moderator")
	ErrMalformedToken     = errors.New("no approval token found in message")
)

// InboundMessage is the normalized shape an inbound-mail provider posts to
// the moderation webhook.
type InboundMessage struct {
	From    string `json:"from" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body,omitempty"`
}

// Processor applies approval messages to the comment store. Authentication
// is identity-by-return-address only: a message counts as authorized when
// its sender matches the configured moderator. This is the documented weak
// point of the approval channel.
type Processor struct {
	store     store.CommentStore
	moderator string
}

func NewProcessor(s store.CommentStore, moderatorEmail string) *Processor {
	return &Processor{
		store:     s,
		moderator: strings.ToLower(strings.TrimSpace(moderatorEmail)),
	}
}

// Process handles one inbound message: sender check, token decode, then a
// single idempotent approve. Any failure is terminal for that message and
// leaves the store untouched. On success the approved comment id is
// returned.
func (p *Processor) Process(ctx context.Context, msg InboundMessage) (uuid.UUID, error) {
	addr, err := mail.ParseAddress(msg.From)
	if err != nil {
		return uuid.Nil, ErrUnauthorizedSender
	}
	if p.moderator == "" || !strings.EqualFold(addr.Address, p.moderator) {
		return uuid.Nil, ErrUnauthorizedSender
	}

	token, ok := tokenFromSubject(msg.Subject)
	if !ok {
		return uuid.Nil, ErrMalformedToken
	}

	if err := p.store.Approve(ctx, token.CommentID); err != nil {
		return uuid.Nil, err
	}
	return token.CommentID, nil
}
