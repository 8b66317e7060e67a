package moderation

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ApprovalToken is the structured payload embedded in a notification
// subject. Only the comment id drives the approval; the other fields are a
// denormalized snapshot kept for display and are never written back.
type ApprovalToken struct {
	CommentID   uuid.UUID `json:"comment_id"`
	PageID      string    `json:"page_id,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
}

// EncodeToken renders the token as a flat string that survives a round trip
// through an email subject line.
func EncodeToken(t ApprovalToken) string {
	raw, _ := json.Marshal(t)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeToken reverses EncodeToken.
func DecodeToken(s string) (ApprovalToken, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return ApprovalToken{}, errors.Wrap(err, "decode approval token")
	}

	var t ApprovalToken
	if err := json.Unmarshal(raw, &t); err != nil {
		return ApprovalToken{}, errors.Wrap(err, "unmarshal approval token")
	}
	if t.CommentID == uuid.Nil {
		return ApprovalToken{}, errors.New("approval token missing comment id")
	}
	return t, nil
}

// tokenFromSubject scans a subject line for a bracketed segment that decodes
// as an approval token. Reply prefixes and the notification tag are
// bracketed too, so every candidate is tried.
func tokenFromSubject(subject string) (ApprovalToken, bool) {
	rest := subject
	for {
		open := strings.Index(rest, "[")
		if open < 0 {
			return ApprovalToken{}, false
		}
		rest = rest[open+1:]

		end := strings.Index(rest, "]")
		if end < 0 {
			return ApprovalToken{}, false
		}

		if t, err := DecodeToken(rest[:end]); err == nil {
			return t, true
		}
		rest = rest[end+1:]
	}
}
