package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sobara/commentbox/internal/moderation"
	"github.com/sobara/commentbox/internal/store"
	"github.com/sobara/commentbox/util"
	"github.com/sobara/commentbox/util/tracing"
	"github.com/sobara/commentbox/util/values"
	"github.com/sobara/commentbox/util/websockets"
)

func (api *API) ModerationRoutes() chi.Router {
	mux := chi.NewRouter()

	// Sender identity is the only authentication on the inbound channel.
	mux.Method(http.MethodPost, "/inbound", Handler(api.InboundApproval))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireModerator)
		r.Method(http.MethodPost, "/comments/{commentID}/approve", Handler(api.ApproveComment))
		r.Method(http.MethodGet, "/comments", Handler(api.ListCommentsForModeration))
	})

	return mux
}

// InboundApproval is the webhook an inbound-mail provider posts reply
// messages to.
func (api *API) InboundApproval(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var msg moderation.InboundMessage
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &msg); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(msg); err != nil {
		return respondWithError(err, "missing sender or subject", values.BadRequestBody, &tc)
	}

	commentID, err := api.Moderation.Process(r.Context(), msg)
	switch {
	case errors.Is(err, moderation.ErrUnauthorizedSender):
		return respondWithError(err, "unauthorized sender", values.NotAllowed, &tc)
	case errors.Is(err, moderation.ErrMalformedToken):
		return respondWithError(err, "malformed approval token", values.BadRequestBody, &tc)
	case errors.Is(err, store.ErrCommentNotFound):
		return respondWithError(err, "comment not found", values.NotFound, &tc)
	case err != nil:
		return respondWithError(err, "failed to process approval", values.Error, &tc)
	}

	api.broadcastApproved(r, commentID)

	return &ServerResponse{
		Message:    "Comment approved",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) ApproveComment(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	commentID, err := util.StringToUUID(chi.URLParam(r, "commentID"))
	if err != nil {
		return respondWithError(err, "invalid comment ID", values.BadRequestBody, &tc)
	}

	err = api.Deps.Store.Approve(r.Context(), commentID)
	switch {
	case errors.Is(err, store.ErrCommentNotFound):
		return respondWithError(err, "comment not found", values.NotFound, &tc)
	case err != nil:
		return respondWithError(err, "failed to approve comment", values.Error, &tc)
	}

	api.broadcastApproved(r, commentID)

	return &ServerResponse{
		Message:    "Comment approved",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

// ListCommentsForModeration returns a page's comments with their moderation
// state, pending ones included. It is the fallback channel when a
// notification was never delivered.
func (api *API) ListCommentsForModeration(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	pageID := r.URL.Query().Get("page_id")
	if err := util.ValidateField("page_id", pageID, util.MaxPageIDLength); err != nil {
		return respondWithError(err, "invalid page_id", values.BadRequestBody, &tc)
	}

	comments, err := api.Deps.Store.GetByPage(r.Context(), pageID)
	if err != nil {
		return respondWithError(err, "failed to get comments", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Comments retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       comments,
	}
}

func (api *API) broadcastApproved(r *http.Request, commentID uuid.UUID) {
	comment, err := api.Deps.Store.GetByID(r.Context(), commentID)
	if err != nil {
		log.Println("failed to load approved comment for broadcast", err)
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":    websockets.MsgTypeCommentUpdate,
		"page_id": comment.PageID,
		"comment": comment.Public(),
	})
	if err != nil {
		log.Println("failed to marshal comment update", err)
		return
	}

	api.Deps.WebSocket.BroadcastCommentUpdate(comment.PageID, payload)
}
