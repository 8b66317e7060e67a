package rest

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/sobara/commentbox/internal/model"
	"github.com/sobara/commentbox/util"
	"github.com/sobara/commentbox/util/tracing"
	"github.com/sobara/commentbox/util/values"
)

func (api *API) CommentRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/", Handler(api.CreateComment))
	mux.Method(http.MethodGet, "/", Handler(api.GetComments))
	mux.Get("/live", api.LiveComments)

	return mux
}

func (api *API) CreateComment(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateCommentRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	status, message, err := api.CreateCommentHelper(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	// The persisted id is deliberately withheld; the client only learns
	// that the comment is pending.
	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) GetComments(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	pageID := r.URL.Query().Get("page_id")
	if err := util.ValidateField("page_id", pageID, util.MaxPageIDLength); err != nil {
		return respondWithError(err, "invalid page_id", values.BadRequestBody, &tc)
	}

	comments, err := api.Deps.Store.GetByPage(r.Context(), pageID)
	if err != nil {
		return respondWithError(err, "failed to get comments", values.Error, &tc)
	}

	public := make([]model.PublicComment, 0, len(comments))
	for _, c := range comments {
		if !c.Approved {
			continue
		}
		public = append(public, c.Public())
	}
	sort.Slice(public, func(i, j int) bool {
		return public[i].CreatedAt.Before(public[j].CreatedAt)
	})

	return &ServerResponse{
		Message:    "Comments retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       public,
	}
}

// LiveComments upgrades to a WebSocket feed of approved comments for the
// subscribed page.
func (api *API) LiveComments(w http.ResponseWriter, r *http.Request) {
	api.Deps.WebSocket.HandleConnections(w, r)
}
