package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petetru/careermap-backend/internal/careers"
	"github.com/petetru/careermap-backend/internal/http/middleware"
	"github.com/petetru/careermap-backend/internal/http/response"
	"github.com/petetru/careermap-backend/internal/platform/apierr"
	"github.com/petetru/careermap-backend/internal/platform/logger"
	"github.com/petetru/careermap-backend/internal/session"
)

type CareerMapHandler struct {
	log   *logger.Logger
	svc   *careers.Service
	store session.Store
}

func NewCareerMapHandler(log *logger.Logger, svc *careers.Service, store session.Store) *CareerMapHandler {
	return &CareerMapHandler{
		log:   log.With("handler", "CareerMapHandler"),
		svc:   svc,
		store: store,
	}
}

type sessionView struct {
	ID            string  `json:"id"`
	TokenEstimate float64 `json:"token_estimate"`
	CostEstimate  float64 `json:"cost_estimate"`
	PendingFetch  bool    `json:"pending_fetch"`
	HasGraph      bool    `json:"has_graph"`
}

func viewOf(s session.Session) sessionView {
	return sessionView{
		ID:            s.ID,
		TokenEstimate: s.TokenEstimate,
		CostEstimate:  s.CostEstimate,
		PendingFetch:  s.PendingFetch,
		HasGraph:      s.Graph != nil,
	}
}

func (h *CareerMapHandler) session(c *gin.Context) session.Session {
	id := middleware.SessionIDFrom(c)
	sess, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		sess = session.New(id)
	}
	return sess
}

// POST /api/career-map
func (h *CareerMapHandler) Generate(c *gin.Context) {
	var req careers.FilterRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := h.svc.Catalog().ValidateFilters(req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_filters", err)
		return
	}

	ctx := c.Request.Context()
	sess := h.session(c)
	if sess.PendingFetch {
		// The UI disables itself while a fetch runs; this is the server-side
		// backstop for a second generate racing the first. Check-then-set:
		// two generates hitting different replicas at the same instant can
		// both pass the read. The flag is a backstop, not a lock.
		response.RespondError(c, http.StatusConflict, "fetch_in_flight", errors.New("a fetch is already running for this session"))
		return
	}
	sess.PendingFetch = true
	if err := h.store.Save(ctx, sess); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "session_save_failed", err)
		return
	}

	graph, usage, err := h.svc.Generate(ctx, req)

	sess.PendingFetch = false
	sess.AddUsage(usage)
	// The client may be gone by now (a canceled request context fails a Redis
	// write); the pending flag must still clear or this session would answer
	// 409 to every fetch until its TTL runs out.
	saveCtx := context.WithoutCancel(ctx)
	if err != nil {
		// The prior graph stays visible after a failed fetch; only the
		// counters move (and only when a completion round trip happened).
		if saveErr := h.store.Save(saveCtx, sess); saveErr != nil {
			h.log.Error("session save failed after fetch error, pending flag may be stuck", "session_id", sess.ID, "error", saveErr)
		}
		h.respondFetchError(c, err)
		return
	}

	sess.SetGraph(graph, req)
	if err := h.store.Save(saveCtx, sess); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "session_save_failed", err)
		return
	}

	response.RespondOK(c, gin.H{
		"graph":   graph,
		"vis":     careers.BuildVisPayload(graph),
		"session": viewOf(sess),
	})
}

func (h *CareerMapHandler) respondFetchError(c *gin.Context, err error) {
	response.RespondAPIError(c, classifyFetchError(err))
}

// classifyFetchError maps a fetch-cycle failure onto its HTTP shape.
func classifyFetchError(err error) *apierr.Error {
	var missing *careers.MissingCredentialError
	var svcErr *careers.CompletionServiceError
	var malformed *careers.MalformedGraphError
	switch {
	case errors.As(err, &missing):
		return apierr.New(http.StatusServiceUnavailable, "missing_credential", err)
	case errors.As(err, &svcErr):
		return apierr.New(http.StatusBadGateway, "completion_failed", err)
	case errors.As(err, &malformed):
		return apierr.New(http.StatusBadGateway, "malformed_graph", err)
	default:
		return apierr.New(http.StatusInternalServerError, "career_map_failed", err)
	}
}

// GET /api/career-map
func (h *CareerMapHandler) Get(c *gin.Context) {
	sess := h.session(c)
	if sess.Graph == nil {
		response.RespondError(c, http.StatusNotFound, "no_graph", errors.New("no career map generated yet"))
		return
	}
	response.RespondOK(c, gin.H{
		"graph":   sess.Graph,
		"vis":     careers.BuildVisPayload(sess.Graph),
		"filters": sess.Filters,
		"session": viewOf(sess),
	})
}

// GET /api/career-map/details?node=
func (h *CareerMapHandler) Details(c *gin.Context) {
	sess := h.session(c)
	if sess.Graph == nil {
		response.RespondError(c, http.StatusNotFound, "no_graph", errors.New("no career map generated yet"))
		return
	}
	selected := c.Query("node")
	details := careers.ResolveDetails(sess.Graph, selected)

	payload := gin.H{"details": details}
	if selected != "" && selected != sess.Graph.Center.Name {
		payload["research_url"] = careers.ResearchURL(selected, sess.Filters.Industry)
	}
	response.RespondOK(c, payload)
}

// DELETE /api/career-map
func (h *CareerMapHandler) Clear(c *gin.Context) {
	ctx := c.Request.Context()
	sess := h.session(c)
	sess.Clear()
	if err := h.store.Save(ctx, sess); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "session_save_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"session": viewOf(sess)})
}

// GET /api/session
func (h *CareerMapHandler) GetSession(c *gin.Context) {
	sess := h.session(c)
	response.RespondOK(c, gin.H{"session": viewOf(sess)})
}

// GET /api/catalog
func (h *CareerMapHandler) GetCatalog(c *gin.Context) {
	response.RespondOK(c, gin.H{"catalog": h.svc.Catalog()})
}
