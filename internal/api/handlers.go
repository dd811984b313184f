package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"profilecheck/internal/app"
	"profilecheck/internal/cache"
	"profilecheck/internal/flags"
	"profilecheck/internal/profile"
)

// maxBatchSize bounds one batch request; larger lookups should be split
// by the caller.
const maxBatchSize = 100

type ProfileHandler struct {
	svc *app.Service
}

func NewProfileHandler(svc *app.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type batchRequest struct {
	Usernames []string `json:"usernames"`
}

func (r *batchRequest) validate() error {
	if len(r.Usernames) == 0 {
		return errors.New("usernames must be a non-empty list")
	}
	if len(r.Usernames) > maxBatchSize {
		return errors.New("too many usernames in one batch")
	}
	return nil
}

// profileView decorates a record with the flag glyphs for its locations,
// so renderers do not need their own country table.
type profileView struct {
	*profile.Record
	BasedInFlag      string `json:"basedInFlag,omitempty"`
	ConnectedViaFlag string `json:"connectedViaFlag,omitempty"`
}

func renderProfile(rec *profile.Record) profileView {
	view := profileView{Record: rec}
	if rec.BasedIn != nil {
		view.BasedInFlag, _ = flags.Lookup(rec.BasedIn.Country)
	}
	if rec.ConnectedVia != nil {
		view.ConnectedViaFlag, _ = flags.Lookup(rec.ConnectedVia.Country)
	}
	return view
}

// GetProfile answers from the cache when possible and fetches upstream
// otherwise.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		errorResponse(c, http.StatusBadRequest, "username is required")
		return
	}

	rec, err := h.svc.FetchProfile(c.Request.Context(), username)
	if err != nil {
		errorResponse(c, http.StatusBadGateway, err.Error())
		return
	}
	successResponse(c, renderProfile(rec))
}

func (h *ProfileHandler) BatchProfiles(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	successResponse(c, h.svc.FetchProfiles(c.Request.Context(), req.Usernames))
}

// GetCachedProfile is the no-network lookup.
func (h *ProfileHandler) GetCachedProfile(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	entry := h.svc.GetCached(username)
	if entry == nil {
		errorResponse(c, http.StatusNotFound, "no cached profile")
		return
	}
	successResponse(c, entry)
}

func (h *ProfileHandler) GetCachedBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	successResponse(c, h.svc.GetCachedMultiple(req.Usernames))
}

// ListProfiles dumps every cached entry that carries useful data,
// decorated with flag glyphs.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	entries := h.svc.AllUsefulProfiles()
	views := make(map[string]profileView, len(entries))
	for username, entry := range entries {
		rec := entry.Record
		views[username] = renderProfile(&rec)
	}
	successResponse(c, views)
}

// StoreScraped accepts profile data a scraping collaborator extracted
// from a rendered page.
func (h *ProfileHandler) StoreScraped(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		errorResponse(c, http.StatusBadRequest, "username is required")
		return
	}

	var payload app.ScrapedPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.StoreScraped(username, payload)
	if err != nil {
		if errors.Is(err, app.ErrNoScrapedData) {
			errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	successResponse(c, entry)
}

func (h *ProfileHandler) GetStatus(c *gin.Context) {
	successResponse(c, h.svc.Status())
}

func (h *ProfileHandler) GetCacheStats(c *gin.Context) {
	successResponse(c, h.svc.CacheStats())
}

func (h *ProfileHandler) ClearCache(c *gin.Context) {
	if err := h.svc.ClearCache(); err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	successResponse(c, gin.H{"cleared": true})
}

func (h *ProfileHandler) ExportCache(c *gin.Context) {
	successResponse(c, h.svc.ExportCache())
}

func (h *ProfileHandler) ImportCache(c *gin.Context) {
	var data cache.Export
	if err := c.ShouldBindJSON(&data); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	count, err := h.svc.ImportCache(&data)
	if err != nil {
		if errors.Is(err, cache.ErrInvalidImport) {
			errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	successResponse(c, gin.H{"importedCount": count})
}

func (h *ProfileHandler) GetSettings(c *gin.Context) {
	successResponse(c, h.svc.Settings())
}

// PatchSettings merges the posted keys into the stored settings object
// and returns the full result.
func (h *ProfileHandler) PatchSettings(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateSettings(patch)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	successResponse(c, updated)
}

func (h *ProfileHandler) HealthCheck(c *gin.Context) {
	successResponse(c, gin.H{"status": "healthy"})
}
