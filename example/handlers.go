package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/friendlyid"
	"github.com/dmitrymomot/friendlyid/pkg/db"
	"github.com/dmitrymomot/friendlyid/pkg/logger"
	"github.com/dmitrymomot/friendlyid/pkg/slugroute"
)

type postHandler struct {
	eng  *friendlyid.Engine
	repo *postRepo
	log  *slog.Logger
}

type postRequest struct {
	Titles friendlyid.LocalizedSource `json:"titles"`
	Body   string                     `json:"body"`
}

type postResponse struct {
	*Post
	Params map[string]string `json:"params"`
}

type renameRequest struct {
	Title string `json:"title"`
}

// create inserts a post and derives a slug for every translated title in
// the same transaction, so a failed claim leaves no orphan row.
func (h *postHandler) create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Titles) == 0 {
		writeError(w, http.StatusBadRequest, "titles are required")
		return
	}

	var p *Post
	err := db.WithTx(r.Context(), h.repo.pool, func(tx pgx.Tx) error {
		ctx := db.ContextWithTx(r.Context(), tx)

		var err error
		if p, err = h.repo.create(ctx, req.Titles, req.Body); err != nil {
			return err
		}
		if _, err = h.eng.AssignAll(ctx, p, p.Titles); err != nil {
			return err
		}
		return h.repo.save(ctx, p)
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.response(p))
}

func (h *postHandler) show(w http.ResponseWriter, r *http.Request) {
	p, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.response(p))
}

// rename retitles the post in the request locale. The old slug stays in
// history and keeps resolving.
func (h *postHandler) rename(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	p, ok := h.load(w, r)
	if !ok {
		return
	}

	l := slugroute.RequestLocale(r, h.eng.Locales().Default())
	var a friendlyid.Assignment
	err := db.WithTx(r.Context(), h.repo.pool, func(tx pgx.Tx) error {
		ctx := db.ContextWithTx(r.Context(), tx)

		var err error
		if a, err = h.eng.SetFriendlyID(ctx, p, req.Title, l); err != nil {
			return err
		}
		if err := a.Err(); err != nil {
			return err
		}
		if p.Titles == nil {
			p.Titles = friendlyid.LocalizedSource{}
		}
		p.Titles[a.Locale] = req.Title
		return h.repo.save(ctx, p)
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.response(p))
}

func (h *postHandler) destroy(w http.ResponseWriter, r *http.Request) {
	id, _ := slugroute.RecordID(r.Context())
	err := db.WithTx(r.Context(), h.repo.pool, func(tx pgx.Tx) error {
		ctx := db.ContextWithTx(r.Context(), tx)
		if err := h.repo.delete(ctx, id); err != nil {
			return err
		}
		return h.eng.Forget(ctx, postType, id)
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *postHandler) history(w http.ResponseWriter, r *http.Request) {
	id, _ := slugroute.RecordID(r.Context())
	entries, err := h.eng.History(r.Context(), postType, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *postHandler) load(w http.ResponseWriter, r *http.Request) (*Post, bool) {
	id, ok := slugroute.RecordID(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "post not found")
		return nil, false
	}
	p, err := h.repo.get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return nil, false
	}
	return p, true
}

func (h *postHandler) response(p *Post) postResponse {
	locales := h.eng.Locales().Supported()
	if len(locales) == 0 {
		locales = append(p.Titles.Locales(), h.eng.Locales().Default())
	}
	params := make(map[string]string, len(locales))
	for _, l := range locales {
		params[l] = h.eng.ToParam(p, l)
	}
	return postResponse{Post: p, Params: params}
}

func (h *postHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errPostNotFound):
		writeError(w, http.StatusNotFound, "post not found")
	case errors.Is(err, friendlyid.ErrNoSlugDerivable):
		writeError(w, http.StatusUnprocessableEntity, "title has no usable characters")
	case errors.Is(err, friendlyid.ErrUnsupportedLocale), errors.Is(err, friendlyid.ErrInvalidLocale):
		writeError(w, http.StatusBadRequest, "unsupported locale")
	case errors.Is(err, friendlyid.ErrCandidatesExhausted):
		writeError(w, http.StatusConflict, "no free slug for this title")
	default:
		h.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
