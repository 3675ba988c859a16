package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dreamshoots/internal/events"
	"dreamshoots/internal/reels/cache"
	"dreamshoots/internal/reels/repository"
	"dreamshoots/internal/reels/service"
	"dreamshoots/internal/reels/validator"
	"dreamshoots/pkg/config"
	"dreamshoots/pkg/logger"
	"dreamshoots/pkg/middleware"
	"dreamshoots/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const testToken = "s3cret"

func newTestRouter() (*httprouter.Router, repository.ReelRepository) {
	cfg := &config.Config{Log: logger.Discard()}
	repo := repository.NewMemoryReelRepository()
	svc := service.NewReelService(repo, validator.NewReelValidator(cfg.Log), cache.New(nil, 0, cfg.Log), events.NewNopPublisher(), cfg)
	gate := middleware.AdminToken(testToken, middleware.DefaultAdminTokenHeader, cfg.Log, nil)

	router := httprouter.New()
	NewReelHandler(svc, cfg.Log, gate).RegisterRoutes(router)
	return router, repo
}

func do(router http.Handler, method, path, body string, admin bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set(middleware.DefaultAdminTokenHeader, testToken)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreate_RequiresToken(t *testing.T) {
	router, repo := newTestRouter()

	rec := do(router, http.MethodPost, "/api/v1/reels", `{"url":"https://www.instagram.com/reel/ABC/"}`, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	reels, _ := repo.FindAll(context.Background())
	if len(reels) != 0 {
		t.Errorf("got %d reels after rejected create, want 0", len(reels))
	}
}

func TestReelLifecycle(t *testing.T) {
	router, _ := newTestRouter()

	rec := do(router, http.MethodPost, "/api/v1/reels", `{"url":"https://www.instagram.com/reel/ABC123/","title":"Haldi"}`, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created model.ReelView
	_ = json.Unmarshal(rec.Body.Bytes(), &created)
	if created.EmbedURL != "https://www.instagram.com/p/ABC123/embed" {
		t.Errorf("embed_url = %q", created.EmbedURL)
	}

	do(router, http.MethodPost, "/api/v1/reels", `{"url":"https://example.com/foo"}`, true)

	rec = do(router, http.MethodGet, "/api/v1/reels", "", false)
	var all []model.ReelView
	_ = json.Unmarshal(rec.Body.Bytes(), &all)
	if rec.Code != http.StatusOK || len(all) != 2 {
		t.Errorf("public list = %d with %d reels, want 200 with 2", rec.Code, len(all))
	}

	rec = do(router, http.MethodGet, "/api/v1/reels/embeds", "", false)
	var embeds []model.ReelView
	_ = json.Unmarshal(rec.Body.Bytes(), &embeds)
	if len(embeds) != 1 || embeds[0].ID != created.ID {
		t.Errorf("embeds = %+v", embeds)
	}

	if rec := do(router, http.MethodDelete, "/api/v1/reels/id/"+created.ID, "", false); rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated delete = %d, want 401", rec.Code)
	}
	if rec := do(router, http.MethodDelete, "/api/v1/reels/id/"+created.ID, "", true); rec.Code != http.StatusNoContent {
		t.Errorf("delete = %d, want 204", rec.Code)
	}
	if rec := do(router, http.MethodDelete, "/api/v1/reels/id/"+created.ID, "", true); rec.Code != http.StatusNotFound {
		t.Errorf("second delete = %d, want 404", rec.Code)
	}
}

func TestCreate_MissingURL(t *testing.T) {
	router, _ := newTestRouter()

	rec := do(router, http.MethodPost, "/api/v1/reels", `{"title":"x"}`, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
