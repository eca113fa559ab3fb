package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/casinodex-next/internal/geo"
	"github.com/casinodex-next/internal/models"
	"github.com/casinodex-next/internal/provider"
	"github.com/casinodex-next/internal/queue"
	"github.com/casinodex-next/internal/repository"
	"github.com/casinodex-next/internal/service"
	"github.com/casinodex-next/internal/tracker"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupPublicHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.AffiliateClickEvent{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Exec("DELETE FROM affiliate_click_events").Error; err != nil {
		t.Fatalf("reset table: %v", err)
	}

	trackerClient, err := tracker.NewClient("https://track.example.com", "key-123", "https://site.example.com/")
	if err != nil {
		t.Fatalf("tracker client: %v", err)
	}

	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("queue client: %v", err)
	}

	clickRepo := repository.NewClickEventRepository(db)
	container := &provider.Container{
		ClickEventRepo: clickRepo,
		GeoEvaluator:   geo.NewEvaluator([]string{"US", "GB", "DE"}, "x-geo-block"),
		TrackerClient:  trackerClient,
		ClickService:   service.NewClickService(clickRepo, queueClient),
	}
	handler := New(container)

	router := gin.New()
	router.GET("/api/keitaro/redirect", handler.KeitaroRedirect)
	router.POST("/api/affiliate/postback", handler.CreatePostback)
	router.GET("/api/affiliate/postback", handler.GetPostback)
	router.GET("/api/compliance/geo-check", handler.GeoCheck)
	return router, db
}

func TestKeitaroRedirectRequiresCampaign(t *testing.T) {
	router, _ := setupPublicHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/keitaro/redirect", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestKeitaroRedirectRecordsAndBounces(t *testing.T) {
	router, db := setupPublicHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/keitaro/redirect?campaign=1001&click_id=ck-9", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("cf-ipcountry", "ca")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("want 302, got %d", w.Code)
	}
	location, err := url.Parse(w.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if location.Path != "/click/1001" {
		t.Fatalf("unexpected redirect path %q", location.Path)
	}
	params := location.Query()
	if params.Get("ua") != "Mozilla/5.0" {
		t.Fatalf("ua not forwarded: %q", params.Get("ua"))
	}
	if params.Get("api_key") != "key-123" {
		t.Fatalf("api_key missing: %q", params.Get("api_key"))
	}

	var event models.AffiliateClickEvent
	if err := db.Where("campaign_id = ?", "1001").First(&event).Error; err != nil {
		t.Fatalf("click not recorded: %v", err)
	}
	if event.Source != "redirect" || event.Country != "CA" {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestCreatePostback(t *testing.T) {
	router, db := setupPublicHandlerTest(t)

	body := strings.NewReader(`{"campaign_id":"1001","click_id":"ck-1","conversion_amount":"25.50"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/affiliate/postback", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp.Success || resp.ID == 0 {
		t.Fatalf("unexpected response %+v", resp)
	}

	var event models.AffiliateClickEvent
	if err := db.First(&event, resp.ID).Error; err != nil {
		t.Fatalf("postback not stored: %v", err)
	}
	if event.Source != "postback" || !event.Converted {
		t.Fatalf("unexpected event %+v", event)
	}
	if event.Revenue == nil || event.Revenue.String() != "25.50" {
		t.Fatalf("revenue not stored: %+v", event.Revenue)
	}
	if event.ConversionAt == nil {
		t.Fatal("conversion_at not set")
	}
}

func TestCreatePostbackUsesBodyContextFields(t *testing.T) {
	router, db := setupPublicHandlerTest(t)

	body := strings.NewReader(`{"campaign_id":"9001","conversion_amount":"49.99","user_agent":"TrackerBot","ip_address":"198.51.100.7","country":"SE"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/affiliate/postback", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "curl/8.0")
	req.Header.Set("cf-ipcountry", "US")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body %s", w.Code, w.Body.String())
	}

	var event models.AffiliateClickEvent
	if err := db.Where("campaign_id = ?", "9001").First(&event).Error; err != nil {
		t.Fatalf("postback not stored: %v", err)
	}
	if !event.Converted || event.Revenue == nil {
		t.Fatalf("conversion_amount must mark the event converted, got %+v", event)
	}
	if event.UserAgent != "TrackerBot" || event.IPAddress != "198.51.100.7" || event.Country != "SE" {
		t.Fatalf("body context fields not stored: %+v", event)
	}
}

func TestCreatePostbackRequiresCampaign(t *testing.T) {
	router, _ := setupPublicHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/affiliate/postback", strings.NewReader(`{"click_id":"ck-1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestGetPostback(t *testing.T) {
	router, db := setupPublicHandlerTest(t)

	seed := models.AffiliateClickEvent{CampaignID: "1001", ClickID: "ck-7", Source: "redirect"}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/affiliate/postback?click_id=ck-7", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/affiliate/postback?click_id=missing", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/affiliate/postback", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400 for missing click_id, got %d", w.Code)
	}
}

func TestGeoCheck(t *testing.T) {
	router, _ := setupPublicHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/compliance/geo-check", nil)
	req.Header.Set("cf-ipcountry", "de")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	var resp struct {
		Blocked   bool   `json:"blocked"`
		Country   string `json:"country"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp.Blocked || resp.Country != "DE" || resp.Timestamp == "" {
		t.Fatalf("unexpected response %+v", resp)
	}
}
