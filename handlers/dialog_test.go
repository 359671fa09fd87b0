package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"multisport/models"
	"multisport/services/navigation"
	"multisport/services/nlu"

	"github.com/gin-gonic/gin"
)

type fakeManager struct {
	text      string
	action    models.Action
	lastParse models.ParseResult
}

func (f *fakeManager) Handle(ctx context.Context, sessionID string, parse models.ParseResult) (string, models.Action, error) {
	f.lastParse = parse
	return f.text, f.action, nil
}

type fakeSessionStore struct{}

func (f *fakeSessionStore) Create(ctx context.Context) (*models.Session, error) {
	return &models.Session{ID: "test-session"}, nil
}

func (f *fakeSessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	return &models.Session{ID: sessionID}, nil
}

func (f *fakeSessionStore) Update(ctx context.Context, session *models.Session) error {
	return nil
}

func newTestRouter(t *testing.T, mgr *fakeManager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewDialogHandler(mgr, nlu.NewKeywordMatcher(), &fakeSessionStore{}, navigation.NewIndoorMap())

	r := gin.New()
	r.POST("/api/sessions", h.CreateSessionHandler)
	r.POST("/api/dialog", h.DialogTurnHandler)
	r.GET("/api/navigation/:destination", h.NavigationHandler)
	return r
}

func TestCreateSessionEndpoint(t *testing.T) {
	r := newTestRouter(t, &fakeManager{text: "ok"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["session_id"] != "test-session" {
		t.Errorf("session_id = %q", body["session_id"])
	}
}

func TestDialogEndpointParsesRawText(t *testing.T) {
	mgr := &fakeManager{text: "Bonjour !"}
	r := newTestRouter(t, mgr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/dialog",
		strings.NewReader(`{"session_id":"s1","text":"bonjour"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if mgr.lastParse.Intent != models.IntentGreeting {
		t.Errorf("parsed intent = %q, want greeting", mgr.lastParse.Intent)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["text"] != "Bonjour !" {
		t.Errorf("text = %v", body["text"])
	}
}

func TestDialogEndpointAcceptsPreParsedTurn(t *testing.T) {
	mgr := &fakeManager{text: "ok"}
	r := newTestRouter(t, mgr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/dialog",
		strings.NewReader(`{"session_id":"s1","intent":"navigate","entities":{"location":["salle_a"]},"raw_text":"où est la salle A"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if mgr.lastParse.Intent != models.IntentNavigate {
		t.Errorf("intent = %q, want navigate", mgr.lastParse.Intent)
	}
	if len(mgr.lastParse.Entities.Location) != 1 || mgr.lastParse.Entities.Location[0] != "salle_a" {
		t.Errorf("entities not forwarded: %+v", mgr.lastParse.Entities)
	}
}

func TestDialogEndpointRequiresSessionID(t *testing.T) {
	r := newTestRouter(t, &fakeManager{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/dialog",
		strings.NewReader(`{"text":"bonjour"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestNavigationEndpoint(t *testing.T) {
	r := newTestRouter(t, &fakeManager{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/navigation/salle_a", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var route navigation.Route
	if err := json.Unmarshal(w.Body.Bytes(), &route); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if route.Destination != "Salle A" {
		t.Errorf("destination = %q", route.Destination)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/navigation/cafeteria", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
