package initialize

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskboard/config"
)

type testServer struct {
	t   *testing.T
	srv *httptest.Server
	app *App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// keep a single connection so the in-memory database survives
	sqlDB.SetMaxOpenConns(1)

	cfg := &config.Config{
		JWT: config.JWT{Secret: "test-secret", Issuer: "taskboard", ExpHours: 168},
	}
	app, err := BuildWithDB(cfg, gdb)
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)
	return &testServer{t: t, srv: srv, app: app}
}

// request performs a JSON round trip and decodes the body into out when
// non-nil. It returns the HTTP status code.
func (s *testServer) request(method, path, token string, body, out any) int {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, s.srv.URL+path, &buf)
	if err != nil {
		s.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.srv.Client().Do(req)
	if err != nil {
		s.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			s.t.Fatalf("decode %s %s response: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

type authResult struct {
	Token string `json:"token"`
	User  struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// register creates an account and returns its token and id.
func (s *testServer) register(name, email, role string) (string, uint) {
	s.t.Helper()
	var resp authResult
	status := s.request("POST", "/api/auth/register", "", map[string]any{
		"name": name, "email": email, "password": "secret123", "role": role,
	}, &resp)
	if status != http.StatusCreated {
		s.t.Fatalf("register %s: status %d", email, status)
	}
	return resp.Token, resp.User.ID
}

type errEnvelope struct {
	Error struct {
		Type      string `json:"type"`
		Message   string `json:"message"`
		Status    int    `json:"status"`
		Path      string `json:"path"`
		Timestamp string `json:"timestamp"`
	} `json:"error"`
}

type projectJSON struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     uint   `json:"owner_id"`
}

type taskJSON struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	ProjectID  uint   `json:"project_id"`
	AssignedTo uint   `json:"assigned_to"`
	OrderIndex *int   `json:"order_index"`
}

func (s *testServer) createProject(token, name string, ownerID *uint) projectJSON {
	s.t.Helper()
	body := map[string]any{"name": name, "description": name + " description"}
	if ownerID != nil {
		body["owner_id"] = *ownerID
	}
	var p projectJSON
	status := s.request("POST", "/api/projects", token, body, &p)
	if status != http.StatusCreated {
		s.t.Fatalf("create project %s: status %d", name, status)
	}
	return p
}

func (s *testServer) createTask(token, title string, projectID, assignedTo uint) taskJSON {
	s.t.Helper()
	var task taskJSON
	status := s.request("POST", "/api/tasks", token, map[string]any{
		"title": title, "description": title + " description",
		"project_id": projectID, "assigned_to": assignedTo,
	}, &task)
	if status != http.StatusCreated {
		s.t.Fatalf("create task %s: status %d", title, status)
	}
	return task
}
