package initialize

import (
	"fmt"
	"net/http"
	"testing"
)

func TestProjectCreateRoles(t *testing.T) {
	s := newTestServer(t)
	adminToken, _ := s.register("Admin", "admin@example.com", "admin")
	mgrToken, mgrID := s.register("Mgr", "mgr@example.com", "manager")
	empToken, _ := s.register("Emp", "emp@example.com", "employee")

	// manager: owner defaults to self
	p := s.createProject(mgrToken, "Managed", nil)
	if p.OwnerID != mgrID {
		t.Errorf("owner_id = %d, want creator %d", p.OwnerID, mgrID)
	}

	// admin may assign an explicit owner
	p2 := s.createProject(adminToken, "Assigned", &mgrID)
	if p2.OwnerID != mgrID {
		t.Errorf("owner_id = %d, want %d", p2.OwnerID, mgrID)
	}

	// employee may not create projects
	var env errEnvelope
	status := s.request("POST", "/api/projects", empToken, map[string]any{
		"name": "Nope", "description": "nope",
	}, &env)
	if status != http.StatusForbidden {
		t.Fatalf("employee create: status = %d, want 403", status)
	}
}

func TestProjectListScoping(t *testing.T) {
	s := newTestServer(t)
	adminToken, _ := s.register("Admin", "admin@example.com", "admin")
	mgr1Token, _ := s.register("Mgr1", "mgr1@example.com", "manager")
	mgr2Token, _ := s.register("Mgr2", "mgr2@example.com", "manager")
	empToken, _ := s.register("Emp", "emp@example.com", "employee")

	s.createProject(mgr1Token, "P1", nil)
	s.createProject(mgr1Token, "P2", nil)
	s.createProject(mgr2Token, "P3", nil)

	cases := []struct {
		name  string
		token string
		want  int
	}{
		{"admin sees all", adminToken, 3},
		{"manager sees own only", mgr1Token, 2},
		{"other manager sees own only", mgr2Token, 1},
		{"employee owns nothing", empToken, 0},
	}
	for _, tc := range cases {
		var projects []projectJSON
		if status := s.request("GET", "/api/projects", tc.token, nil, &projects); status != http.StatusOK {
			t.Fatalf("%s: status = %d", tc.name, status)
		}
		if len(projects) != tc.want {
			t.Errorf("%s: got %d projects, want %d", tc.name, len(projects), tc.want)
		}
	}
}

func TestProjectGetUpdateDeleteAuthorization(t *testing.T) {
	s := newTestServer(t)
	adminToken, _ := s.register("Admin", "admin@example.com", "admin")
	mgr1Token, _ := s.register("Mgr1", "mgr1@example.com", "manager")
	mgr2Token, _ := s.register("Mgr2", "mgr2@example.com", "manager")

	p := s.createProject(mgr1Token, "Owned", nil)
	path := fmt.Sprintf("/api/projects/%d", p.ID)

	// a manager who does not own the project is denied, not hidden
	var env errEnvelope
	if status := s.request("GET", path, mgr2Token, nil, &env); status != http.StatusForbidden {
		t.Fatalf("foreign manager get: status = %d, want 403", status)
	}
	if env.Error.Type != "FORBIDDEN" {
		t.Errorf("error type = %q, want FORBIDDEN", env.Error.Type)
	}

	if status := s.request("PUT", path, mgr2Token, map[string]any{"name": "Hijack"}, nil); status != http.StatusForbidden {
		t.Fatalf("foreign manager update: status = %d, want 403", status)
	}

	// owner partial update
	var updated projectJSON
	if status := s.request("PUT", path, mgr1Token, map[string]any{"name": "Renamed"}, &updated); status != http.StatusOK {
		t.Fatalf("owner update: status = %d, want 200", status)
	}
	if updated.Name != "Renamed" || updated.Description != p.Description {
		t.Errorf("partial update wrong: %+v", updated)
	}

	// admin reaches anything
	if status := s.request("GET", path, adminToken, nil, nil); status != http.StatusOK {
		t.Fatalf("admin get: status = %d, want 200", status)
	}

	// missing project is 404
	if status := s.request("GET", "/api/projects/9999", adminToken, nil, nil); status != http.StatusNotFound {
		t.Fatalf("missing project: status = %d, want 404", status)
	}

	if status := s.request("DELETE", path, mgr1Token, nil, nil); status != http.StatusNoContent {
		t.Fatalf("owner delete: status = %d, want 204", status)
	}
	if status := s.request("GET", path, adminToken, nil, nil); status != http.StatusNotFound {
		t.Fatalf("deleted project get: status = %d, want 404", status)
	}
}
