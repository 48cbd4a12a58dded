package policy

import "testing"

var (
	admin    = Actor{ID: 1, Role: RoleAdmin}
	manager  = Actor{ID: 2, Role: RoleManager}
	employee = Actor{ID: 3, Role: RoleEmployee}
)

func TestUserAndProjectCreation(t *testing.T) {
	if !CanManageUsers(admin) || CanManageUsers(manager) || CanManageUsers(employee) {
		t.Error("only admins manage users")
	}
	if !CanCreateProject(admin) || !CanCreateProject(manager) || CanCreateProject(employee) {
		t.Error("admins and managers create projects")
	}
}

func TestProjectAccess(t *testing.T) {
	cases := []struct {
		name    string
		actor   Actor
		ownerID uint
		view    bool
		modify  bool
	}{
		{"admin any project", admin, 99, true, true},
		{"manager own project", manager, manager.ID, true, true},
		{"manager foreign project", manager, 99, false, false},
		{"employee owning nothing", employee, 99, false, false},
		{"employee listed as owner", employee, employee.ID, true, false},
	}
	for _, tc := range cases {
		if got := CanViewProject(tc.actor, tc.ownerID); got != tc.view {
			t.Errorf("%s: view = %v, want %v", tc.name, got, tc.view)
		}
		if got := CanModifyProject(tc.actor, tc.ownerID); got != tc.modify {
			t.Errorf("%s: modify = %v, want %v", tc.name, got, tc.modify)
		}
	}
}

func TestTaskManagement(t *testing.T) {
	if !CanManageTasks(admin, 99) {
		t.Error("admin manages tasks in any project")
	}
	if !CanManageTasks(manager, manager.ID) {
		t.Error("owning manager manages tasks")
	}
	if CanManageTasks(manager, 99) {
		t.Error("foreign manager must not manage tasks")
	}
	if CanManageTasks(employee, employee.ID) {
		t.Error("employees never manage tasks, even as project owner")
	}
}

func TestTaskWriteScope(t *testing.T) {
	cases := []struct {
		name       string
		actor      Actor
		ownerID    uint
		assignedTo uint
		want       WriteScope
	}{
		{"admin", admin, 99, 99, WriteFull},
		{"owning manager", manager, manager.ID, 99, WriteFull},
		{"owning manager also assignee", manager, manager.ID, manager.ID, WriteFull},
		{"foreign manager", manager, 99, 99, WriteNone},
		{"assigned employee", employee, 99, employee.ID, WriteStatusOnly},
		{"unassigned employee", employee, 99, 99, WriteNone},
	}
	for _, tc := range cases {
		if got := TaskWriteScope(tc.actor, tc.ownerID, tc.assignedTo); got != tc.want {
			t.Errorf("%s: scope = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTaskView(t *testing.T) {
	if !CanViewTask(employee, 99, employee.ID) {
		t.Error("assignee may view the task")
	}
	if CanViewTask(employee, 99, 42) {
		t.Error("unassigned employee may not view the task")
	}
	if !CanViewTask(manager, manager.ID, 42) {
		t.Error("owner may view any task in the project")
	}
	if CanViewTask(manager, 99, manager.ID) {
		t.Error("managers do not get assignee access to foreign projects")
	}
}

func TestListScopes(t *testing.T) {
	if ProjectListScope(admin) != ListAll || ProjectListScope(manager) != ListOwned || ProjectListScope(employee) != ListOwned {
		t.Error("unexpected project list scopes")
	}
	if TaskListScope(admin) != ListAll || TaskListScope(manager) != ListOwned || TaskListScope(employee) != ListAssigned {
		t.Error("unexpected task list scopes")
	}
}
