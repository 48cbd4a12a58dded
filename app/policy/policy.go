// Package policy holds every role x relationship decision in one place.
// Handlers ask it questions; they never compare roles themselves.
package policy

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Actor is the authenticated caller as seen by the policy: its user id and
// role, nothing else.
type Actor struct {
	ID   uint
	Role Role
}

// WriteScope grades what an actor may change on a task.
type WriteScope int

const (
	WriteNone WriteScope = iota
	WriteStatusOnly
	WriteFull
)

// ListScope grades which rows of a collection an actor may see.
type ListScope int

const (
	ListAll ListScope = iota
	ListOwned
	ListAssigned
)

func CanManageUsers(a Actor) bool { return a.Role == RoleAdmin }

func CanCreateProject(a Actor) bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}

// CanViewProject: admins see everything, everyone else only what they own.
func CanViewProject(a Actor, ownerID uint) bool {
	return a.Role == RoleAdmin || ownerID == a.ID
}

func CanModifyProject(a Actor, ownerID uint) bool {
	return a.Role == RoleAdmin || (a.Role == RoleManager && ownerID == a.ID)
}

func ProjectListScope(a Actor) ListScope {
	if a.Role == RoleAdmin {
		return ListAll
	}
	return ListOwned
}

// CanManageTasks covers task create, delete and reorder within a project.
func CanManageTasks(a Actor, projectOwnerID uint) bool {
	return a.Role == RoleAdmin || (a.Role == RoleManager && projectOwnerID == a.ID)
}

func CanViewTask(a Actor, projectOwnerID, assignedTo uint) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleManager:
		return projectOwnerID == a.ID
	default:
		return assignedTo == a.ID
	}
}

// TaskWriteScope decides how much of a task the actor may edit. Manager
// ownership outranks being the assignee; the status-only scope exists only
// for employee assignees.
func TaskWriteScope(a Actor, projectOwnerID, assignedTo uint) WriteScope {
	switch {
	case a.Role == RoleAdmin:
		return WriteFull
	case a.Role == RoleManager && projectOwnerID == a.ID:
		return WriteFull
	case a.Role == RoleEmployee && assignedTo == a.ID:
		return WriteStatusOnly
	default:
		return WriteNone
	}
}

func TaskListScope(a Actor) ListScope {
	switch a.Role {
	case RoleAdmin:
		return ListAll
	case RoleManager:
		return ListOwned
	default:
		return ListAssigned
	}
}
