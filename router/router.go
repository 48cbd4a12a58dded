package router

import (
	"net/http"

	"taskboard/app/apperr"
	"taskboard/app/controllers"
	"taskboard/app/middleware"
)

func NewRouter(
	healthCtrl *controllers.HealthController,
	authCtrl *controllers.AuthController,
	userCtrl *controllers.UserController,
	projectCtrl *controllers.ProjectController,
	taskCtrl *controllers.TaskController,
	mw *middleware.Auth,
) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /health", healthCtrl.Health)
	mux.HandleFunc("POST /api/auth/register", authCtrl.Register)
	mux.HandleFunc("POST /api/auth/login", authCtrl.Login)
	mux.Handle("POST /api/auth/logout", mw.RequireAuth(http.HandlerFunc(authCtrl.Logout)))

	// users (admin only)
	mux.Handle("GET /api/users", mw.RequireAdmin(http.HandlerFunc(userCtrl.List)))
	mux.Handle("POST /api/users", mw.RequireAdmin(http.HandlerFunc(userCtrl.Create)))
	mux.Handle("PUT /api/users/{id}", mw.RequireAdmin(http.HandlerFunc(userCtrl.Update)))
	mux.Handle("DELETE /api/users/{id}", mw.RequireAdmin(http.HandlerFunc(userCtrl.Remove)))

	// projects
	mux.Handle("GET /api/projects", mw.RequireAuth(http.HandlerFunc(projectCtrl.List)))
	mux.Handle("POST /api/projects", mw.RequireAuth(http.HandlerFunc(projectCtrl.Create)))
	mux.Handle("GET /api/projects/{id}", mw.RequireAuth(http.HandlerFunc(projectCtrl.Get)))
	mux.Handle("PUT /api/projects/{id}", mw.RequireAuth(http.HandlerFunc(projectCtrl.Update)))
	mux.Handle("DELETE /api/projects/{id}", mw.RequireAuth(http.HandlerFunc(projectCtrl.Remove)))

	// tasks
	mux.Handle("GET /api/tasks", mw.RequireAuth(http.HandlerFunc(taskCtrl.List)))
	mux.Handle("POST /api/tasks", mw.RequireAuth(http.HandlerFunc(taskCtrl.Create)))
	mux.Handle("POST /api/tasks/reorder", mw.RequireAuth(http.HandlerFunc(taskCtrl.Reorder)))
	mux.Handle("GET /api/tasks/{id}", mw.RequireAuth(http.HandlerFunc(taskCtrl.Get)))
	mux.Handle("PUT /api/tasks/{id}", mw.RequireAuth(http.HandlerFunc(taskCtrl.Update)))
	mux.Handle("DELETE /api/tasks/{id}", mw.RequireAuth(http.HandlerFunc(taskCtrl.Remove)))

	// everything else gets the error envelope, not the default text 404
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		apperr.Write(w, r, apperr.NotFound("Route not found"))
	})

	return mux
}
