package initialize

import (
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"taskboard/app/controllers"
	"taskboard/app/db"
	jwtutil "taskboard/app/jwt"
	"taskboard/app/middleware"
	"taskboard/app/models"
	"taskboard/app/repo"
	"taskboard/app/services"
	"taskboard/config"
	"taskboard/global"
	"taskboard/router"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Auth     *controllers.AuthController
	Users    *controllers.UserController
	Projects *controllers.ProjectController
	Tasks    *controllers.TaskController
	AuthSvc  *services.AuthService
}

// Build loads config, connects the store and wires the application.
func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	return BuildWithDB(cfg, gdb)
}

// BuildWithDB wires the application around an already-open store handle.
// Tests hand in an in-memory sqlite DB here.
func BuildWithDB(cfg *config.Config, gdb *gorm.DB) (*App, error) {
	global.Config = cfg

	if err := gdb.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	userRepo := repo.NewUserRepository(gdb)
	projectRepo := repo.NewProjectRepository(gdb)
	taskRepo := repo.NewTaskRepository(gdb)

	authSvc := services.NewAuthService(userRepo)
	userSvc := services.NewUserService(userRepo)
	projectSvc := services.NewProjectService(projectRepo)
	taskSvc := services.NewTaskService(taskRepo, projectRepo)

	if cfg.Bootstrap.Email != "" {
		if err := authSvc.EnsureAdmin(cfg.Bootstrap.Name, cfg.Bootstrap.Email, cfg.Bootstrap.Password); err != nil {
			global.Logger.Warn().Err(err).Msg("bootstrap admin not created")
		}
	}

	var tokens *services.TokenStore
	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		tokens = services.NewTokenStore(global.Rdb)
	}

	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpHours: cfg.JWT.ExpHours}
	mw := &middleware.Auth{Signer: signer, Tokens: tokens}

	healthCtrl := controllers.NewHealthController()
	authCtrl := controllers.NewAuthController(authSvc, signer, tokens)
	userCtrl := controllers.NewUserController(userSvc)
	projectCtrl := controllers.NewProjectController(projectSvc)
	taskCtrl := controllers.NewTaskController(taskSvc, projectSvc)

	h := router.NewRouter(healthCtrl, authCtrl, userCtrl, projectCtrl, taskCtrl, mw)
	h = middleware.Logging(h)

	return &App{
		Cfg:      cfg,
		DB:       gdb,
		Router:   h,
		Auth:     authCtrl,
		Users:    userCtrl,
		Projects: projectCtrl,
		Tasks:    taskCtrl,
		AuthSvc:  authSvc,
	}, nil
}
