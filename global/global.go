package global

import (
	"taskboard/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var (
	Config *config.Config
	Logger zerolog.Logger
	Rdb    *redis.Client
)
