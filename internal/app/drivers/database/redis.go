package database

import (
	"context"
	"fmt"

	"doctorportal-service/internal/app/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func NewRedisClient(driverConfig *config.DriverConfig, log *logrus.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	err := rdb.Ping(context.Background()).Err()
	if err != nil {
		log.Fatalf("Failed to connect to redis: %s", err.Error())
	}
	log.Println("Successfully connected to redis")
	return rdb
}
