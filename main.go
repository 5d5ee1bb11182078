package main

import (
	"embed"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"docboard/backend/api/middleware"
	"docboard/backend/api/route"
	"docboard/backend/common"
	"docboard/backend/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
)

//go:embed frontend/dist
var buildFS embed.FS

//go:embed frontend/dist/index.html
var indexPage []byte

func main() {
	flag.Parse()
	if *common.PrintVersion {
		println(common.Version)
		os.Exit(0)
	}
	if *common.PrintHelpFlag {
		common.PrintHelp()
		os.Exit(0)
	}
	common.SetupGinLog()
	common.SysLog(common.SystemName + " " + common.Version + " started")
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	common.InitConf()

	if err := common.InitRedisClient(); err != nil {
		common.FatalLog(err)
	}

	// A failed connection or probe query aborts the launch.
	if err := model.InitDB(); err != nil {
		common.FatalLog(err)
	}
	defer func() {
		if err := model.CloseDB(); err != nil {
			common.SysError("failed to close database: " + err.Error())
		}
	}()

	server := gin.Default()
	server.Use(middleware.CORS())

	store, err := newSessionStore()
	if err != nil {
		common.FatalLog("failed to create session store: " + err.Error())
	}
	server.Use(sessions.Sessions("session", store))

	route.SetRouter(server, buildFS, indexPage)

	setupGracefulShutdown()

	port := strconv.Itoa(*common.Port)
	common.SysLog("server listening on port: " + port)
	if err := server.Run(":" + port); err != nil {
		log.Fatal("failed to start server: " + err.Error())
	}
}

// newSessionStore picks the Redis-backed store when Redis is enabled and
// falls back to cookies otherwise.
func newSessionStore() (sessions.Store, error) {
	if common.RedisEnabled {
		opt := common.ParseRedisOption()
		return redis.NewStore(opt.MinIdleConns, opt.Network, opt.Addr, opt.Password, []byte(common.SessionSecret))
	}
	return cookie.NewStore([]byte(common.SessionSecret)), nil
}

// setupGracefulShutdown closes the database before the process exits.
func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		common.SysLog("shutting down...")

		// 关闭数据库连接
		if err := model.CloseDB(); err != nil {
			common.SysError("failed to close database: " + err.Error())
		}

		os.Exit(0)
	}()
}
