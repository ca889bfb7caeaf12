package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"
	"strconv"
	"strings"
	"styledecor/src/boot"
	"styledecor/src/config"
	"styledecor/src/middlewares"
	"styledecor/src/utils"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var sortOrderValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	order, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch strings.ToLower(order) {
	case "", "asc", "desc":
		return true
	}
	return false
}

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("sortorder", sortOrderValidatorFunc)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "StyleDecor server is running")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		mm := os.Getenv("MAINTENANCE_MODE")
		if mm == "" {
			return
		}
		on, err := strconv.ParseBool(mm)
		if err != nil || on {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": err.Error()})
			return
		}
	})
	return g
}

func corsMiddleware(g *gin.Engine) *gin.Engine {
	if os.Getenv("API_ENV") == "local" {
		g.Use(cors.Default())
		return g
	}
	siteDomain := config.SiteDomain()
	cc := cors.DefaultConfig()
	cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
	cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
	cc.AllowOriginFunc = func(origin string) bool {
		match, _ := regexp.MatchString("^"+regexp.QuoteMeta(siteDomain)+"$", origin)
		return match
	}
	cc.AllowCredentials = true
	cc.AllowAllOrigins = false
	g.Use(cors.New(cc))
	return g
}

// registerRoutes mounts every route at the root. Public reads stay open; the
// rest require a verified ID token.
func registerRoutes(router *gin.Engine) {
	public := router.Group("/")
	serviceHandlers(public)

	stripeWebhookRoute(router)

	authorized := router.Group("/")
	authorized.Use(middlewares.VerifyIdToken)
	{
		bookingHandlers(authorized)
		paymentHandlers(authorized)
		userHandlers(authorized)
		decoratorHandlers(authorized)
	}
}

func initLogger() {
	cwd, _ := os.Getwd()
	logsDir := path.Join(cwd, "logs")
	serverLogs := path.Join(logsDir, "server.log")
	apiLogs := path.Join(logsDir, "api.log")
	gin.ForceConsoleColor()

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		log.Printf("Could not create logs directory: %s\n", err.Error())
		return
	}
	f, err := os.Create(apiLogs)
	if err != nil {
		log.Printf("Could not create api log: %s\n", err.Error())
		return
	}
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	if utils.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	initLogger()

	boot.InitDb()
	boot.InitClients()

	router := setupRouter()
	router = corsMiddleware(router)
	registerValidations()
	router = maintenanceModeMiddleware(router)
	registerRoutes(router)

	addr := ":" + config.Port()
	if os.Getenv("TLS_ENABLE") == "true" {
		cwd, _ := os.Getwd()
		certpath := path.Join(cwd, "certificates", "localhost.pem")
		keypath := path.Join(cwd, "certificates", "localhost-key.pem")
		if err := router.RunTLS(addr, certpath, keypath); err != nil {
			log.Fatalf("Failed to start server: %s", err)
		}
	}
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}
