package internal

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/raids-lab/agencyos/docs"
	"github.com/raids-lab/agencyos/internal/handler"
	"github.com/raids-lab/agencyos/internal/middleware"
	"github.com/raids-lab/agencyos/pkg/constants"
)

// Register builds the gin engine with every registered manager mounted.
func Register(config *handler.RegisterConfig) *gin.Engine {
	return RegisterWith(config, middleware.AuthProtected())
}

// RegisterWith is Register with a custom authentication middleware.
func RegisterWith(config *handler.RegisterConfig, auth gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Enable CORS for http://localhost:XXXX in debug mode
	if gin.Mode() == gin.DebugMode {
		if fe := os.Getenv("AGENCYOS_FE_PORT"); fe != "" {
			corsConf := cors.DefaultConfig()
			corsConf.AllowOrigins = []string{"http://localhost:" + fe}
			corsConf.AddAllowHeaders("Authorization")
			r.Use(cors.New(corsConf))
		}
	}

	// Kubernetes health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ok",
		})
	})

	prefix := "/api/" + constants.APIPrefix
	publicRouter := r.Group(prefix)
	protectedRouter := r.Group(prefix, auth, middleware.AuthMember())
	adminRouter := r.Group(prefix+"/admin", auth, middleware.AuthAdmin())
	portalRouter := r.Group(prefix+"/portal", auth, middleware.AuthClient())

	for _, mgr := range registerManagers(config) {
		mgr.RegisterPublic(publicRouter.Group(mgr.GetName()))
		mgr.RegisterProtected(protectedRouter.Group(mgr.GetName()))
		mgr.RegisterAdmin(adminRouter.Group(mgr.GetName()))
		if portal, ok := mgr.(handler.PortalManager); ok {
			group := portalRouter
			if mgr.GetName() != "portal" {
				group = portalRouter.Group(mgr.GetName())
			}
			portal.RegisterPortal(group)
		}
	}

	// Swagger
	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
