package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/pkg/alert"
	"github.com/raids-lab/agencyos/pkg/appstate"
	"github.com/raids-lab/agencyos/pkg/config"
	"github.com/raids-lab/agencyos/pkg/cronjob"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

type Manager interface {
	GetName() string
	RegisterPublic(group *gin.RouterGroup)
	RegisterProtected(group *gin.RouterGroup)
	RegisterAdmin(group *gin.RouterGroup)
}

// PortalManager is implemented by managers that also serve client accounts.
type PortalManager interface {
	RegisterPortal(group *gin.RouterGroup)
}

// CollectionLoader fetches the entity collections a view is built from.
type CollectionLoader interface {
	LoadCollections(ctx context.Context, scope query.Scope) (viewmodel.Collections, error)
}

// RegisterConfig carries the shared dependencies handed to every manager.
type RegisterConfig struct {
	DB             *gorm.DB
	Store          *query.Store
	State          *appstate.Store
	CronJobManager *cronjob.CronJobManager
	Alerter        alert.AlertInterface
	Config         *config.Config
}

// Loader returns the store as a CollectionLoader, or nil when there is none.
func (rc *RegisterConfig) Loader() CollectionLoader {
	if rc.Store == nil {
		return nil
	}
	return rc.Store
}

var Registers []func(*RegisterConfig) Manager
