package migration

import (
	"github.com/orris-inc/subkeeper/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the models created by the auto-migration strategy.
func AutoMigrateModels() []interface{} {
	return models.AllModels()
}
