package seeds

import (
	"gorm.io/gorm"

	lab "github.com/sltnnt08/ilab-v2/internals/seeds/lab"
)

// RunAllSeeds: dipanggil dari main saat RUN_SEEDS=true.
func RunAllSeeds(db *gorm.DB) {
	lab.SeedLab(db)
}
