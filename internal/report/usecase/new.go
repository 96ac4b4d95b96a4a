package usecase

import (
	"time"

	"polaris-api/internal/report"
	"polaris-api/internal/report/repository"
	pkgLog "polaris-api/pkg/log"
	pkgMinio "polaris-api/pkg/minio"
)

// ExportConfig says where exported CSV files go and how long their download
// links stay valid.
type ExportConfig struct {
	Bucket string
	Expiry time.Duration
}

type usecase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	storage pkgMinio.Uploader
	export  ExportConfig
	clock   func() time.Time
}

// New builds the report usecase. A nil storage disables Export.
func New(l pkgLog.Logger, repo repository.Repository, storage pkgMinio.Uploader, export ExportConfig) report.UseCase {
	return &usecase{
		l:       l,
		repo:    repo,
		storage: storage,
		export:  export,
		clock:   time.Now,
	}
}
