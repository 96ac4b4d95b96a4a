package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"polaris-api/internal/model"
	"polaris-api/internal/report"
	"polaris-api/internal/report/repository"
	"polaris-api/pkg/filter"
	"polaris-api/pkg/hook"
	pkgMinio "polaris-api/pkg/minio"
	"polaris-api/pkg/paginator"

	"github.com/friendsofgo/errors"
	"github.com/google/uuid"
)

const csvContentType = "text/csv"

var csvHeader = []string{"id", "title", "description", "category", "status", "author", "created_at", "updated_at"}

// Export writes every report matching the filter to a CSV object and returns
// a presigned link to it.
func (uc *usecase) Export(ctx context.Context, sc model.Scope, ip report.ExportInput) (report.ExportOutput, error) {
	if uc.storage == nil {
		return report.ExportOutput{}, report.ErrExportUnavailable
	}

	f := toRepoFilter(ip.Filter)
	pages := hook.NewPaginator(func(ctx context.Context, page, limit int) ([]model.Report, error) {
		rows, _, err := uc.repo.Get(ctx, sc, repository.GetOptions{
			Filter:   f,
			PagQuery: paginator.PaginateQuery{Page: page, Limit: int64(limit)},
		})
		return rows, err
	}, report.ExportPageSize)

	reports, err := pages.All(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Export.All: %v", err)
		return report.ExportOutput{}, err
	}

	body, err := renderCSV(reports)
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Export.renderCSV: %v", err)
		return report.ExportOutput{}, err
	}

	now := uc.clock().UTC()
	object := fmt.Sprintf("reports/%s/%s.csv", filter.DateKey(now), uuid.NewString())

	if _, err := uc.storage.UploadFile(ctx, &pkgMinio.UploadRequest{
		BucketName:   uc.export.Bucket,
		ObjectName:   object,
		OriginalName: fmt.Sprintf("reports-%s.csv", filter.DateKey(now)),
		Reader:       bytes.NewReader(body),
		Size:         int64(len(body)),
		ContentType:  csvContentType,
		Metadata:     map[string]string{"exported-by": sc.UserID},
	}); err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Export.UploadFile: %v", err)
		return report.ExportOutput{}, errors.Wrap(err, "upload export")
	}

	link, err := uc.storage.GetPresignedDownloadURL(ctx, &pkgMinio.PresignedURLRequest{
		BucketName: uc.export.Bucket,
		ObjectName: object,
		Expiry:     uc.export.Expiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Export.GetPresignedDownloadURL: %v", err)
		return report.ExportOutput{}, errors.Wrap(err, "presign export")
	}

	return report.ExportOutput{
		URL:        link.URL,
		ObjectName: object,
		Rows:       len(reports),
		ExpiresAt:  link.ExpiresAt,
	}, nil
}

func renderCSV(reports []model.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range reports {
		if err := w.Write([]string{
			r.ID,
			r.Title,
			r.Description,
			string(r.Category),
			string(r.Status),
			r.Author,
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.UpdatedAt.UTC().Format(time.RFC3339),
		}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
