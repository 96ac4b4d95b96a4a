package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"polaris-api/internal/model"
	"polaris-api/internal/report"
	"polaris-api/internal/report/repository"
	"polaris-api/pkg/log"
	pkgMinio "polaris-api/pkg/minio"
	"polaris-api/pkg/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	reports  []model.Report
	err      error
	listOpts repository.ListOptions
	pages    []int
	created  model.Report
}

func (f *fakeRepo) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Report, error) {
	f.listOpts = opts
	return f.reports, f.err
}

func (f *fakeRepo) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Report, paginator.Paginator, error) {
	if f.err != nil {
		return nil, paginator.Paginator{}, f.err
	}
	f.pages = append(f.pages, opts.PagQuery.Page)

	start := int(opts.PagQuery.Offset())
	if start > len(f.reports) {
		start = len(f.reports)
	}
	end := start + int(opts.PagQuery.Limit)
	if end > len(f.reports) {
		end = len(f.reports)
	}
	return f.reports[start:end], paginator.Paginator{Total: int64(len(f.reports))}, nil
}

func (f *fakeRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Report, error) {
	f.created = opts.Report
	return opts.Report, f.err
}

type fakeStorage struct {
	uploaded *pkgMinio.UploadRequest
	body     string
	err      error
}

func (f *fakeStorage) UploadFile(ctx context.Context, req *pkgMinio.UploadRequest) (*pkgMinio.FileInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(req.Reader)
	f.uploaded, f.body = req, string(b)
	return &pkgMinio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: req.Size}, nil
}

func (f *fakeStorage) GetPresignedDownloadURL(ctx context.Context, req *pkgMinio.PresignedURLRequest) (*pkgMinio.PresignedURLResponse, error) {
	return &pkgMinio.PresignedURLResponse{URL: "https://files.local/" + req.ObjectName, Method: "GET"}, nil
}

func newTestUseCase(repo repository.Repository, storage pkgMinio.Uploader) *usecase {
	uc := New(log.NewNop(), repo, storage, ExportConfig{Bucket: "polaris-reports", Expiry: 15 * time.Minute}).(*usecase)
	uc.clock = func() time.Time { return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC) }
	return uc
}

func TestSearchBlankQuery(t *testing.T) {
	for _, q := range []string{"", "  ", "\t\n"} {
		repo := &fakeRepo{err: errors.New("must not be called")}

		got, err := newTestUseCase(repo, nil).Search(context.Background(), model.Scope{}, report.SearchInput{Query: q})
		require.NoError(t, err, "query %q", q)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.Empty(t, repo.listOpts, "query %q reached the store", q)
	}
}

func TestSearchDefaultsLimit(t *testing.T) {
	repo := &fakeRepo{}
	_, err := newTestUseCase(repo, nil).Search(context.Background(), model.Scope{}, report.SearchInput{Query: " churn "})
	require.NoError(t, err)
	assert.Equal(t, repository.ListOptions{Filter: repository.Filter{Search: "churn"}, Limit: report.SearchLimit}, repo.listOpts)
}

func TestAnalytics(t *testing.T) {
	repo := &fakeRepo{reports: []model.Report{
		{Category: model.ReportCategoryFinancial},
		{Category: model.ReportCategoryExecutive},
		{Category: model.ReportCategoryFinancial},
		{Category: model.ReportCategoryFinancial},
	}}

	got, err := newTestUseCase(repo, nil).Analytics(context.Background(), model.Scope{})
	require.NoError(t, err)

	assert.Equal(t, 4, got.TotalReports)
	assert.Equal(t, []report.CategoryStat{
		{Category: "executive", Count: 1, Percentage: 25},
		{Category: "financial", Count: 3, Percentage: 75},
	}, got.Categories)
}

func TestAnalyticsEmpty(t *testing.T) {
	got, err := newTestUseCase(&fakeRepo{}, nil).Analytics(context.Background(), model.Scope{})
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalReports)
	assert.Empty(t, got.Categories)
}

func TestCreateDefaults(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, nil)

	_, err := uc.Create(context.Background(), model.Scope{Email: "ana@polaris.io"}, report.CreateInput{Title: "Q3", Category: "misc"})
	assert.Equal(t, report.ErrInvalidInput, err)

	_, err = uc.Create(context.Background(), model.Scope{Email: "ana@polaris.io"}, report.CreateInput{Title: "Q3", Category: model.ReportCategoryFinancial})
	require.NoError(t, err)
	assert.Equal(t, model.ReportStatusDraft, repo.created.Status)
	assert.Equal(t, "ana@polaris.io", repo.created.Author)
}

func TestExport(t *testing.T) {
	reports := make([]model.Report, 0, 205)
	for i := 0; i < 205; i++ {
		reports = append(reports, model.Report{ID: "r", Title: "Weekly, churn", Category: model.ReportCategoryCustomer, Status: model.ReportStatusPublished})
	}
	repo := &fakeRepo{reports: reports}
	storage := &fakeStorage{}

	got, err := newTestUseCase(repo, storage).Export(context.Background(), model.Scope{UserID: "u1"}, report.ExportInput{})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, repo.pages)
	assert.Equal(t, 205, got.Rows)
	assert.True(t, strings.HasPrefix(got.ObjectName, "reports/2026-10-15/"))
	assert.True(t, strings.HasSuffix(got.ObjectName, ".csv"))
	assert.Equal(t, "https://files.local/"+got.ObjectName, got.URL)

	require.NotNil(t, storage.uploaded)
	assert.Equal(t, "polaris-reports", storage.uploaded.BucketName)
	assert.Equal(t, "text/csv", storage.uploaded.ContentType)

	lines := strings.Split(strings.TrimSpace(storage.body), "\n")
	assert.Len(t, lines, 206)
	assert.Equal(t, "id,title,description,category,status,author,created_at,updated_at", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `r,"Weekly, churn",,customer,published`))
}

func TestExportFailures(t *testing.T) {
	_, err := newTestUseCase(&fakeRepo{}, nil).Export(context.Background(), model.Scope{}, report.ExportInput{})
	assert.Equal(t, report.ErrExportUnavailable, err)

	_, err = newTestUseCase(&fakeRepo{err: errors.New("timeout")}, &fakeStorage{}).Export(context.Background(), model.Scope{}, report.ExportInput{})
	assert.EqualError(t, err, "timeout")

	_, err = newTestUseCase(&fakeRepo{}, &fakeStorage{err: errors.New("denied")}).Export(context.Background(), model.Scope{}, report.ExportInput{})
	assert.ErrorContains(t, err, "upload export")
}
