package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/scanvault/scanvault-backend/model"
	"github.com/scanvault/scanvault-backend/util"
)

type fakeStore struct {
	report    *model.ScanReport
	records   []model.VulnerabilityRecord
	createErr error
	insertErr error
}

func (f *fakeStore) CreateReport(_ context.Context, report model.ScanReport) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.report = &report
	return "r-100", nil
}

func (f *fakeStore) InsertVulnerabilities(_ context.Context, records []model.VulnerabilityRecord) (int, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.records = records
	return len(records), nil
}

const csvContent = "IP Address,CVE,Plugin ID,Severity,Plugin Name,Description\n" +
	"10.0.0.1,CVE-2024-1,,High,X,Y\n" +
	"10.0.0.2,,19506,Low,Z,W\n"

func TestProcessUpload_Success(t *testing.T) {
	store := &fakeStore{}
	svc := NewReportService(store, nil, zap.NewNop())

	result, err := svc.ProcessUpload(context.Background(), []byte(csvContent), "scan.csv", "Weekly Scan", "Production hosts")
	require.NoError(t, err)

	require.Equal(t, "r-100", result.ReportKey)
	require.Equal(t, "Weekly Scan", result.Name)
	require.Equal(t, "Production hosts", result.Description)
	require.Equal(t, "scan.csv", result.FileName)
	require.Equal(t, 2, result.RecordCount)

	require.NotNil(t, store.report)
	require.Equal(t, "Weekly Scan", store.report.Name)
	require.Equal(t, 2, store.report.RecordCount)
	require.NotEmpty(t, store.report.UploadID)

	require.Len(t, store.records, 2)
	for _, rec := range store.records {
		require.Equal(t, "r-100", rec.ReportKey)
		require.Equal(t, store.report.UploadID, rec.UploadID)
	}
	require.Equal(t, "CVE-2024-1", store.records[0].CVE)
	require.Equal(t, "19506", store.records[1].CVE)
}

func TestProcessUpload_EmptyFile(t *testing.T) {
	svc := NewReportService(&fakeStore{}, nil, zap.NewNop())

	_, err := svc.ProcessUpload(context.Background(), nil, "scan.csv", "n", "d")
	require.Error(t, err)

	var apiErr *util.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.Status)
}

func TestProcessUpload_InvalidCSV(t *testing.T) {
	svc := NewReportService(&fakeStore{}, nil, zap.NewNop())

	_, err := svc.ProcessUpload(context.Background(), []byte("a,b\n\"bad\n"), "scan.csv", "n", "d")
	require.Error(t, err)

	var apiErr *util.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.Status)
}

func TestProcessUpload_StoreErrors(t *testing.T) {
	svc := NewReportService(&fakeStore{createErr: errors.New("unavailable")}, nil, zap.NewNop())
	_, err := svc.ProcessUpload(context.Background(), []byte(csvContent), "scan.csv", "n", "d")
	require.ErrorContains(t, err, "failed to save report")

	svc = NewReportService(&fakeStore{insertErr: errors.New("rejected")}, nil, zap.NewNop())
	_, err = svc.ProcessUpload(context.Background(), []byte(csvContent), "scan.csv", "n", "d")
	require.ErrorContains(t, err, "failed to insert report records")
}
