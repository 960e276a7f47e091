package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"teslastats/cache"
	"teslastats/config"
	"teslastats/dataset"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importCSV = "Year,Month,Region,Model,Estimated_Deliveries,Production_Units,Avg_Price_USD,Battery_Capacity_kWh,Range_km,CO2_Saved_tons\n" +
	"2023,6,North America,Model Y,55000,58000,52000,75,530,12000\n" +
	"2023,13,North America,Model Y,55000,58000,52000,75,530,12000\n" +
	"2023,7,Europe,Model 3,21000,20500,41999.5,60.5,491.2,4100.75\n"

type fakeMailer struct {
	to      []string
	reports []*ImportReport
	err     error
}

func (m *fakeMailer) SendImportReport(to []string, report *ImportReport) error {
	m.to = to
	m.reports = append(m.reports, report)
	return m.err
}

func TestImportService_Import(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `delivery_records`.*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectExec("INSERT INTO `import_batches`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mem := cache.NewMemory()
	require.NoError(t, mem.Set(context.Background(), cache.Key("monthly", ""), 1))

	mailer := &fakeMailer{err: errors.New("smtp down")}
	cfg := &config.Config{Email: config.EmailConfig{Notify: []string{"ops@example.com"}}}
	svc := NewImportService(db, cfg, mem, mailer)

	report, err := svc.Import(context.Background(), "tesla.csv", strings.NewReader(importCSV), 1)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.NotEmpty(t, report.BatchID)
	assert.Equal(t, "tesla.csv", report.FileName)
	assert.Equal(t, 3, report.TotalRows)
	assert.Equal(t, 2, report.ImportedRows)
	assert.Equal(t, 1, report.RejectedRows)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 3, report.Errors[0].Line)
	assert.Contains(t, report.Errors[0].Message, "月份 13")

	// 导入后统计缓存被清空
	assert.Equal(t, 0, mem.Len())

	// 发送失败不影响导入结果
	assert.Equal(t, []string{"ops@example.com"}, mailer.to)
	require.Len(t, mailer.reports, 1)
	assert.Same(t, report, mailer.reports[0])
}

func TestImportService_Import_StampsMaintainer(t *testing.T) {
	db, mock := setupMockDB(t)

	// 覆盖已有记录时同时更新维护人
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `delivery_records` .*`updated_by`.*ON DUPLICATE KEY UPDATE .*`updated_by`=VALUES\\(`updated_by`\\)").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `import_batches` .*`created_by`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := NewImportService(db, &config.Config{}, cache.NewMemory(), nil)
	csv := "Year,Month,Region,Model,Estimated_Deliveries,Production_Units,Avg_Price_USD,Battery_Capacity_kWh,Range_km,CO2_Saved_tons\n" +
		"2023,6,North America,Model Y,55000,58000,52000,75,530,12000\n"

	report, err := svc.Import(context.Background(), "tesla.csv", strings.NewReader(csv), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, report.ImportedRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportService_Import_Batches(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `delivery_records`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `delivery_records`").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("INSERT INTO `import_batches`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	cfg := &config.Config{Import: config.ImportConfig{BatchSize: 1}}
	svc := NewImportService(db, cfg, nil, nil)

	report, err := svc.Import(context.Background(), "tesla.csv", strings.NewReader(importCSV), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, report.ImportedRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportService_Import_RollbackOnError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `delivery_records`").WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	svc := NewImportService(db, nil, nil, nil)
	_, err := svc.Import(context.Background(), "tesla.csv", strings.NewReader(importCSV), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "写入交付记录失败")
	assert.False(t, IsInputError(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportService_Import_BadHeader(t *testing.T) {
	db, mock := setupMockDB(t)

	svc := NewImportService(db, nil, nil, nil)
	_, err := svc.Import(context.Background(), "bad.csv", strings.NewReader("Year,Month\n2023,6\n"), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)
	assert.True(t, IsInputError(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportService_Validate_TruncatesErrors(t *testing.T) {
	db, mock := setupMockDB(t)

	var b strings.Builder
	b.WriteString(strings.SplitN(importCSV, "\n", 2)[0] + "\n")
	for i := 0; i < 5; i++ {
		b.WriteString("2023,13,Asia,Model S,1,1,1,1,1,1\n")
	}

	cfg := &config.Config{Import: config.ImportConfig{MaxErrors: 2}}
	svc := NewImportService(db, cfg, nil, nil)
	report, err := svc.Validate("check.csv", strings.NewReader(b.String()))
	require.NoError(t, err)

	assert.Empty(t, report.BatchID)
	assert.Equal(t, 5, report.TotalRows)
	assert.Equal(t, 5, report.RejectedRows)
	assert.Len(t, report.Errors, 2)
	assert.True(t, report.Truncated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSummarizeErrors(t *testing.T) {
	s := summarizeErrors([]RowErrorView{
		{Line: 2, Column: "Month", Message: "bad"},
		{Line: 3, Message: "dup"},
	})
	assert.Equal(t, "2 Month: bad\n3: dup", s)
}
