package export_backup

import (
	"context"

	exportBackup "github.com/m04kA/KDR-BookingService/internal/usecase/export_backup"
)

type ExportBackupUseCase interface {
	Execute(ctx context.Context) (*exportBackup.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
