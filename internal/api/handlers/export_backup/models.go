package export_backup

import exportBackup "github.com/m04kA/KDR-BookingService/internal/usecase/export_backup"

// RecordCounts количество выгруженных записей по типам
type RecordCounts struct {
	Bookings int `json:"bookings"`
	Contacts int `json:"contacts"`
}

// ExportBackupResponse HTTP response model
type ExportBackupResponse struct {
	Message  string       `json:"message"`
	Filename string       `json:"filename"`
	Records  RecordCounts `json:"records"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(message string, resp *exportBackup.Response) *ExportBackupResponse {
	return &ExportBackupResponse{
		Message:  message,
		Filename: resp.Filename,
		Records: RecordCounts{
			Bookings: resp.BookingCount,
			Contacts: resp.ContactCount,
		},
	}
}
