package export_backup

import (
	bookingsModels "github.com/m04kA/KDR-BookingService/internal/service/bookings/models"
	contactsModels "github.com/m04kA/KDR-BookingService/internal/service/contacts/models"
)

// Snapshot полный слепок данных на момент выгрузки.
// Записи сериализуются в том же виде, в каком их отдает API.
type Snapshot struct {
	Bookings  []bookingsModels.BookingResponse `json:"bookings"`
	Contacts  []contactsModels.ContactResponse `json:"contacts"`
	Timestamp string                           `json:"timestamp"` // UTC, RFC3339
	BackupID  string                           `json:"backup_id"` // 16 hex символов
}

// Response результат выгрузки
type Response struct {
	Filename     string // Идентификатор расположения снапшота
	BookingCount int    // Количество выгруженных бронирований
	ContactCount int    // Количество выгруженных заявок
}
