package get_stats

// Response агрегированная статистика для админ-панели
type Response struct {
	TotalBookings     int64   // Всего бронирований
	ConfirmedBookings int64   // Подтвержденных
	PendingBookings   int64   // Ожидающих подтверждения
	UpcomingBookings  int64   // Предстоящих (дата >= сегодня, не отмененных)
	TotalRevenue      float64 // Сумма по подтвержденным бронированиям
	RevenueFormatted  string  // Выручка в человекочитаемом виде
}
