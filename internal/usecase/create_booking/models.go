package create_booking

import "time"

// Request модель запроса на создание бронирования.
// Date передается строкой в формате YYYY-MM-DD и парсится внутри usecase.
type Request struct {
	Name            string  // Имя клиента
	Email           string  // Email клиента
	Phone           string  // Телефон клиента
	Package         string  // Название тура из каталога
	Date            string  // Дата поездки, "2026-05-10"
	Persons         int     // Количество человек (положительное)
	SpecialRequests *string // Особые пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64     // Внутренний ID
	Name      string    // Имя клиента
	Email     string    // Email клиента
	Phone     string    // Телефон клиента
	Package   string    // Название тура
	Persons   int       // Количество человек
	Date      time.Time // Дата поездки
	Status    string    // Статус (всегда PENDING при создании)
	BookingID string    // Внешний идентификатор
	Amount    float64   // Итоговая сумма (снапшот цены)

	SpecialRequests *string // Особые пожелания

	CreatedAt time.Time // Время создания
}
