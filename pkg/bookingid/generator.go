// Package bookingid генерирует внешние идентификаторы бронирований.
//
// Формат фиксированный: префикс "KDR", текущее время HHMM (24-часовой формат)
// и 8 случайных десятичных цифр — всего 15 символов. Формат детерминирован
// по структуре, но не гарантирует уникальность: вызывающая сторона обязана
// проверять идентификатор по хранилищу.
package bookingid

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	prefix       = "KDR"
	randomDigits = 8
)

// Generator генератор идентификаторов бронирований
type Generator struct{}

// NewGenerator создает новый генератор
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate возвращает идентификатор вида KDR<HHMM><8 цифр> для момента now
func (g *Generator) Generate(now time.Time) string {
	return prefix + now.Format("1504") + randomDigitString(randomDigits)
}

// randomDigitString возвращает строку из n случайных десятичных цифр
func randomDigitString(n int) string {
	max := big.NewInt(10)
	buf := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand на поддерживаемых платформах не возвращает ошибок
			panic(fmt.Sprintf("bookingid: crypto/rand failed: %v", err))
		}
		buf = append(buf, byte('0'+d.Int64()))
	}
	return string(buf)
}
