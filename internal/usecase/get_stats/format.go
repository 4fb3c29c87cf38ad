package get_stats

import (
	"fmt"

	"github.com/m04kA/KDR-BookingService/internal/domain"
)

// FormatRevenue форматирует выручку для дашборда.
// От одного лакха (100000) — в лакхах с одним знаком после запятой
// ("₹2.5L"), меньше — в рупиях с двумя знаками ("₹95000.00").
// Порог и делитель — контрактные значения, не приближения.
func FormatRevenue(revenue float64) string {
	if revenue >= domain.LakhThreshold {
		return fmt.Sprintf("₹%.1fL", revenue/domain.LakhDivisor)
	}
	return fmt.Sprintf("₹%.2f", revenue)
}
