package domain

// Travel package names offered by the catalogue
const (
	PackageSacredDarshan       = "Sacred Darshan"
	PackageDivineJourney       = "Divine Journey"
	PackageCelestialExpedition = "Celestial Expedition"
)

// PackagePrices фиксированный прайс-лист туров (цена за одного человека, ₹)
var PackagePrices = map[string]float64{
	PackageSacredDarshan:       19500,
	PackageDivineJourney:       32500,
	PackageCelestialExpedition: 58000,
}

// DefaultPackagePrice цена по умолчанию для неизвестных туров.
// Неизвестное название тура тарифицируется как Sacred Darshan, а не
// отклоняется — это контрактное поведение, не ошибка.
const DefaultPackagePrice = 19500

// UnitPrice returns the per-person price for the named package.
// Unknown names fall back to the Sacred Darshan price.
func UnitPrice(pkg string) float64 {
	if price, ok := PackagePrices[pkg]; ok {
		return price
	}
	return DefaultPackagePrice
}

// CalculatePackageAmount returns the total amount for a booking:
// unit price of the package multiplied by the number of persons.
func CalculatePackageAmount(pkg string, persons int) float64 {
	return UnitPrice(pkg) * float64(persons)
}
