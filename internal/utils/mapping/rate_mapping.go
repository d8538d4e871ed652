package mapping

import (
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	"github.com/chauffeurpro/vtc_booking_app/internal/models"
)

// ToModelVehicleRate converts a domain VehicleRate to a model VehicleRate.
func ToModelVehicleRate(d domain.VehicleRate) models.VehicleRate {
	return models.VehicleRate{
		RateID:      d.RateID,
		VehicleType: d.VehicleType,
		BasePrice:   d.BasePrice,
		PricePerKm:  d.PricePerKm,
		MinPrice:    d.MinPrice,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVehicleRate converts a model VehicleRate to a domain VehicleRate.
func ToDomainVehicleRate(m models.VehicleRate) domain.VehicleRate {
	return domain.VehicleRate{
		RateID:      m.RateID,
		VehicleType: m.VehicleType,
		BasePrice:   m.BasePrice,
		PricePerKm:  m.PricePerKm,
		MinPrice:    m.MinPrice,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVehicleRateSlice converts a slice of model rates to domain rates.
func ToDomainVehicleRateSlice(ms []models.VehicleRate) []domain.VehicleRate {
	ds := make([]domain.VehicleRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVehicleRate(m)
	}
	return ds
}
