package mapping

import (
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	"github.com/chauffeurpro/vtc_booking_app/internal/models"
)

// ToModelOptionRate converts a domain OptionRate to a model OptionRate.
func ToModelOptionRate(d domain.OptionRate) models.OptionRate {
	return models.OptionRate{
		OptionRateID: d.OptionRateID,
		OptionType:   d.OptionType,
		Price:        d.Price,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOptionRate converts a model OptionRate to a domain OptionRate.
func ToDomainOptionRate(m models.OptionRate) domain.OptionRate {
	return domain.OptionRate{
		OptionRateID: m.OptionRateID,
		OptionType:   m.OptionType,
		Price:        m.Price,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOptionRateSlice converts a slice of model option rates to domain option rates.
func ToDomainOptionRateSlice(ms []models.OptionRate) []domain.OptionRate {
	ds := make([]domain.OptionRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOptionRate(m)
	}
	return ds
}
