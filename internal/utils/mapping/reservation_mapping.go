package mapping

import (
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	"github.com/chauffeurpro/vtc_booking_app/internal/models"
)

// ToModelReservation converts a domain Reservation to a model Reservation.
func ToModelReservation(d domain.Reservation) models.Reservation {
	return models.Reservation{
		ReservationID:  d.ReservationID,
		UserID:         d.UserID,
		DriverID:       d.DriverID,
		VehicleType:    d.VehicleType,
		Options:        d.Options,
		PickupTime:     d.PickupTime,
		PickupAddress:  d.PickupAddress,
		DropoffAddress: d.DropoffAddress,
		DistanceKm:     d.DistanceKm,
		Status:         string(d.Status),
		EstimatedPrice: d.EstimatedPrice,
		FinalPrice:     d.FinalPrice,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReservation converts a model Reservation to a domain Reservation.
func ToDomainReservation(m models.Reservation) domain.Reservation {
	return domain.Reservation{
		ReservationID:  m.ReservationID,
		UserID:         m.UserID,
		DriverID:       m.DriverID,
		VehicleType:    m.VehicleType,
		Options:        m.Options,
		PickupTime:     m.PickupTime,
		PickupAddress:  m.PickupAddress,
		DropoffAddress: m.DropoffAddress,
		DistanceKm:     m.DistanceKm,
		Status:         domain.ReservationStatus(m.Status),
		EstimatedPrice: m.EstimatedPrice,
		FinalPrice:     m.FinalPrice,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReservationSlice converts a slice of model reservations to domain reservations.
func ToDomainReservationSlice(ms []models.Reservation) []domain.Reservation {
	ds := make([]domain.Reservation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReservation(m)
	}
	return ds
}
