package repositories

// RepositoryProvider bundles all repository implementations handed to the
// service container.
type RepositoryProvider struct {
	VehicleRateRepo VehicleRateRepositoryFacade
	OptionRateRepo  OptionRateRepositoryFacade
	ReservationRepo ReservationRepositoryFacade
	UserRepo        UserRepositoryFacade
}
