package handlers

import (
	"barberbook/services/availability"
	"barberbook/services/booking"
	"barberbook/services/catalog"
	"barberbook/services/owner"
	"barberbook/services/schedule"
	"barberbook/services/store"
	"barberbook/services/user"
)

// HandlerBundle groups the endpoint handlers and the services they
// delegate to.
type HandlerBundle struct {
	Availability availability.Engine
	Booking      booking.BookingService
	Users        user.UserService
	Owner        owner.OwnerService
	Catalog      catalog.CatalogService
	Schedule     schedule.ScheduleService
	Store        store.StoreService
}
