package handlers

import (
	"restaurant-booking-api/internal/router"
	"restaurant-booking-api/internal/services"
)

// RouterConfig holds the services the booking API routes dispatch to.
type RouterConfig struct {
	AuthService        services.AuthService
	TableService       services.TableService
	ReservationService services.ReservationService

	// Weather enables the GET /weather pass-through when non-nil.
	Weather          ForecastSource
	WeatherLatitude  float64
	WeatherLongitude float64
}

// NewRouter builds the booking API route table. It is constructed once at
// process start and never mutated afterwards.
func NewRouter(config *RouterConfig) *router.Router {
	r := router.New(MapError)

	authHandler := NewAuthHandler(config.AuthService)
	r.Register("/signup", "POST", authHandler.HandleSignUp)
	r.Register("/signin", "POST", authHandler.HandleSignIn)

	tableHandler := NewTableHandler(config.TableService)
	r.Register("/tables", "GET", tableHandler.HandleList)
	r.Register("/tables", "POST", tableHandler.HandleCreate)
	r.Register("/tables/{tableId}", "GET", tableHandler.HandleGet)

	reservationHandler := NewReservationHandler(config.ReservationService)
	r.Register("/reservations", "GET", reservationHandler.HandleList)
	r.Register("/reservations", "POST", reservationHandler.HandleCreate)

	if config.Weather != nil {
		weatherHandler := NewWeatherHandler(config.Weather, config.WeatherLatitude, config.WeatherLongitude)
		r.Register("/weather", "GET", weatherHandler.HandleGet)
	}

	return r
}
