package vehicle

import "errors"

var (
	ErrVehicleNotFound = errors.New("Vehicle not found")
	ErrVehicleInactive = errors.New("Vehicle is not active")
)
