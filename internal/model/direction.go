package model

// Direction is a human-friendly label for which way the battery level moves.
// Keep these values stable; they are intended for CSV and JSON output.
type Direction string

const (
	DirectionCharging Direction = "CHARGING"
	DirectionIdle     Direction = "IDLE"
	DirectionDraining Direction = "DRAINING"
)

func DirectionFromEnergyKWh(energyKWh float64) Direction {
	switch {
	case energyKWh > 0:
		return DirectionCharging
	case energyKWh < 0:
		return DirectionDraining
	default:
		return DirectionIdle
	}
}
