package engine

// Fixed is a position or speed counted in sub-units (SubUnits per display unit).
type Fixed int32

// ToFixed converts whole display units to sub-units.
func ToFixed(units int) Fixed {
	return Fixed(units) << SubUnitShift
}

// Units floors f to whole display units. Negative values floor toward
// negative infinity, matching an arithmetic right shift.
func (f Fixed) Units() int {
	return int(f >> SubUnitShift)
}

// Frac returns the sub-unit phase within the current display unit.
func (f Fixed) Frac() int {
	return int(f & (SubUnits - 1))
}
