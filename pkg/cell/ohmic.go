package cell

// OhmicLoss is the resistive drop i*r across membrane and contacts. Linear
// in the current, so it needs no guard.
func (c *Cell) OhmicLoss(i float64) float64 {
	return i * c.params.AreaResistance
}
