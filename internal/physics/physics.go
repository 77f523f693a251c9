// Package physics advances a chain by one time step.
//
// Every spring uses the chain's shared constant. The spring left of a link
// rests at the left neighbour's width plus the spacing; the first link is held
// by an anchor spring that rests AnchorLength columns from column 0.
package physics

import "github.com/atomicstack/eash/internal/chain"

// AnchorLength is the natural length of the spring holding the first link.
const AnchorLength = 2.0

// Force returns the net spring and damping force on link i.
func Force(c *chain.Chain, i int) float64 {
	f := leftSpring(c, i)
	if i+1 < len(c.Links) {
		f += rightSpring(c, i)
	}
	return f - c.Spring.Dampening*c.Links[i].Mass.Velocity
}

// leftSpring is the force on link i from the spring to its left, or from the
// anchor for the first link.
func leftSpring(c *chain.Chain, i int) float64 {
	k := c.Spring.Constant
	if i == 0 {
		return -k * (c.Links[0].Mass.Position - AnchorLength)
	}
	natural := float64(c.Links[i-1].Mass.Width + c.Spring.Spacing)
	displacement := c.Links[i].Mass.Position - c.Links[i-1].Mass.Position
	return -k * (displacement - natural)
}

// rightSpring is the force on link i from the spring shared with link i+1.
func rightSpring(c *chain.Chain, i int) float64 {
	natural := float64(c.Links[i].Mass.Width + c.Spring.Spacing)
	displacement := c.Links[i+1].Mass.Position - c.Links[i].Mass.Position
	return c.Spring.Constant * (displacement - natural)
}

// Forces computes the force on every link from the current positions.
func Forces(c *chain.Chain) []float64 {
	forces := make([]float64, len(c.Links))
	for i := range c.Links {
		forces[i] = Force(c, i)
	}
	return forces
}

// Step advances the chain by dt seconds. All forces are computed before any
// link moves. Velocity gains the full acceleration each step regardless of dt;
// impulse magnitudes are tuned against that.
func Step(c *chain.Chain, dt float64) {
	forces := Forces(c)
	for i := range c.Links {
		m := &c.Links[i].Mass
		a := forces[i] / m.Mass
		m.Position += m.Velocity*dt + 0.5*a*dt*dt
		m.Velocity += a
	}
}
