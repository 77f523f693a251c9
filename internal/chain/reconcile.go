package chain

// Reconcile adopts the spring and links of next while keeping the motion of
// links that survive. Basic links are matched by their order among basic
// links; the prompt link keeps its own element so the text being edited is not
// lost. A link new to the row starts where its left neighbour currently is.
func (c *Chain) Reconcile(next *Chain) {
	var old []Link
	var oldPrompt *Link
	for i := range c.Links {
		if _, ok := c.Links[i].Element.(*PromptElement); ok {
			oldPrompt = &c.Links[i]
			continue
		}
		old = append(old, c.Links[i])
	}

	links := make([]Link, 0, len(next.Links))
	basic := 0
	for _, link := range next.Links {
		switch link.Element.(type) {
		case *PromptElement:
			if oldPrompt != nil {
				link.Element = oldPrompt.Element
				link.Mass = carry(link.Mass, oldPrompt.Mass)
			}
		default:
			if basic < len(old) {
				link.Mass = carry(link.Mass, old[basic].Mass)
			} else if len(links) > 0 {
				link.Mass.Position = links[len(links)-1].Mass.Position
			}
			basic++
		}
		links = append(links, link)
	}
	c.Spring = next.Spring
	c.Links = links
}

func carry(fresh, prev Mass) Mass {
	fresh.Position = prev.Position
	fresh.Velocity = prev.Velocity
	fresh.Width = prev.Width
	return fresh
}
