// Package chain models the row of prompt elements as masses joined by
// springs. Link order is render order, left to right, and also decides which
// links share a spring.
package chain

import (
	"errors"
	"fmt"

	"github.com/atomicstack/eash/internal/prompt"
)

var (
	// ErrInvalidMass is returned when a link has zero or negative mass.
	ErrInvalidMass = errors.New("mass must be positive")
	// ErrMultiplePrompts is returned when more than one link holds the prompt.
	ErrMultiplePrompts = errors.New("chain holds more than one prompt")
	// ErrNoElement is returned for a link without an element.
	ErrNoElement = errors.New("link has no element")
)

// Spring parameters are shared by every spring in a chain.
type Spring struct {
	Spacing   int
	Constant  float64
	Dampening float64
}

// DefaultSpring returns the stock spring tuning.
func DefaultSpring() Spring {
	return Spring{Spacing: 1, Constant: 3.0, Dampening: 0.7}
}

// Mass is the physical state of a link. Position is the left edge column and
// may be fractional or negative while animating. Width is the printed width
// from the last frame.
type Mass struct {
	Mass     float64
	Position float64
	Velocity float64
	Width    int
}

// Element is what a link draws: *Basic or *PromptElement.
type Element interface {
	isElement()
}

// Basic is static decorative text.
type Basic struct {
	Content string
	Visual  VisualState
}

func (*Basic) isElement() {}

// PromptElement draws the shared prompt.
type PromptElement struct {
	Prompt *prompt.Shared
}

func (*PromptElement) isElement() {}

// Link is one element of the chain.
type Link struct {
	Mass    Mass
	Element Element
}

// Chain is the ordered row of links.
type Chain struct {
	Spring Spring
	Links  []Link
}

// New validates links and returns a chain holding them.
func New(spring Spring, links []Link) (*Chain, error) {
	prompts := 0
	for i, link := range links {
		if link.Mass.Mass <= 0 {
			return nil, fmt.Errorf("link %d: mass %v: %w", i, link.Mass.Mass, ErrInvalidMass)
		}
		switch e := link.Element.(type) {
		case nil:
			return nil, fmt.Errorf("link %d: %w", i, ErrNoElement)
		case *Basic:
			if e == nil {
				return nil, fmt.Errorf("link %d: %w", i, ErrNoElement)
			}
		case *PromptElement:
			if e == nil || e.Prompt == nil {
				return nil, fmt.Errorf("link %d: %w", i, ErrNoElement)
			}
			prompts++
		}
	}
	if prompts > 1 {
		return nil, fmt.Errorf("%d prompts: %w", prompts, ErrMultiplePrompts)
	}
	return &Chain{Spring: spring, Links: links}, nil
}

// PromptIndex returns the index of the prompt link, or -1.
func (c *Chain) PromptIndex() int {
	for i, link := range c.Links {
		if _, ok := link.Element.(*PromptElement); ok {
			return i
		}
	}
	return -1
}

// Prompt returns the shared prompt held by the chain, or nil.
func (c *Chain) Prompt() *prompt.Shared {
	if i := c.PromptIndex(); i >= 0 {
		return c.Links[i].Element.(*PromptElement).Prompt
	}
	return nil
}

// Bump adds velocity to the prompt link. It reports false when the chain has
// no prompt.
func (c *Chain) Bump(velocity float64) bool {
	i := c.PromptIndex()
	if i < 0 {
		return false
	}
	c.Links[i].Mass.Velocity += velocity
	return true
}

// NewBasic is a convenience for building a decorative link.
func NewBasic(mass, position float64, content string, visual VisualState) Link {
	return Link{
		Mass:    Mass{Mass: mass, Position: position},
		Element: &Basic{Content: content, Visual: visual},
	}
}

// NewPrompt is a convenience for building the prompt link.
func NewPrompt(mass, position float64, p *prompt.Shared) Link {
	return Link{
		Mass:    Mass{Mass: mass, Position: position},
		Element: &PromptElement{Prompt: p},
	}
}
