package component

import (
	"github.com/milk9111/wildlife/ai"
	"github.com/milk9111/wildlife/nav"
)

// Animal binds an entity to its behavior agent.
type Animal struct {
	Agent   *ai.Agent
	Species string
}

var AnimalComponent = NewComponent[Animal]()

// NavBody is the entity's body on the navigation surface.
type NavBody struct {
	Agent *nav.Agent
}

var NavBodyComponent = NewComponent[NavBody]()
