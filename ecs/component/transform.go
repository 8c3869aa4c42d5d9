package component

import "github.com/milk9111/wildlife/common"

// Transform is the world position of an entity on the ground plane. Y is
// height and only changes during jumps.
type Transform struct {
	Position common.Vec3
}

var TransformComponent = NewComponent[Transform]()
