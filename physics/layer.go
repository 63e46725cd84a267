package physics

import "github.com/automoto/kinematic/tags"

// Layer is a collision layer bitmask. A body has membership Layers and a
// Mask of the layers it interacts with.
type Layer uint32

const (
	LayerPlayer Layer = 1 << iota
	LayerEnemy
	LayerClimbable
	LayerInteractable
	LayerGround

	LayerNone Layer = 0
	LayerAll  Layer = LayerPlayer | LayerEnemy | LayerClimbable | LayerInteractable | LayerGround
)

var layerTags = []struct {
	layer Layer
	tag   string
}{
	{LayerPlayer, tags.ResolvPlayer},
	{LayerEnemy, tags.ResolvEnemy},
	{LayerClimbable, tags.ResolvClimbable},
	{LayerInteractable, tags.ResolvInteractable},
	{LayerGround, tags.ResolvGround},
}

// Tags returns the resolv tags for every layer set in l.
func (l Layer) Tags() []string {
	out := make([]string, 0, len(layerTags))
	for _, lt := range layerTags {
		if l&lt.layer != 0 {
			out = append(out, lt.tag)
		}
	}
	return out
}
