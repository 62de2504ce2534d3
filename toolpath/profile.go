package toolpath

import (
	"fmt"

	"github.com/gogpu/cam"
)

// Profile returns the tool-centre paths for cutting along the shape in
// the given direction. Outline returns the shape unchanged. Outside and
// Inside offset it by half the tool diameter. Pocket is the same as
// calling PocketPaths.
func Profile(shape cam.Contour, dir Direction, tool Tool, opts ...cam.OffsetOption) ([]cam.Contour, error) {
	if err := tool.Validate(); err != nil {
		return nil, err
	}
	switch dir {
	case Outline:
		if len(shape) == 0 {
			return nil, nil
		}
		return []cam.Contour{shape}, nil
	case Outside:
		return cam.Offset(shape, tool.Radius(), opts...)
	case Inside:
		return cam.Offset(shape, -tool.Radius(), opts...)
	case Pocket:
		return PocketPaths(shape, tool, opts...)
	}
	return nil, fmt.Errorf("toolpath: unknown direction %d", int(dir))
}
