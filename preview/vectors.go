package preview

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uitree/config"
	"uitree/element"
	"uitree/utils/images"
)

// inspectVectors checks path data of every vector element in the tree and
// returns number of malformed ones. When report is requested previews of
// drawable paths are stored there.
func inspectVectors(el element.Element, id uuid.UUID, size int, rpt *config.Report, log *zap.Logger) int {
	var (
		index, bad int
		walk       func(element.Element)
	)
	walk = func(e element.Element) {
		switch v := e.(type) {
		case *element.Vector:
			index++
			if rpt == nil {
				if _, err := images.CompilePath(v.Path); err != nil {
					bad++
					log.Warn("Malformed vector path", zap.Int("vector", index), zap.String("path", v.Path), zap.Error(err))
				}
				return
			}
			img, err := images.RasterizePath(v.Path, size)
			if err != nil {
				bad++
				log.Warn("Malformed vector path", zap.Int("vector", index), zap.String("path", v.Path), zap.Error(err))
				return
			}
			data, err := images.PNG(img)
			if err != nil {
				log.Warn("Unable to encode vector preview", zap.Int("vector", index), zap.Error(err))
				return
			}
			rpt.StoreData(fmt.Sprintf("vectors/%s-%03d.png", id, index), data)
		case *element.Container:
			for _, ch := range v.Children {
				if c, ok := ch.(element.Element); ok {
					walk(c)
				}
			}
		}
	}
	walk(el)
	return bad
}
