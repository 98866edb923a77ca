package formats

import "fmt"

// Objects is a parsed object table: obstacle geometry plus the frog
// sprite description.
type Objects struct {
	Images map[string]Image
	Frog   Sprite
}

// Image gives the footprint and hitbox of one obstacle type. Hitbox
// insets are ordered left, top, right, bottom.
type Image struct {
	W, H   int
	Hitbox [4]float64
}

// Sprite describes the frog filmstrip and its per-frame hitboxes.
type Sprite struct {
	File     string
	Frames   int
	Hitboxes [][4]float64
}

type rawObjects struct {
	Images  map[string]rawImage  `yaml:"images" json:"images"`
	Sprites map[string]rawSprite `yaml:"sprites" json:"sprites"`
}

type rawImage struct {
	Size   []int     `yaml:"size" json:"size"`
	Hitbox []float64 `yaml:"hitbox" json:"hitbox"`
}

type rawSprite struct {
	File     string      `yaml:"file" json:"file"`
	Format   []int       `yaml:"format" json:"format"`
	Hitboxes [][]float64 `yaml:"hitboxes" json:"hitboxes"`
}

func (r rawObjects) build() (Objects, error) {
	o := Objects{Images: make(map[string]Image)}
	for name, ri := range r.Images {
		img := Image{W: 1, H: 1}
		switch len(ri.Size) {
		case 0:
		case 2:
			if ri.Size[0] <= 0 || ri.Size[1] <= 0 {
				return Objects{}, fmt.Errorf("image %q: size must be positive, got %v", name, ri.Size)
			}
			img.W, img.H = ri.Size[0], ri.Size[1]
		default:
			return Objects{}, fmt.Errorf("image %q: size must be [w, h], got %v", name, ri.Size)
		}
		switch len(ri.Hitbox) {
		case 0:
		case 4:
			copy(img.Hitbox[:], ri.Hitbox)
		default:
			return Objects{}, fmt.Errorf("image %q: hitbox must be [l, t, r, b], got %v", name, ri.Hitbox)
		}
		o.Images[name] = img
	}

	rs, ok := r.Sprites["frog"]
	if !ok {
		return Objects{}, fmt.Errorf("object table has no frog sprite")
	}
	if len(rs.Format) != 2 || rs.Format[0] <= 0 || rs.Format[1] <= 0 {
		return Objects{}, fmt.Errorf("frog sprite: format must be [rows, cols], got %v", rs.Format)
	}
	o.Frog = Sprite{File: rs.File, Frames: rs.Format[0] * rs.Format[1]}
	if len(rs.Hitboxes) != o.Frog.Frames {
		return Objects{}, fmt.Errorf("frog sprite: %d hitboxes for %d frames",
			len(rs.Hitboxes), o.Frog.Frames)
	}
	for i, hb := range rs.Hitboxes {
		if len(hb) != 4 {
			return Objects{}, fmt.Errorf("frog sprite: hitbox %d must be [l, t, r, b], got %v", i, hb)
		}
		var fixed [4]float64
		copy(fixed[:], hb)
		o.Frog.Hitboxes = append(o.Frog.Hitboxes, fixed)
	}
	return o, nil
}
