package material

import "errors"

var (
	ErrInvalidRefractiveIndex = errors.New("material: refractive index must be positive and finite")
)
