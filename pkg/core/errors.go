package core

import "errors"

var (
	ErrRejectionSampling = errors.New("core: rejection sampling did not converge")
)
