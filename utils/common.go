package utils

const (
	// NODETOL is the length below which a vector counts as zero
	NODETOL = 1.e-12
)
