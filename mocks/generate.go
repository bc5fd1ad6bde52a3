package mocks

import "github.com/QuangTung97/enumflags"

// Flag ...
type Flag = enumflags.Flag

//go:generate moq -rm -out enumflags_mocks.go . Flag
