//go:build !windows

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package pooling_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/maxpool/pooling"
)

func TestNewAccelerator_Unsupported(t *testing.T) {
	acc, err := pooling.NewAccelerator()
	assert.Nil(t, acc)
	assert.True(t, errors.Is(err, pooling.ErrUnsupported))
}
