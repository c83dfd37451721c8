// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the embedded logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		ctx := WithLogger(context.Background(), logger)

		FromContext(ctx).Info("hello")
		assert.Same(t, logger, FromContext(ctx))
		assert.Contains(t, buf.String(), "hello")
	})

	t.Run("falls back to the discard logger", func(t *testing.T) {
		assert.Same(t, Discard(), FromContext(context.Background()))
	})
}
