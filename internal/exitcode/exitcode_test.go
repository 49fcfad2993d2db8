// SPDX-FileCopyrightText: 2025 The thcore Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingrew/thcore/internal/exitcode"
)

func TestFprintParseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{name: "success", code: 0},
		{name: "failures", code: 3},
		{name: "negative", code: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			_, err := exitcode.Fprint(&buf, tt.code)
			require.NoError(t, err)

			code, found := exitcode.Parse(buf.String())
			assert.True(t, found)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestParseInNoisyLog(t *testing.T) {
	log := "boot ok\nsome case output\n" +
		exitcode.Sprint(2) + "\npanic trailer\n"

	code, found := exitcode.Parse(log)
	assert.True(t, found)
	assert.Equal(t, 2, code)
}

func TestParseMissing(t *testing.T) {
	tests := []struct {
		name string
		log  string
	}{
		{name: "empty", log: ""},
		{name: "unrelated", log: "all good\n"},
		{name: "identifier without code", log: exitcode.Identifier + ": nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, found := exitcode.Parse(tt.log)
			assert.False(t, found)
		})
	}
}

func TestErrorConversion(t *testing.T) {
	code, isExitErr := exitcode.From(exitcode.Error(5))
	assert.True(t, isExitErr)
	assert.Equal(t, 5, code)

	code, isExitErr = exitcode.From(nil)
	assert.False(t, isExitErr)
	assert.Equal(t, 0, code)

	code, isExitErr = exitcode.From(assert.AnError)
	assert.False(t, isExitErr)
	assert.Equal(t, -1, code)
}
