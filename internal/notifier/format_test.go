package notifier_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lk-black/sms-sender/internal/notifier"
	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		cents    int64
		expected string
	}{
		{1050, "R$ 10,50"},
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{99, "R$ 0,99"},
		{100, "R$ 1,00"},
		{999, "R$ 9,99"},
		{100000, "R$ 1000,00"},
		{123456789, "R$ 1234567,89"},
	}

	for _, tc := range cases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, notifier.FormatBRL(tc.cents))
		})
	}
}

func TestFormatBRL_AlwaysTwoDecimalDigits(t *testing.T) {
	for cents := int64(0); cents < 500; cents++ {
		formatted := notifier.FormatBRL(cents)
		parts := strings.Split(formatted, ",")
		assert.Len(t, parts, 2, fmt.Sprintf("unexpected format for %d: %s", cents, formatted))
		assert.Len(t, parts[1], 2, fmt.Sprintf("unexpected decimals for %d: %s", cents, formatted))
	}
}

func TestFormatPhone_AddsPrefix(t *testing.T) {
	assert.Equal(t, "+5511999999999", notifier.FormatPhone("5511999999999"))
}

func TestFormatPhone_Idempotent(t *testing.T) {
	once := notifier.FormatPhone("5511999999999")
	assert.Equal(t, once, notifier.FormatPhone(once))
	assert.Equal(t, "+5511999999999", notifier.FormatPhone("+5511999999999"))
}

func TestFormatPhone_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "+5511999999999", notifier.FormatPhone(" 5511999999999 "))
}
