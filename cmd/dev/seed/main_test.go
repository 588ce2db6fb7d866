package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_ExitCodes(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("SEED_TIMEZONE", "UTC")

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"dry-run reset", []string{"-dry-run", "-today", "2024-06-15"}, 0},
		{"dry-run bookings only", []string{"-dry-run", "-bookings-only", "-today", "2024-06-15"}, 0},
		{"bad date", []string{"-dry-run", "-today", "15/06/2024"}, 2},
		{"unknown flag", []string{"-nope"}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, run(tc.args))
		})
	}
}

func TestRun_RefusesProdWithoutDryRun(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	assert.Equal(t, 2, run(nil))
}
