package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/cardcheck/internal/model"
	"github.com/mmeshcher/cardcheck/internal/service"
	"github.com/mmeshcher/cardcheck/internal/validation"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_SubcommandRegistration(t *testing.T) {
	expected := []string{"card", "password", "temp", "calc"}

	commands := make(map[string]bool)
	for _, c := range newRootCmd().Commands() {
		commands[c.Name()] = true
	}

	for _, name := range expected {
		if !commands[name] {
			t.Errorf("missing subcommand: %s", name)
		}
	}
}

func TestCardCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantOut  []string
		rejected bool
	}{
		{
			name:    "valid number",
			args:    []string{"card", "4007702835532454"},
			wantOut: []string{"************2454\tvalid"},
		},
		{
			name:     "invalid checksum",
			args:     []string{"card", "5541-8019-2379-5241"},
			wantOut:  []string{"************5241\tinvalid (checksum)"},
			rejected: true,
		},
		{
			name:     "mixed arguments",
			args:     []string{"card", "4007 7028 3553 2454", "5541801"},
			wantOut:  []string{"************2454\tvalid", "***1801\tinvalid (length)"},
			rejected: true,
		},
		{
			name:    "numbers from stdin",
			args:    []string{"card"},
			stdin:   "4007702835532454\n\n4222222222220\n",
			wantOut: []string{"************2454\tvalid", "*********2220\tvalid"},
		},
		{
			name:    "custom length policy",
			args:    []string{"card", "--min", "12", "--max", "19", "4007702835532454"},
			wantOut: []string{"************2454\tvalid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, tt.stdin, tt.args...)
			if tt.rejected {
				assert.ErrorIs(t, err, errRejected)
			} else {
				assert.NoError(t, err)
			}
			for _, w := range tt.wantOut {
				assert.Contains(t, out, w)
			}
			assert.NotContains(t, out, "4007702835532454")
		})
	}
}

func TestCardCmd_JSON(t *testing.T) {
	out, err := runCmd(t, "", "card", "--json", "4007702835532454", "")
	require.ErrorIs(t, err, errRejected)

	var got []model.CardCheck
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.True(t, got[0].Valid)
	assert.Equal(t, "empty", got[1].Reason)
}

func TestRunCard_SameResultAsService(t *testing.T) {
	ctx := context.Background()
	svc := service.NewService(validation.DefaultPolicy(), nil)
	numbers := []string{"4007 7028 3553 2454", "5541801923795241", "4O07702835532454"}

	var out bytes.Buffer
	err := runCard(ctx, &out, svc, numbers, true)
	require.ErrorIs(t, err, errRejected)

	var got []model.CardCheck
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, len(numbers))
	for i, n := range numbers {
		assert.Equal(t, svc.CheckCard(ctx, n), got[i])
	}
}

func TestCardCmd_InvalidRange(t *testing.T) {
	_, err := runCmd(t, "", "card", "--min", "16", "--max", "13", "4007702835532454")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errRejected)
}

func TestPasswordCmd(t *testing.T) {
	out, err := runCmd(t, "", "password", "FooBar123!")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	out, err = runCmd(t, "", "password", "FooBar123")
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "invalid (no_special)\n", out)
}

func TestTempCmd(t *testing.T) {
	out, err := runCmd(t, "", "temp", "100")
	require.NoError(t, err)
	assert.Equal(t, "100°C = 212°F\n", out)

	out, err = runCmd(t, "", "temp", "--from", "F", "--", "-40")
	require.NoError(t, err)
	assert.Equal(t, "-40°F = -40°C\n", out)

	out, err = runCmd(t, "", "temp", "37")
	require.NoError(t, err)
	assert.Equal(t, "37°C = 98.6°F\n", out)

	_, err = runCmd(t, "", "temp", "--from", "K", "1")
	assert.Error(t, err)

	_, err = runCmd(t, "", "temp", "warm")
	assert.Error(t, err)
}

func TestCalcCmd(t *testing.T) {
	out, err := runCmd(t, "1\n2\n3\nq\n", "calc")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Add\n")
	assert.Contains(t, out, "Result: 5\n")
}
