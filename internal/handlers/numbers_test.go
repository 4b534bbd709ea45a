package handlers_test

import (
	"bytes"
	"testing"

	"github.com/skywatch-cli/skywatch/internal/command"
	"github.com/skywatch-cli/skywatch/internal/dispatch/handler"
	"github.com/skywatch-cli/skywatch/internal/handlers"
)

func TestNumbersAdd(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewNumbersHandler(&out)

	res := h.Add(command.New(command.ActionAdd, command.ResourceNumbers, "2", "3"))
	if !res.IsOK() {
		t.Fatalf("result = %+v", res)
	}
	if res.Value != 5 {
		t.Errorf("value = %v, want 5", res.Value)
	}
	want := "Performing addition with values: [2, 3]\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestNumbersSilent(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewNumbersHandler(&out)

	args := command.New(command.ActionAdd, command.ResourceNumbers, "2", "3")
	args.Silent = true
	res := h.Add(args)
	if !res.IsOK() || res.Value != 5 {
		t.Fatalf("result = %+v", res)
	}
	if out.Len() != 0 {
		t.Errorf("silent mode still printed %q", out.String())
	}
}

func TestNumbersSubtract(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewNumbersHandler(&out)

	tests := []struct {
		values []string
		want   int
	}{
		{[]string{"10", "3", "2"}, 5},
		{[]string{"7"}, 7},
		{nil, 0},
	}
	for _, tt := range tests {
		res := h.Subtract(command.New(command.ActionSubtract, command.ResourceNumbers, tt.values...))
		if !res.IsOK() || res.Value != tt.want {
			t.Errorf("Subtract(%v) = %+v, want %d", tt.values, res, tt.want)
		}
	}
}

func TestNumbersMultiply(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewNumbersHandler(&out)

	tests := []struct {
		values []string
		want   int
	}{
		{[]string{"2", "3", "4"}, 24},
		{[]string{"5"}, 5},
		{nil, 0},
	}
	for _, tt := range tests {
		res := h.Multiply(command.New(command.ActionMultiply, command.ResourceNumbers, tt.values...))
		if !res.IsOK() || res.Value != tt.want {
			t.Errorf("Multiply(%v) = %+v, want %d", tt.values, res, tt.want)
		}
	}
}

func TestNumbersDivide(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewNumbersHandler(&out)

	res := h.Divide(command.New(command.ActionDivide, command.ResourceNumbers, "20", "2", "5"))
	if !res.IsOK() || res.Value != 2 {
		t.Fatalf("result = %+v, want 2", res)
	}
}

func TestNumbersDivideByZero(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewNumbersHandler(&out)

	res := h.Divide(command.New(command.ActionDivide, command.ResourceNumbers, "10", "0"))
	if res.Status != handler.StatusError {
		t.Fatalf("status = %v, want error", res.Status)
	}
	if res.Error == nil {
		t.Error("error result carries no error")
	}
}

func TestNumbersRejectsNonIntegers(t *testing.T) {
	var out bytes.Buffer
	h := handlers.NewNumbersHandler(&out)

	res := h.Add(command.New(command.ActionAdd, command.ResourceNumbers, "2", "pi"))
	if res.Status != handler.StatusError {
		t.Fatalf("status = %v, want error", res.Status)
	}
	if out.Len() != 0 {
		t.Errorf("failed operation still printed %q", out.String())
	}
}
