// Package handlers provides the built-in command handlers.
package handlers

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/skywatch-cli/skywatch/internal/command"
	"github.com/skywatch-cli/skywatch/internal/dispatch/handler"
)

// NumbersHandler implements arithmetic over the numbers resource.
type NumbersHandler struct {
	out io.Writer
}

// NewNumbersHandler creates a numbers handler writing output to out.
func NewNumbersHandler(out io.Writer) *NumbersHandler {
	if out == nil {
		out = os.Stdout
	}
	return &NumbersHandler{out: out}
}

// Add sums the integer-parsed values.
func (h *NumbersHandler) Add(args command.Args) handler.Result {
	nums, err := parseInts(args.Values)
	if err != nil {
		return handler.Error(err)
	}

	sum := 0
	for _, n := range nums {
		sum += n
	}

	h.announce(args, "addition")
	return handler.OKWithValue(sum)
}

// Subtract subtracts the remaining values from the first.
func (h *NumbersHandler) Subtract(args command.Args) handler.Result {
	nums, err := parseInts(args.Values)
	if err != nil {
		return handler.Error(err)
	}
	if len(nums) == 0 {
		return handler.OKWithValue(0)
	}

	diff := nums[0]
	for _, n := range nums[1:] {
		diff -= n
	}

	h.announce(args, "subtraction")
	return handler.OKWithValue(diff)
}

// Multiply multiplies the integer-parsed values.
func (h *NumbersHandler) Multiply(args command.Args) handler.Result {
	nums, err := parseInts(args.Values)
	if err != nil {
		return handler.Error(err)
	}

	product := 1
	if len(nums) == 0 {
		product = 0
	}
	for _, n := range nums {
		product *= n
	}

	h.announce(args, "multiplication")
	return handler.OKWithValue(product)
}

// Divide divides the first value by each of the remaining values in order.
func (h *NumbersHandler) Divide(args command.Args) handler.Result {
	nums, err := parseInts(args.Values)
	if err != nil {
		return handler.Error(err)
	}
	if len(nums) == 0 {
		return handler.OKWithValue(0)
	}

	quotient := nums[0]
	for _, n := range nums[1:] {
		if n == 0 {
			return handler.Errorf("division by zero")
		}
		quotient /= n
	}

	h.announce(args, "division")
	return handler.OKWithValue(quotient)
}

// announce prints the operation line unless the caller asked for silence.
func (h *NumbersHandler) announce(args command.Args, op string) {
	if args.Silent {
		return
	}
	fmt.Fprintf(h.out, "Performing %s with values: [%s]\n", op, strings.Join(args.Values, ", "))
}

// parseInts converts the positional values to integers.
func parseInts(values []string) ([]int, error) {
	nums := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("value %q is not an integer", v)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
