package calculator

import (
	"math"

	"utility-api/internal/apperrors"
)

const (
	msgTwoNumbers = "Both arguments must be numbers"
	msgOneNumber  = "Argument must be a number"
)

// finite reports whether every value is a usable number (not NaN, not ±Inf).
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func isInteger(n float64) bool {
	return n == math.Trunc(n)
}

func checkPair(op string, a, b float64) error {
	if !finite(a, b) {
		return apperrors.New(apperrors.CodeInvalidArgument, op, msgTwoNumbers)
	}
	return nil
}

func checkOne(op string, n float64) error {
	if !finite(n) {
		return apperrors.New(apperrors.CodeInvalidArgument, op, msgOneNumber)
	}
	return nil
}

// Add returns a+b.
func Add(a, b float64) (float64, error) {
	if err := checkPair("add", a, b); err != nil {
		return 0, err
	}
	return a + b, nil
}

// Subtract returns a-b.
func Subtract(a, b float64) (float64, error) {
	if err := checkPair("subtract", a, b); err != nil {
		return 0, err
	}
	return a - b, nil
}

// Multiply returns a*b.
func Multiply(a, b float64) (float64, error) {
	if err := checkPair("multiply", a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// Divide returns a/b. The zero check runs only after both operands are
// known to be numbers.
func Divide(a, b float64) (float64, error) {
	if err := checkPair("divide", a, b); err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, apperrors.New(apperrors.CodeDivisionByZero, "divide", "Cannot divide by zero")
	}
	return a / b, nil
}

// Power returns base raised to exp. Results outside the float64 range, or
// undefined in the reals, come back as ±Inf or NaN.
func Power(base, exp float64) (float64, error) {
	if err := checkPair("power", base, exp); err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

// Factorial returns n! computed in float64. Values above 170! overflow to +Inf.
func Factorial(n float64) (float64, error) {
	if err := checkOne("factorial", n); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, apperrors.New(apperrors.CodeNegativeInput, "factorial", "Cannot calculate factorial of negative number")
	}
	if !isInteger(n) {
		return 0, apperrors.New(apperrors.CodeNotInteger, "factorial", "Factorial is only defined for integers")
	}

	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
		if math.IsInf(result, 1) {
			break
		}
	}
	return result, nil
}

// IsPrime reports whether n is a prime integer. Fractional and sub-2 inputs
// are not prime rather than invalid.
func IsPrime(n float64) (bool, error) {
	if err := checkOne("isPrime", n); err != nil {
		return false, err
	}
	if !isInteger(n) || n < 2 {
		return false, nil
	}

	limit := math.Sqrt(n)
	for i := 2.0; i <= limit; i++ {
		if math.Mod(n, i) == 0 {
			return false, nil
		}
	}
	return true, nil
}

// Fibonacci returns the nth Fibonacci number, 0-indexed.
func Fibonacci(n float64) (float64, error) {
	if err := checkOne("fibonacci", n); err != nil {
		return 0, err
	}
	if n < 0 || !isInteger(n) {
		return 0, apperrors.New(apperrors.CodeNegativeInput, "fibonacci", "Fibonacci is only defined for non-negative integers")
	}
	if n <= 1 {
		return n, nil
	}

	prev, curr := 0.0, 1.0
	for i := 2.0; i <= n; i++ {
		prev, curr = curr, prev+curr
		if math.IsInf(curr, 1) {
			break
		}
	}
	return curr, nil
}
