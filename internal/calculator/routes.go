package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /calculator prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/calculator", func(r chi.Router) {
		r.Get("/add", binaryHandler("add", Add))
		r.Get("/subtract", binaryHandler("subtract", Subtract))
		r.Get("/multiply", binaryHandler("multiply", Multiply))
		r.Get("/divide", binaryHandler("divide", Divide))
		r.Get("/power", binaryHandler("power", Power))

		r.Get("/factorial/{n}", unaryHandler("factorial", Factorial))
		r.Get("/fibonacci/{n}", unaryHandler("fibonacci", Fibonacci))
		r.Get("/isprime/{n}", unaryHandler("isPrime", IsPrime))
	})
}
