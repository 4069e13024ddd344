package text

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the string endpoints under /string.
func RegisterRoutes(r chi.Router) {
	r.Route("/string", func(r chi.Router) {
		r.Get("/reverse", stringHandler("reverse", lift(Reverse)))
		r.Get("/palindrome", stringHandler("isPalindrome", lift(IsPalindrome)))
		r.Get("/wordcount", stringHandler("wordCount", lift(WordCount)))
		r.Get("/titlecase", stringHandler("toTitleCase", lift(TitleCase)))
		r.Get("/dedupe", stringHandler("removeDuplicates", lift(RemoveDuplicates)))
		r.Get("/camelcase", stringHandler("toCamelCase", lift(CamelCase)))
		r.Get("/truncate", truncateHandler)
		r.Get("/countchar", countCharHandler)
	})
}

// lift adapts an infallible operation to the handler signature.
func lift[T any](fn func(string) T) func(string) (any, error) {
	return func(s string) (any, error) {
		return fn(s), nil
	}
}
