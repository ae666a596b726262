package handler

import "github.com/gofiber/fiber/v3"

// Register mounts the quote routes and, when estimate is non-nil, the pool
// estimate route.
func Register(app *fiber.App, quotes *QuoteHandler, estimate *EstimateHandler) {
	app.Get("/curves", quotes.List())
	app.Get("/curves/:op", quotes.Quote())
	app.Post("/quotes", quotes.Batch())
	if estimate != nil {
		app.Get("/estimate", estimate.Handle())
	}
}
