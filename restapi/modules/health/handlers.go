// Package health implements the connectivity health-check endpoint.
package health

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
)

// Store is the subset of database operations the health check needs.
type Store interface {
	CountVulnerabilities(ctx context.Context) (int64, error)
}

func presence(key string) string {
	if os.Getenv(key) != "" {
		return "Set"
	}
	return "Missing"
}

// Check handles GET requests for the health check. It issues a count query
// against the vulnerability collection and echoes whether the two store
// configuration values are present in the environment.
func Check(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		env := fiber.Map{
			"url": presence("ARANGO_URL"),
			"key": presence("ARANGO_APIKEY"),
		}

		count, err := store.CountVulnerabilities(context.Background())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Health check failed",
				"details": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"message": "Service is healthy",
			"count":   count,
			"env":     env,
		})
	}
}
