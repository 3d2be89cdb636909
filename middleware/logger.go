package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func Logger(env string, out io.Writer) fiber.Handler {
	if env == "prod" {
		return logger.New(logger.Config{
			Format:     `{"time":"${time}","request_id":"${locals:requestid}","ip":"${ip}","method":"${method}","path":"${path}","status":${status},"latency":"${latency}"}` + "\n",
			TimeFormat: time.RFC3339,
			TimeZone:   "Local",
			Output:     out,
		})
	}
	// dev mode
	return logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
		Output:     out,
	})
}
