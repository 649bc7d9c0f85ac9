package middleware

import (
	"encoding/json"
	"time"

	"travel-booking/logger"
	"travel-booking/types"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger captures every request/response pair and hands it to the
// async logger for persistence. Bodies are captured as-is; multipart bodies
// are replaced by a marker so uploaded documents never land in the log table.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		requestBody := string(c.Body())
		if len(c.Request().Header.MultipartFormBoundary()) > 0 {
			requestBody = "[multipart form data]"
		}

		reqHeaders, _ := json.Marshal(c.GetReqHeaders())
		respHeaders, _ := json.Marshal(c.GetRespHeaders())

		asyncLogger.Log(types.LogEntry{
			Method:          c.Method(),
			URL:             c.OriginalURL(),
			RequestBody:     requestBody,
			ResponseBody:    string(c.Response().Body()),
			RequestHeaders:  string(reqHeaders),
			ResponseHeaders: string(respHeaders),
			StatusCode:      c.Response().StatusCode(),
			CreatedAt:       time.Now(),
		})

		return err
	}
}
