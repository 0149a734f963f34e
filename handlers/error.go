package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"ytinsight/errors"
	"ytinsight/models"
)

// ErrorHandler converts every error escaping a handler into the uniform
// {error:{message,status}} envelope. Unclassified errors (including panics
// surfaced by the recover middleware) report as 500 without leaking
// internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Erreur interne du serveur"

	switch e := err.(type) {
	case *errors.AppError:
		code = e.Code
		message = e.Message
	case *fiber.Error:
		code = e.Code
		message = e.Message
	}

	logrus.WithFields(logrus.Fields{
		"path":   c.Path(),
		"method": c.Method(),
		"status": code,
	}).WithError(err).Error("Request failed")

	return c.Status(code).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Message: message,
			Status:  code,
		},
	})
}
