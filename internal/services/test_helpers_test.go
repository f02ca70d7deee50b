package services_test

import (
	"github.com/officerfeedback/officer-feedback/pkg/logger"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Development: true,
	}); err != nil {
		panic(err)
	}
}
