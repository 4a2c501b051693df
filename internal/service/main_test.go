package service_test

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"rental-portal-backend/internal/testutils"
)

// TestMain ensures the shared Docker container started by the allocation
// tests is purged when the package's tests finish or get interrupted.
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Service tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
