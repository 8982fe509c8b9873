package main

import (
	"testing"

	"github.com/arcadia-tracker/arcadia-ui/internal/logger"
)

type syncRecorder struct {
	logger.NoOpLogger
	synced bool
}

func (s *syncRecorder) Sync() error {
	s.synced = true
	return nil
}

func TestExitFlushesLogger(t *testing.T) {
	log := &syncRecorder{}
	var code int
	var syncedBeforeExit bool

	previous := osExit
	osExit = func(c int) {
		code = c
		syncedBeforeExit = log.synced
	}
	defer func() { osExit = previous }()

	exit(log, 1)

	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !syncedBeforeExit {
		t.Error("Logger should be synced before the process exits")
	}
}

func TestPreviewProfile(t *testing.T) {
	profile := previewProfile()

	if len(profile.Library) == 0 {
		t.Fatal("Preview profile should have library slices")
	}
	for _, slice := range profile.Library {
		if !slice.ContentType.IsValid() {
			t.Errorf("Invalid content type %q in preview library", slice.ContentType)
		}
	}
}
