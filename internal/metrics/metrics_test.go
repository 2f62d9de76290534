package metrics

import (
	"errors"
	"testing"
)

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()

	r.RecordRequest("seasons", nil)
	r.RecordRequest("game_days", nil)
	r.RecordRequest("game_days", errors.New("boom"))
	r.RecordPage("game_days")
	r.RecordPage("game_days")
	r.AddGamesNormalized(12)
	r.RecordSkippedRecord()
	r.AddEventsRendered(30)
	r.RecordCalendarWritten()
	r.RecordCalendarWritten()

	snap := r.Snapshot()
	if snap.Requests != 3 || snap.Errors != 1 {
		t.Fatalf("unexpected request counts: %+v", snap)
	}
	if snap.Pages != 2 || snap.GamesNormalized != 12 || snap.RecordsSkipped != 1 {
		t.Fatalf("unexpected normalization counts: %+v", snap)
	}
	if snap.EventsRendered != 30 || snap.CalendarsWritten != 2 {
		t.Fatalf("unexpected output counts: %+v", snap)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var r *Recorder
	r.RecordRequest("seasons", nil)
	r.RecordPage("seasons")
	r.AddGamesNormalized(1)
	r.RecordSkippedRecord()
	r.AddEventsRendered(1)
	r.RecordCalendarWritten()
	if snap := r.Snapshot(); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}
