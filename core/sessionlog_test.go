package session

import "testing"

func TestSessionLogRecordsEntries(t *testing.T) {
	log := newSessionLog(0)

	log.Record(DirectionInbound, "turn complete", 21)
	log.Record(DirectionOutbound, "text: hi", 2)

	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}
	if entries[0].Direction != DirectionInbound || entries[0].Summary != "turn complete" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Direction != DirectionOutbound {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}

func TestSessionLogDropsOldestBeyondCapacity(t *testing.T) {
	log := newSessionLog(2)

	log.Record(DirectionInbound, "first", 0)
	log.Record(DirectionInbound, "second", 0)
	log.Record(DirectionInbound, "third", 0)

	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected capacity to bound entries, got %d", len(entries))
	}
	if entries[0].Summary != "second" || entries[1].Summary != "third" {
		t.Fatalf("expected oldest entry dropped, got %+v", entries)
	}
}

func TestSessionLogEntriesReturnsSnapshot(t *testing.T) {
	log := newSessionLog(0)
	log.Record(DirectionInbound, "only", 0)

	snapshot := log.Entries()
	log.Record(DirectionInbound, "later", 0)

	if len(snapshot) != 1 {
		t.Fatalf("expected snapshot to be unaffected by later records, got %d", len(snapshot))
	}
}
