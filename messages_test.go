package main

import (
	"fmt"
	"testing"
	"time"
)

func TestExpiredMessagesRemoved(t *testing.T) {
	messages = nil
	addMessage("hi")
	if len(getMessages()) != 1 {
		t.Fatalf("message not added")
	}
	messageMu.Lock()
	messages[0].expire = time.Now().Add(-time.Second)
	messageMu.Unlock()
	if len(getMessages()) != 0 {
		t.Fatalf("expired message not removed")
	}
}

func TestMessagesCapped(t *testing.T) {
	messages = nil
	for i := 0; i < maxMessages+3; i++ {
		addMessage(fmt.Sprintf("line %d", i))
	}
	addMessage("")
	got := getMessages()
	if len(got) != maxMessages {
		t.Fatalf("got %d messages, want %d", len(got), maxMessages)
	}
	if got[len(got)-1] != fmt.Sprintf("line %d", maxMessages+2) {
		t.Fatalf("newest message %q", got[len(got)-1])
	}
}
