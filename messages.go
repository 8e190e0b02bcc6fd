package main

import (
	"sync"
	"time"
)

const (
	maxMessages     = 6
	messageLifetime = 10 * time.Second
)

type message struct {
	text   string
	expire time.Time
}

var (
	messageMu sync.Mutex
	messages  []message
)

// addMessage queues a line for the HUD. Only the newest maxMessages are kept.
func addMessage(msg string) {
	if msg == "" {
		return
	}
	messageMu.Lock()
	defer messageMu.Unlock()
	messages = append(messages, message{text: msg, expire: time.Now().Add(messageLifetime)})
	if len(messages) > maxMessages {
		messages = messages[len(messages)-maxMessages:]
	}
}

func getMessages() []string {
	messageMu.Lock()
	defer messageMu.Unlock()

	now := time.Now()
	var out []string
	keep := messages[:0]
	for _, m := range messages {
		if now.After(m.expire) {
			continue
		}
		out = append(out, m.text)
		keep = append(keep, m)
	}
	messages = keep
	return out
}
