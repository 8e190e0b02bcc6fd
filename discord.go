package main

import (
	"context"
	"time"

	client "github.com/hugolgst/rich-go/client"
)

// initDiscordRPC publishes a presence for the session. It does nothing
// unless an application id is configured.
func initDiscordRPC(ctx context.Context, appID string) {
	if appID == "" {
		return
	}
	if err := client.Login(appID); err != nil {
		logError("discord rpc login: %v", err)
		return
	}
	now := time.Now()
	if err := client.SetActivity(client.Activity{
		State:   "tilewalk",
		Details: "Walking the grid",
		Timestamps: &client.Timestamps{
			Start: &now,
		},
	}); err != nil {
		logError("discord rpc activity: %v", err)
	}
	go func() {
		<-ctx.Done()
		client.Logout()
	}()
}
