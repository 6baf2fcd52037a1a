// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package channel implements the realtime broadcast hub over websockets.

# Contract

One Hub per process. Every event published after a client connects is
delivered to that client; there is no history or replay - a client that
connects late catches up with a REST fetch, not the socket.

	hub := channel.NewHub()
	go hub.Run(ctx)
	mux.HandleFunc("GET /ws", hub.ServeWS)

	hub.Publish(models.EventNoteAdded, note)

Messages are JSON frames of the form:

	{"event": "noteAdded", "payload": {...}}

# Delivery Semantics

Publish is fire-and-forget. A subscriber whose send buffer is full is
dropped rather than allowed to block the publish path (the same policy
for every slow or dead connection). Events published by one goroutine
arrive at each subscriber in publish order; no ordering is promised
across publishers.

Handlers depend on the Publisher interface, not on Hub, so tests can
record publishes without a socket.
*/
package channel
