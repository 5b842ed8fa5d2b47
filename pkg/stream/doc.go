// Package stream implements the NanoVDB editor remote streaming server:
// a single-producer/multi-consumer ring of encoded video frames, a minimal
// HTTP surface that bootstraps the browser viewer, a WebSocket endpoint
// that broadcasts timed frame payloads to every connected viewer, and an
// input event queue the host application drains between renders.
//
// The host pushes already-encoded H.264 chunks with Server.PushH264; the
// server is codec-agnostic and never inspects payloads. A 5 ms dispatch
// loop flushes the ring to each client, preceding every binary payload
// with a JSON metadata message carrying the frame id and dimensions.
// Viewers that fall behind observe frame drops, never stalls; the producer
// can gate expensive work on Server.WaitUntilActive.
package stream
