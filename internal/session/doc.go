// Package session carries out request/response exchanges with the LED
// controller over UDP.
//
// A Session owns one datagram socket bound to an ephemeral local port for
// its whole life. Exchange sends one command and blocks until the next
// datagram arrives, which is taken to be the reply: with a single request
// outstanding there is nothing else it could answer. Listen sends the
// subscription command once and returns a lazy, unbounded sequence of the
// device's pushed updates that ends only on error or cancellation.
//
// Waits are unbounded by default, matching the firmware's fire-and-forget
// design; Options.ReplyTimeout and context cancellation bound them when the
// caller needs to. No call retries. A Session is not safe for concurrent use.
package session
