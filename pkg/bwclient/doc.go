// Package bwclient provides the primary entry point for constructing a
// Bandwidth v1 API client that implements the bandwidth.Client interface.
//
// It wires credentials, the HTTP transport and the JSON/XML codecs on top of
// the resource interfaces and types defined in the bandwidth package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/dannycabrera/bandwidth-go/pkg/bandwidth"
//	  "github.com/dannycabrera/bandwidth-go/pkg/bwclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := bwclient.NewWithCredentials("u-abc", "t-abc", "secret")
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  recordings, err := cli.Recordings().List(ctx, bandwidth.NewListOptions(1, 50))
//	  if err != nil { log.Fatal(err) }
//	  _ = recordings
//	}
//
// The client never retries. Each method performs exactly one round trip and
// honors the deadline and cancellation of the context it is given.
package bwclient
