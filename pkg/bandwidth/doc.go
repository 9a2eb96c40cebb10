// Package bandwidth provides types, interfaces, and helpers for working with
// the Bandwidth v1 telephony API.
//
// # Overview
//
// The bandwidth package defines the domain types (Call, Recording, Message,
// PhoneNumber, AvailableNpaNxx) and the resource client interfaces
// (CallsClient, RecordingsClient, ...). The concrete implementation lives in
// the bwclient package, which wires credentials, transport and codecs.
//
// Getting a client
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
//	  cli, err := bwclient.New(&bandwidth.Config{UserID: "u-1", APIToken: "t-1", APISecret: "s-1"})
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  id, err := cli.Calls().Create(ctx, &bandwidth.Call{From: "+19195551212", To: "+19195551313"})
//	  if err != nil { log.Fatal(err) }
//	  _ = id
//	}
//
// # Pagination
//
// List methods take ListOptions. Page and Size are sent only when non-zero.
// CollectPages walks pages until a short page arrives:
//
//	all, err := bandwidth.CollectPages(ctx, 100, 0, cli.Recordings().List)
//
// # Errors
//
// Non-2xx responses are returned as *HTTPError. Helpers such as IsNotFound,
// IsUnauthorized and IsForbidden branch on common statuses. Cancellation
// matches ErrCancelled, and argument validation failures match
// ErrInvalidArgument.
package bandwidth
