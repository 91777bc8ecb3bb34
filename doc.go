// Package clubadmin is a Go client SDK for the volleyball-club back-office
// API: authentication and session lifecycle, a bearer-token gateway, typed
// resource clients for the club's domain (accounts, players, categories,
// payments, families, assignments, configuration, stats), and a local
// role/permission model for guarding screens and actions.
//
// # Getting started
//
//	client, err := clubadmin.New().
//		WithBaseURL("https://api.club.example").
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	if err := client.Login(ctx, email, password); err != nil {
//		// invalid credentials, network failure, ...
//	}
//	players, err := client.Players().List(ctx, clubadmin.PlayerFilter{})
//
// # Session lifecycle
//
// A Client starts unauthenticated. Login or Register establish a session;
// Restore revalidates a persisted one against the API. Any 401 from the API
// force-logs-out the client, fires the OnSessionExpired hook once, and
// surfaces [ErrSessionExpired] to the caller.
//
// # Architecture boundaries
//
// The Client is the single writer of session state. Permission evaluation is
// local, static, and fail-closed; the remote API remains the authority for
// enforcement. Nothing in this package retries requests or refreshes tokens.
package clubadmin
