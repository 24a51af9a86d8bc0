/*
Package fractalsdk provides a client SDK for the Fractal Global Credits API.

# Overview

The fractalsdk package implements a client for the Fractal Global Credits web API:
application tokens, user accounts, friend requests and credit transactions. Every
operation is one HTTP exchange, resent once if the transport fails, whose JSON
response is decoded into a typed value or classified into a typed error.

# Client and AccessToken

The package is organized around two types:

  - Client: holds the base URL and the HTTP client, and performs every operation
  - AccessToken: an immutable grant returned by Token or Login, passed to each call

Create a Client for the API you are talking to:

	client := fractalsdk.NewClient()                              // production
	client := fractalsdk.NewDevClient()                           // development
	client := fractalsdk.NewClientWithURL("http://localhost:8080") // anything else

	// Options are applied once, at construction
	client := fractalsdk.NewClient(
		fractalsdk.WithTimeout(5*time.Second),
		fractalsdk.WithRateLimit(int(info.RequestLimit)),
	)

Obtain an application token, then a user token:

	app, err := client.Token(ctx, appID, secret)

	// Application tokens carry the public scope
	err = client.Register(ctx, app, "alice", "hunter22", "alice@example.com")
	me, err := client.Login(ctx, app, "alice@example.com", "hunter22", false)

	// User tokens carry the user's scope
	user, err := client.GetMe(ctx, me)
	err = client.NewTransaction(ctx, me, bob.WalletAddresses[0], bob.ID, fractalsdk.Credits(5))

Re-authenticating produces a new AccessToken; tokens are never refreshed in place.

# Scopes

A token carries one or more scopes:

  - Admin: every operation
  - Public: the application flows (register, login, password reset, subscribe)
  - Developer: third party applications
  - User(id): operations on behalf of the user with that id

Each operation checks the token locally before sending anything. Many operations
accept "admin or the matching user"; for example GetUser(ctx, t, 42) succeeds locally
with an admin token or a User(42) token. A token that fails the check, or that has
expired, yields an *AuthorizationError and no request is made:

	_, err := client.GetAllUsers(ctx, userToken)
	errors.Is(err, fractalsdk.ErrForbiddenScope) // true

# Error Handling

The SDK returns typed errors:

  - *APIError: the server answered with a status other than 200. Message is the
    server's message, verbatim. Match the kind with errors.Is against ErrUnauthorized (401),
    ErrBadRequest (400), ErrNotFound (404), ErrClientError (202) or ErrServerError (any other).
  - *TransportError: the request could not be exchanged, even after one resend.
  - *DecodeError: a response body was not the expected JSON, including error bodies.
  - *AuthorizationError: the local scope or expiry check failed.
  - *FromDTOError: a response decoded but is not valid, e.g. a token without scopes.
  - ErrInvalidSecret: the client secret is not the base64 encoding of 20 bytes.

Example:

	err := client.NewTransaction(ctx, me, wallet, bobID, amount)
	var apiErr *fractalsdk.APIError
	switch {
	case errors.Is(err, fractalsdk.ErrClientError) && errors.As(err, &apiErr):
		fmt.Println("rejected:", apiErr.Message) // e.g. "insufficient funds"
	case err != nil:
		return err
	}

Note that the API reports validation failures with status 202 Accepted. The SDK
treats them as errors.

# Logging

The SDK does not log. To observe requests, install a logging transport:

	client := fractalsdk.NewClient(fractalsdk.WithTransport(slogx.NewTransport(logger, nil)))

Each request carries an X-Request-ID header, which is the same for the automatic resend.

# Thread Safety

A Client is safe for concurrent use; it holds no per-call state. AccessTokens are
immutable and may be shared between goroutines.
*/
package fractalsdk
