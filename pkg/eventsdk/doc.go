/*
Package eventsdk is the Go client for the event planner API.

# SDKClient vs Session

Public endpoints (invitation verification and acceptance, login, owner
registration, health) live on SDKClient. Everything that needs a bearer token
lives on Session.

	client := eventsdk.NewSDKClient("https://api.example.com")

	// Anonymous invitee
	details, err := client.VerifyInvitation(ctx, token)

	// Signed in organizer
	session, err := eventsdk.Open(ctx, client, eventsdk.NewFileStore(path))
	if !session.Authenticated() {
		_, err = session.Login(ctx, email, password)
	}
	invs, err := session.ListInvitations(ctx, session.User().OrganizationID, "pending")

# Sessions

A Session is created once at the application root and passed to whatever needs
it. Open restores credentials from a SessionStore. Every authenticated request
carries "Authorization: Bearer <token>". When the server answers 401 the
session performs one refresh, persists the rotated tokens and retries the
request once. A failed refresh clears the store and returns ErrSessionExpired.

Logout revokes the refresh token on the server when it can and always clears
the store.

# Errors

Non-2xx responses come back as *APIError carrying the server's message
verbatim. IsNotFound, IsExpired and IsConflict classify them. Transport
failures wrap ErrNetwork.

	_, err := client.AcceptInvitation(ctx, req)
	switch {
	case eventsdk.IsExpired(err):
		// ask for a new invitation
	case eventsdk.IsConflict(err):
		// already used
	case errors.Is(err, eventsdk.ErrNetwork):
		// retry
	}

# Thread Safety

SDKClient and Session are safe for concurrent use. Concurrent 401s trigger a
single refresh.
*/
package eventsdk
