package fractalsdk

import (
	"context"
	"net/http"
)

// SendFriendRequest asks another user to connect. The origin is the user
// the token belongs to. message may be nil.
func (c *Client) SendFriendRequest(
	ctx context.Context,
	t *AccessToken,
	destinationID uint64,
	relationship Relationship,
	message *string,
) error {
	if err := authorize("send_friend_request", t, anyUser); err != nil {
		return err
	}
	origin, _ := t.UserID()

	req := FriendRequestDTO{
		OriginID:      origin,
		DestinationID: destinationID,
		Relationship:  relationship,
		Message:       message,
	}
	return c.doAuthRequest(ctx, t, "send_friend_request", anyUser,
		http.MethodPost, "create_friend_request", req, nil)
}

// ConfirmFriendRequest accepts the pending request requestID sent by
// originID to the token's user.
func (c *Client) ConfirmFriendRequest(ctx context.Context, t *AccessToken, requestID, originID uint64) error {
	return c.answerFriendRequest(ctx, t, "confirm_friend_request", requestID, originID)
}

// RejectFriendRequest declines the pending request requestID.
func (c *Client) RejectFriendRequest(ctx context.Context, t *AccessToken, requestID, originID uint64) error {
	return c.answerFriendRequest(ctx, t, "reject_friend_request", requestID, originID)
}

func (c *Client) answerFriendRequest(ctx context.Context, t *AccessToken, op string, requestID, originID uint64) error {
	if err := authorize(op, t, anyUser); err != nil {
		return err
	}
	destination, _ := t.UserID()

	req := ConfirmFriendRequestDTO{
		ID:          requestID,
		Origin:      originID,
		Destination: destination,
	}
	return c.doAuthRequest(ctx, t, op, anyUser, http.MethodPost, op, req, nil)
}

// Unfriend removes the connection between the token's user and friendID.
func (c *Client) Unfriend(ctx context.Context, t *AccessToken, friendID uint64) error {
	return c.doAuthRequest(ctx, t, "unfriend", anyUser,
		http.MethodDelete, idPath("friend", friendID), nil, nil)
}

// GetFriendRequests returns the requests awaiting an answer from the user.
// Requires an admin token or the token of that user.
func (c *Client) GetFriendRequests(ctx context.Context, t *AccessToken, id uint64) ([]PendingFriendRequest, error) {
	var dtos []PendingFriendRequestDTO
	if err := c.doAuthRequest(ctx, t, "get_friend_requests", either(admin, user(id)),
		http.MethodGet, idPath("friend_requests", id), nil, &dtos); err != nil {
		return nil, err
	}
	return convertAll(dtos, PendingFriendRequestFromDTO)
}

// GetFriends returns the profiles of the user's connections.
// Requires an admin token or the token of that user.
func (c *Client) GetFriends(ctx context.Context, t *AccessToken, id uint64) ([]Profile, error) {
	var dtos []ProfileDTO
	if err := c.doAuthRequest(ctx, t, "get_friends", either(admin, user(id)),
		http.MethodGet, idPath("friends", id), nil, &dtos); err != nil {
		return nil, err
	}

	out := make([]Profile, len(dtos))
	for i, d := range dtos {
		out[i] = ProfileFromDTO(d)
	}
	return out, nil
}
