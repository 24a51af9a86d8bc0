package fractalsdk

import (
	"context"
	"net/http"
)

// GetTransaction returns a transaction. Requires a user or admin token; the
// server only returns transactions the user took part in.
func (c *Client) GetTransaction(ctx context.Context, t *AccessToken, id uint64) (Transaction, error) {
	var dto TransactionDTO
	if err := c.doAuthRequest(ctx, t, "get_transaction", either(admin, anyUser),
		http.MethodGet, idPath("transaction", id), nil, &dto); err != nil {
		return Transaction{}, err
	}
	return TransactionFromDTO(dto)
}

// NewTransaction sends amount from the token's user to the destination
// user's wallet. Insufficient funds are reported as a client error.
func (c *Client) NewTransaction(
	ctx context.Context,
	t *AccessToken,
	destination WalletAddress,
	destinationID uint64,
	amount Amount,
) error {
	if err := authorize("new_transaction", t, anyUser); err != nil {
		return err
	}
	origin, _ := t.UserID()

	req := GenerateTransactionDTO{
		OriginID:           origin,
		DestinationAddress: destination,
		DestinationID:      destinationID,
		Amount:             amount,
	}
	return c.doAuthRequest(ctx, t, "new_transaction", anyUser,
		http.MethodPost, "new_transaction", req, nil)
}

// GetAllTransactions returns every transaction with an id greater than
// sinceID, in id order. Admin only.
func (c *Client) GetAllTransactions(ctx context.Context, t *AccessToken, sinceID uint64) ([]Transaction, error) {
	var dtos []TransactionDTO
	if err := c.doAuthRequest(ctx, t, "get_all_transactions", admin,
		http.MethodGet, idPath("all_transactions", sinceID), nil, &dtos); err != nil {
		return nil, err
	}
	return convertAll(dtos, TransactionFromDTO)
}
