package cart

import "errors"

var (
	// ErrMissingPayload is returned when a command is dispatched without the
	// line item it operates on.
	ErrMissingPayload = errors.New("command payload missing")

	// ErrItemNotFound is returned by SetQuantity when the sku is not in the cart.
	ErrItemNotFound = errors.New("item not in cart")

	// ErrCartEmpty is returned by Store.Checkout when there is nothing to send.
	ErrCartEmpty = errors.New("cart empty")

	// ErrUnknownCommand is returned for a command Apply does not recognise.
	ErrUnknownCommand = errors.New("unknown command type")
)
