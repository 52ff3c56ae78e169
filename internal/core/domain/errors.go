package domain

import "errors"

// The five error kinds every gateway maps to transport status codes.
// Components return these (or wrap them); nothing else crosses a gateway
// boundary.
var (
	// ErrValidation covers malformed or missing input, including a cart
	// removal that matches no line.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidCredentials is the single login failure. Unknown username and
	// wrong password produce the same error so responses cannot be used to
	// enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a presented identity+token pair does
	// not verify against today's derived token, or either half is missing.
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden is returned by the admin gateway when the caller's role is
	// not admin.
	ErrForbidden = errors.New("access forbidden")

	ErrItemNotFound = errors.New("item not found")
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	// ErrEmptyCart fails a checkout. A retried checkout whose first attempt
	// already drained the cart sees this too; the states are indistinguishable.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNoCheckout fails a payment attempted without a completed checkout,
	// including a second payment after the flag was cleared.
	ErrNoCheckout = errors.New("no completed checkout")

	// ErrTooManyAttempts is returned when the login throttle window for a
	// username is exhausted.
	ErrTooManyAttempts = errors.New("too many login attempts")

	// ErrUpstreamUnavailable masks transport failures (timeout, connection
	// refused) talking to the data-access layer. Never carries wire details.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
