package ports

import "context"

// CarrierValidator is the outbound contract for the carrier's credential
// validation endpoint.
//
// ValidateCredentials returns (true, nil) when the carrier accepted the
// credentials and (false, nil) when it rejected them. A TransportError is
// returned when no usable response was received; such failures are retryable
// and imply no side effect on the carrier's side, so an identical second
// attempt is safe.
type CarrierValidator interface {
	ValidateCredentials(ctx context.Context, companyName, key, token string) (bool, error)
}
