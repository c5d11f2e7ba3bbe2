// Package resilience retries transient failures with exponential backoff.
//
// Only errors marked retryable are retried by default: an errors.AppError
// with Retryable set, such as an encryption failure caused by the random
// source. Context cancellation always stops the loop.
//
//	sealed, err := resilience.Retry(ctx, resilience.DefaultPolicy(), func() (string, error) {
//	    return enc.Encrypt(password)
//	})
package resilience
