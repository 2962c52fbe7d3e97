// Package httputil provides HTTP utilities for upstream service clients.
//
// The AI suggestion client is the only upstream Cardpress talks to, and its
// failures are almost always transient (timeouts, 5xx, rate limits). [Retry]
// wraps such calls with bounded exponential backoff:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := doRequest()
//	    if isTransient(err) {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    return err
//	})
//
// Only errors wrapped in [RetryableError] are retried; everything else is
// returned immediately so validation failures never burn retry budget.
package httputil
