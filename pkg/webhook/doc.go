// Package webhook delivers fingerprinted events to an HTTP endpoint.
//
// Sink is a pipeline sink that POSTs each event as a JSON body. The
// fingerprint travels in the X-Hashid header so receivers can deduplicate.
// When Config.Secret is set the request also carries X-Webhook-Timestamp and
// X-Webhook-Signature, where the signature is
// hex(HMAC-SHA256(secret, "<timestamp>.<body>")). Receivers check it with
// Verify:
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//	    body, _ := io.ReadAll(r.Body)
//	    if err := webhook.Verify(secret, r.Header, body, 5*time.Minute); err != nil {
//	        http.Error(w, "bad signature", http.StatusUnauthorized)
//	        return
//	    }
//	    // ...
//	}
//
// Network errors and 5xx, 408, 425 and 429 responses are retried with
// exponential backoff up to Config.MaxRetries times. Other 4xx responses
// wrap ErrPermanentFailure and are not retried.
package webhook
