// Package remote provides an HTTP implementation of the domain.ExchangeClient
// interface.
//
// The remote service does the actual work: it encrypts a message under a
// password, embeds it in an image and extracts it again. This package only
// speaks its wire contract:
//
//   - POST {base}/encrypt with multipart fields message, password and image.
//     A 2xx response body is the carrier image; anything else carries
//     {"error": "..."}.
//   - POST {base}/decrypt with multipart fields password and image. The body
//     is always JSON: {"message": "..."} on 2xx, {"error": "..."} otherwise.
//
// Service failures are returned as *ServiceError whose Message is the text
// the service gave, or a generic fallback when it gave none. Requests are
// never retried.
package remote
