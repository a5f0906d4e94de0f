package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"crime-evidence/pkg/requestcontext"
)

// TransactionIDHeader is the correlation header carried by all LAA crime
// services. When the caller supplies one it is echoed back and forwarded on
// outbound calls; otherwise a fresh ID is generated.
const TransactionIDHeader = "Laa-Transaction-Id"

// RequestID assigns each request a unique ID and captures the caller's
// transaction ID, making both available via requestcontext.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithRequestID(r.Context(), uuid.NewString())

		txn := r.Header.Get(TransactionIDHeader)
		if txn == "" {
			txn = uuid.NewString()
		}
		ctx = requestcontext.WithTransactionID(ctx, txn)
		w.Header().Set(TransactionIDHeader, txn)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
