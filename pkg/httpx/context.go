package httpx

type ctxKey string

const (
	// CtxKeySubject holds the verified token subject (the caller's
	// normalized email).
	CtxKeySubject ctxKey = "subject"

	// CtxKeyClaims holds the full jwtx.Claims when a deeper look is needed.
	CtxKeyClaims ctxKey = "claims"
)
