package cookie

import "errors"

var (
	ErrNoCookieName     = errors.New("cookie.no_cookie_name")
	ErrNoTransport      = errors.New("cookie.no_transport")
	ErrNoSigner         = errors.New("cookie.no_signer")
	ErrNoSecret         = errors.New("cookie.no_secret")
	ErrDecryptionFailed = errors.New("cookie.decryption_failed")
)
