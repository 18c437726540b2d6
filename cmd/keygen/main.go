// Command keygen generates the two independent random 256-bit keys the
// secure cookie stack needs: an AES-256 encryption key and an HMAC signing
// secret, both printed base64-encoded.
//
// Usage:
//
//	keygen        # human-readable output
//	keygen -env   # COOKIE_* lines ready for an .env file
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrymomot/securecookies/pkg/secrets"
)

func main() {
	envFormat := flag.Bool("env", false, "print keys as .env lines")
	flag.Parse()

	encKey, err := secrets.GenerateKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, "keygen:", err)
		os.Exit(1)
	}
	macKey, err := secrets.GenerateKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, "keygen:", err)
		os.Exit(1)
	}

	if *envFormat {
		fmt.Printf("COOKIE_ENCRYPTION_KEY=%s\n", secrets.EncodeKey(encKey))
		fmt.Printf("COOKIE_SIGNING_SECRET=%s\n", secrets.EncodeKey(macKey))
		return
	}

	fmt.Printf("AES-256 encryption key:  %s\n", secrets.EncodeKey(encKey))
	fmt.Printf("HMAC-SHA256 signing key: %s\n", secrets.EncodeKey(macKey))
}
