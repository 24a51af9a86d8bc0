package app

import (
	"crypto/ed25519"
	"fmt"
	"log/slog"
	"time"

	"github.com/fractalglobal/fgc/pkg/cryptox"
	"github.com/fractalglobal/fgc/pkg/jwtx"
)

// verifierLeeway absorbs clock skew between the dev server and clients.
const verifierLeeway = 30 * time.Second

// signingKeys bundles the signer that issues tokens with the key set and
// verifier that check them.
type signingKeys struct {
	KeySet   *jwtx.KeySet
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
}

// initSigningKeys loads the Ed25519 key at cfg.SigningKeyFile, creating it
// when missing. Without a file the key lives in memory and every token is
// invalidated on restart.
func initSigningKeys(cfg Config, logger *slog.Logger) (*signingKeys, error) {
	key, err := cryptox.LoadOrGenerateEd25519Key(cfg.SigningKeyFile)
	if err != nil {
		return nil, err
	}

	signer, err := jwtx.NewSignerEdDSA(keyID(key), key)
	if err != nil {
		return nil, err
	}

	ks := jwtx.NewKeySet()
	if err := ks.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("register signer: %w", err)
	}

	mode := "persistent"
	if cfg.SigningKeyFile == "" {
		mode = "ephemeral"
	}
	logger.Info("signing key ready", "kid", signer.KID(), "mode", mode)

	return &signingKeys{
		KeySet:   ks,
		Signer:   signer,
		Verifier: jwtx.NewVerifierEdDSA(ks, cfg.Issuer, verifierLeeway),
	}, nil
}

// keyID derives a stable kid from the public key so tokens stay verifiable
// across restarts with a persistent key file.
func keyID(key ed25519.PrivateKey) string {
	pub := key.Public().(ed25519.PublicKey)
	return cryptox.FingerprintToken(string(pub))[:16]
}
