package service

import (
	"context"
	"encoding/base64"

	"gocloud.dev/secrets"

	apperrors "github.com/gharrison91/camp-connect-sub002/internal/errors"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// ResolveStaticSecret resolves the HS256 fallback signing secret at startup.
//
// Deployments either set the secret in plain text or ship it encrypted under a
// KMS key. The encrypted form takes precedence: the base64 ciphertext is
// unwrapped once through the configured keeper and the plaintext lives only in
// process memory. Returns nil with no error when no secret is configured,
// which disables the symmetric fallback.
func ResolveStaticSecret(ctx context.Context, plainSecret, encryptedSecret, kmsKeyURI string) ([]byte, error) {
	if encryptedSecret == "" {
		if plainSecret == "" {
			return nil, nil
		}
		return []byte(plainSecret), nil
	}

	if kmsKeyURI == "" {
		return nil, apperrors.New("encrypted jwt secret requires a kms key uri")
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encryptedSecret)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decode encrypted jwt secret")
	}

	keeper, err := secrets.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open KMS keeper")
	}
	defer keeper.Close()

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decrypt jwt secret")
	}

	return plaintext, nil
}
