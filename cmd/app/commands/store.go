package commands

import (
	"context"
	"fmt"
	"io"

	envelopeUseCase "github.com/talegari/safer/internal/envelope/usecase"
	storeUseCase "github.com/talegari/safer/internal/store/usecase"
)

// RunStorePut seals value and writes it to the bucket under name.
func RunStorePut(
	ctx context.Context,
	store storeUseCase.StoreUseCase,
	envelope envelopeUseCase.UseCase,
	name, value, passphrase, privateKeyB64, publicKeyB64 string,
) error {
	key, err := resolveKey(envelope, passphrase, privateKeyB64, publicKeyB64)
	if err != nil {
		return fmt.Errorf("failed to build key material: %w", err)
	}

	if err := store.Save(ctx, name, value, key); err != nil {
		return fmt.Errorf("failed to store %s: %w", name, err)
	}

	return nil
}

// RunStoreGet reads the object stored under name, opens it, and prints the
// recovered value to w.
func RunStoreGet(
	ctx context.Context,
	store storeUseCase.StoreUseCase,
	envelope envelopeUseCase.UseCase,
	w io.Writer,
	name, passphrase, privateKeyB64, publicKeyB64 string,
) error {
	key, err := resolveKey(envelope, passphrase, privateKeyB64, publicKeyB64)
	if err != nil {
		return fmt.Errorf("failed to build key material: %w", err)
	}

	var value string
	if err := store.Retrieve(ctx, name, &value, key); err != nil {
		return fmt.Errorf("failed to retrieve %s: %w", name, err)
	}

	fmt.Fprintln(w, value)

	return nil
}

// RunStoreDelete removes the object stored under name.
func RunStoreDelete(ctx context.Context, store storeUseCase.StoreUseCase, name string) error {
	if err := store.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}

	return nil
}
